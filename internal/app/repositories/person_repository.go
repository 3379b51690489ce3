package repositories

import (
	"context"

	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/repositories/person"
	"github.com/yigit/alumnet/internal/db"
)

// PersonRepository combines the person table with its role subtype tables
type PersonRepository struct {
	common  *person.Repository
	student *person.StudentRepository
	alumni  *person.AlumniRepository
}

// NewPersonRepository creates a new PersonRepository bound to q
func NewPersonRepository(q db.Querier) *PersonRepository {
	return &PersonRepository{
		common:  person.NewRepository(q),
		student: person.NewStudentRepository(q),
		alumni:  person.NewAlumniRepository(q),
	}
}

// WithTx returns a PersonRepository whose statements run on tx
func (r *PersonRepository) WithTx(tx db.Querier) *PersonRepository {
	return NewPersonRepository(tx)
}

// CreatePerson inserts a person row
func (r *PersonRepository) CreatePerson(ctx context.Context, username, email, passwordHash string) (int64, error) {
	return r.common.CreatePerson(ctx, username, email, passwordHash)
}

// CreateStudent inserts the student subtype row
func (r *PersonRepository) CreateStudent(ctx context.Context, personID int64) error {
	return r.student.CreateStudent(ctx, personID)
}

// CreateAlumni inserts the alumni subtype row
func (r *PersonRepository) CreateAlumni(ctx context.Context, personID int64) error {
	return r.alumni.CreateAlumni(ctx, personID)
}

// GetCredentials retrieves login credentials by username or email
func (r *PersonRepository) GetCredentials(ctx context.Context, identifier string) (*models.Credentials, error) {
	return r.common.GetCredentials(ctx, identifier)
}

// IsAlumni reports whether the person has an alumni row
func (r *PersonRepository) IsAlumni(ctx context.Context, personID int64) (bool, error) {
	return r.alumni.IsAlumni(ctx, personID)
}

// UpdatePersonalInfo updates the personal fields of a person
func (r *PersonRepository) UpdatePersonalInfo(ctx context.Context, personID int64, info models.PersonalInfo) error {
	return r.common.UpdatePersonalInfo(ctx, personID, info)
}
