package repositories

import (
	"github.com/yigit/alumnet/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	PersonRepository     *PersonRepository
	ProfileRepository    *ProfileRepository
	VocabularyRepository *VocabularyRepository
	TagRepository        *TagRepository
	OwnedRepository      *OwnedResourceRepository
}

// NewRepositories initializes all repositories over the same querier
func NewRepositories(q db.Querier) *Repositories {
	return &Repositories{
		PersonRepository:     NewPersonRepository(q),
		ProfileRepository:    NewProfileRepository(q),
		VocabularyRepository: NewVocabularyRepository(q),
		TagRepository:        NewTagRepository(q),
		OwnedRepository:      NewOwnedResourceRepository(q),
	}
}
