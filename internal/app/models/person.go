package models

// Person defines the person model based on the 'person' table.
// The role is not stored here; it follows from the subtype row (student or alumni).
type Person struct {
	ID           int64   `json:"id" db:"id" example:"1"`
	Username     string  `json:"username" db:"username" example:"jdoe"`
	Email        string  `json:"email" db:"email" example:"jdoe@example.com"`
	PasswordHash string  `json:"-" db:"password_hash"`
	FirstName    string  `json:"first_name" db:"first_name" example:"John"`
	LastName     string  `json:"last_name" db:"last_name" example:"Doe"`
	PhoneNumber  *string `json:"phone_number,omitempty" db:"phone_number" example:"+90 555 000 0000"`
	Address      *string `json:"address,omitempty" db:"address"`
	HomeCountry  *string `json:"home_country,omitempty" db:"home_country" example:"TR"`
}

// Credentials is the subset of a person needed to check a login
type Credentials struct {
	PersonID     int64
	PasswordHash string
}

// PersonalInfo is the editable personal part of a profile
type PersonalInfo struct {
	FirstName   string
	LastName    string
	PhoneNumber *string
	Address     *string
	HomeCountry *string
}
