package models

// EducationRecord defines a row of the 'education' table
type EducationRecord struct {
	PersonID     int64
	ProgrammeID  int64
	StudyLevelID int64
	StartDate    string
	EndDate      *string
}

// CareerRecord defines a row of the 'career' table
type CareerRecord struct {
	AlumniID        int64
	JobTitle        string
	CompanyName     string
	City            *string
	WorkCountryCode *string
	StartDate       string
	EndDate         *string
	JobDescription  *string
}

// EducationView is one element of the aggregated education column
type EducationView struct {
	ID           int64   `json:"id" example:"3"`
	ProgrammeID  int64   `json:"programme_id" example:"1"`
	Programme    string  `json:"programme" example:"Computer Science"`
	StudyLevelID int64   `json:"study_level_id" example:"2"`
	StudyLevel   string  `json:"study_level" example:"Bachelor"`
	StartDate    string  `json:"start_date" example:"2018-09-01"`
	EndDate      *string `json:"end_date,omitempty" example:"2022-06-30"`
}

// CareerView is one element of the aggregated career column
type CareerView struct {
	ID              int64   `json:"id" example:"7"`
	JobTitle        string  `json:"job_title" example:"Backend Engineer"`
	CompanyName     string  `json:"company_name" example:"Acme"`
	City            *string `json:"city,omitempty" example:"Istanbul"`
	WorkCountryCode *string `json:"work_country_code,omitempty" example:"TR"`
	WorkCountry     *string `json:"work_country,omitempty" example:"Turkey"`
	StartDate       string  `json:"start_date" example:"2022-07-01"`
	EndDate         *string `json:"end_date,omitempty"`
	JobDescription  *string `json:"job_description,omitempty"`
}

// TagView is one element of the aggregated skill, interest and expertise columns
type TagView struct {
	ID   int64  `json:"id" example:"12"`
	Name string `json:"name" example:"Go"`
}

// Profile is the read model behind the student and alumni profile views.
// Career and Expertise are only populated for alumni.
type Profile struct {
	PersonID        int64           `json:"person_id" example:"1"`
	Role            string          `json:"role" example:"alumni"`
	Username        string          `json:"username" example:"jdoe"`
	Email           string          `json:"email" example:"jdoe@example.com"`
	FirstName       string          `json:"first_name" example:"John"`
	LastName        string          `json:"last_name" example:"Doe"`
	PhoneNumber     *string         `json:"phone_number,omitempty"`
	Address         *string         `json:"address,omitempty"`
	HomeCountry     *string         `json:"home_country,omitempty" example:"TR"`
	HomeCountryName *string         `json:"home_country_name,omitempty" example:"Turkey"`
	Education       []EducationView `json:"education"`
	Skills          []TagView       `json:"skills"`
	Interests       []TagView       `json:"interests"`
	Career          []CareerView    `json:"career,omitempty"`
	Expertise       []TagView       `json:"expertise,omitempty"`
}
