package models

// Country defines the country model based on the 'country' table
type Country struct {
	Code string `json:"code" example:"TR"`
	Name string `json:"name" example:"Turkey"`
}

// Programme defines the programme model based on the 'programme' table
type Programme struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Computer Science"`
}

// StudyLevel defines the study level model based on the 'study_level' table
type StudyLevel struct {
	ID   int64  `json:"id" example:"2"`
	Name string `json:"name" example:"Bachelor"`
}
