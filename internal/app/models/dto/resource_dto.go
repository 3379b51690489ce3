package dto

import (
	"strings"

	"github.com/yigit/alumnet/internal/pkg/validation"
)

// EducationRequest adds an education record
type EducationRequest struct {
	ProgrammeID  int64   `json:"programme_id" validate:"required,min=1" example:"1"`
	StudyLevelID int64   `json:"study_level_id" validate:"required,min=1" example:"2"`
	StartDate    string  `json:"start_date" validate:"required,date" example:"2018-09-01"`
	EndDate      *string `json:"end_date" validate:"omitempty,date" example:"2022-06-30"`
}

// Normalize trims dates and drops a blank end date
func (r *EducationRequest) Normalize() {
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = validation.TrimPtr(r.EndDate)
}

// CareerRequest adds a career record
type CareerRequest struct {
	JobTitle        string  `json:"job_title" validate:"required,max=150" example:"Backend Engineer"`
	CompanyName     string  `json:"company_name" validate:"required,max=150" example:"Acme"`
	City            *string `json:"city" validate:"omitempty,max=100" example:"Istanbul"`
	WorkCountryCode *string `json:"work_country_code" validate:"omitempty,max=3" example:"TR"`
	StartDate       string  `json:"start_date" validate:"required,date" example:"2022-07-01"`
	EndDate         *string `json:"end_date" validate:"omitempty,date"`
	JobDescription  *string `json:"job_description" validate:"omitempty,max=2000"`
}

// Normalize trims text fields and turns blank optional fields into NULLs
func (r *CareerRequest) Normalize() {
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.City = validation.TrimPtr(r.City)
	r.WorkCountryCode = validation.TrimPtr(r.WorkCountryCode)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = validation.TrimPtr(r.EndDate)
	r.JobDescription = validation.TrimPtr(r.JobDescription)
}

// SkillRequest adds a skill tag
type SkillRequest struct {
	SkillName string `json:"skill_name" validate:"required,max=100" example:"Go"`
}

// Normalize trims the tag name
func (r *SkillRequest) Normalize() { r.SkillName = strings.TrimSpace(r.SkillName) }

// TagName returns the requested tag
func (r *SkillRequest) TagName() string { return r.SkillName }

// InterestRequest adds an interest tag
type InterestRequest struct {
	InterestName string `json:"interest_name" validate:"required,max=100" example:"Photography"`
}

// Normalize trims the tag name
func (r *InterestRequest) Normalize() { r.InterestName = strings.TrimSpace(r.InterestName) }

// TagName returns the requested tag
func (r *InterestRequest) TagName() string { return r.InterestName }

// ExpertiseRequest adds an expertise tag
type ExpertiseRequest struct {
	ExpertiseName string `json:"expertise_name" validate:"required,max=100" example:"Distributed systems"`
}

// Normalize trims the tag name
func (r *ExpertiseRequest) Normalize() { r.ExpertiseName = strings.TrimSpace(r.ExpertiseName) }

// TagName returns the requested tag
func (r *ExpertiseRequest) TagName() string { return r.ExpertiseName }
