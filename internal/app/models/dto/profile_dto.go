package dto

import (
	"strings"

	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/pkg/validation"
)

// Profile view modes
const (
	ProfileModeView = "view"
	ProfileModeEdit = "edit"
)

// ProfileResponse is the profile read model plus, in edit mode, the
// vocabularies the edit forms need
type ProfileResponse struct {
	Mode        string              `json:"mode" example:"view"`
	Profile     *models.Profile     `json:"profile"`
	Countries   []models.Country    `json:"countries,omitempty"`
	Programmes  []models.Programme  `json:"programmes,omitempty"`
	StudyLevels []models.StudyLevel `json:"study_levels,omitempty"`
}

// PersonalInfoRequest updates the personal part of a profile
type PersonalInfoRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=100" example:"John"`
	LastName    string  `json:"last_name" validate:"required,max=100" example:"Doe"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=30" example:"+90 555 000 0000"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	HomeCountry *string `json:"home_country" validate:"omitempty,max=3" example:"TR"`
}

// Normalize trims names and turns blank optional fields into NULLs
func (r *PersonalInfoRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.PhoneNumber = validation.TrimPtr(r.PhoneNumber)
	r.Address = validation.TrimPtr(r.Address)
	r.HomeCountry = validation.TrimPtr(r.HomeCountry)
}

// ToModel converts the request into the personal info model
func (r *PersonalInfoRequest) ToModel() models.PersonalInfo {
	return models.PersonalInfo{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		HomeCountry: r.HomeCountry,
	}
}
