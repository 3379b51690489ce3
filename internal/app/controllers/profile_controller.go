package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/middleware"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/session"
)

// ProfileService is the part of the profile service the controller needs
type ProfileService interface {
	GetProfile(ctx context.Context, sess session.Session, mode string) (*dto.ProfileResponse, error)
	SavePersonalInfo(ctx context.Context, sess session.Session, req *dto.PersonalInfoRequest) error
}

// ProfileController serves the logged-in person's profile
type ProfileController struct {
	profileService ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile returns the profile of the logged-in person
// @Summary Get own profile
// @Description Returns personal data and aggregated sub-records. Edit mode adds the form vocabularies.
// @Tags profile
// @Produce json
// @Param mode query string false "view or edit" Enums(view, edit)
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 400 {object} dto.APIResponse "Unknown mode"
// @Failure 401 {object} dto.APIResponse "Not logged in"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Security SessionCookie
// @Router /api/profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrAuthenticationRequired)
		return
	}

	resp, err := pc.profileService.GetProfile(c.Request.Context(), sess, c.DefaultQuery("mode", dto.ProfileModeView))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// SavePersonalInfo updates the personal fields of the profile
// @Summary Save personal information
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.PersonalInfoRequest true "Personal information"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Missing names or unknown country"
// @Failure 401 {object} dto.APIResponse "Not logged in"
// @Security SessionCookie
// @Router /profile/personal/save [post]
func (pc *ProfileController) SavePersonalInfo(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrAuthenticationRequired)
		return
	}

	var req dto.PersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("first name and last name are required"))
		return
	}

	if err := pc.profileService.SavePersonalInfo(c.Request.Context(), sess, &req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "personal information saved"))
}
