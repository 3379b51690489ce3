package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/middleware"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/session"
)

// ResourceService is the part of the resource service the controller needs
type ResourceService interface {
	Add(ctx context.Context, sess session.Session, kind string, decode func(payload interface{}) error) (int64, error)
	Delete(ctx context.Context, sess session.Session, kind string, key int64) error
}

// ResourceController adds and removes education, career, skill, interest and expertise entries
type ResourceController struct {
	resourceService ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// Add creates a profile resource owned by the logged-in person
// @Summary Add a profile resource
// @Description kind is one of education, career, skill, interest, expertise. Career and expertise are alumni only.
// @Tags profile
// @Accept json
// @Produce json
// @Param kind path string true "Resource kind" Enums(education, career, skill, interest, expertise)
// @Param request body object true "EducationRequest, CareerRequest, SkillRequest, InterestRequest or ExpertiseRequest"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 401 {object} dto.APIResponse "Not logged in"
// @Failure 403 {object} dto.APIResponse "Role not allowed"
// @Failure 404 {object} dto.APIResponse "Unknown kind"
// @Failure 409 {object} dto.APIResponse "Already exists"
// @Security SessionCookie
// @Router /profile/{kind}/add [post]
func (rc *ResourceController) Add(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrAuthenticationRequired)
		return
	}

	decode := func(payload interface{}) error { return c.ShouldBindJSON(payload) }
	id, err := rc.resourceService.Add(c.Request.Context(), sess, c.Param("kind"), decode)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}, c.Param("kind")+" added"))
}

// Delete removes a profile resource owned by the logged-in person
// @Summary Delete a profile resource
// @Description For tag kinds the id is the tag id. Rows that do not exist or belong to someone else both answer 403.
// @Tags profile
// @Produce json
// @Param kind path string true "Resource kind" Enums(education, career, skill, interest, expertise)
// @Param id path int true "Row or tag id"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Malformed id"
// @Failure 401 {object} dto.APIResponse "Not logged in"
// @Failure 403 {object} dto.APIResponse "Not owned or role not allowed"
// @Failure 404 {object} dto.APIResponse "Unknown kind"
// @Security SessionCookie
// @Router /profile/{kind}/{id} [delete]
func (rc *ResourceController) Delete(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrAuthenticationRequired)
		return
	}

	key, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || key <= 0 {
		middleware.HandleAPIError(c, apperrors.NewValidationError("id must be a positive integer"))
		return
	}

	if err := rc.resourceService.Delete(c.Request.Context(), sess, c.Param("kind"), key); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, c.Param("kind")+" deleted"))
}
