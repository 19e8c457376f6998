package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/devconnect-io/devconnect-api/internal/application/usecase/profile"
	"github.com/devconnect-io/devconnect-api/pkg/apperror"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	entryUseCase   *profileUC.EntryUseCase
	accountUseCase *profileUC.AccountUseCase
}

func NewProfileHandler(p *profileUC.ProfileUseCase, e *profileUC.EntryUseCase, a *profileUC.AccountUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: p,
		entryUseCase:   e,
		accountUseCase: a,
	}
}

// GetMine handles GET /api/profile/me.
func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID, ok := UserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("user id missing from authenticated context", nil))
		return
	}

	output, err := h.profileUseCase.ExecuteGet(c.Request.Context(), profileUC.GetProfileInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Profile)
}

// Upsert handles POST /api/profile.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := UserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("user id missing from authenticated context", nil))
		return
	}

	var req upsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validationError(err, upsertProfileMessages))
		return
	}

	output, err := h.profileUseCase.ExecuteUpsert(c.Request.Context(), profileUC.UpsertProfileInput{
		UserID: userID,
		Update: req.toUpdate(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Profile)
}

// List handles GET /api/profile.
func (h *ProfileHandler) List(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Profiles)
}

// GetByUserID handles GET /api/profile/user/:user_id. A malformed id gets
// the same no-profile response as a well-formed but absent one.
func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.Error(apperror.NewNoProfile("malformed user id in path"))
		return
	}

	output, err := h.profileUseCase.ExecuteGet(c.Request.Context(), profileUC.GetProfileInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Profile)
}

// DeleteAccount handles DELETE /api/profile.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := UserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("user id missing from authenticated context", nil))
		return
	}

	if err := h.accountUseCase.ExecuteDelete(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User Deleted"})
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := UserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("user id missing from authenticated context", nil))
		return
	}

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validationError(err, experienceMessages))
		return
	}

	p, err := h.entryUseCase.AddExperience(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// RemoveExperience handles DELETE /api/profile/experience/:exp_id. A
// malformed entry id behaves like an unknown one.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := UserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("user id missing from authenticated context", nil))
		return
	}

	entryID, err := uuid.Parse(c.Param("exp_id"))
	if err != nil {
		c.Error(apperror.NewEntryNotFound("malformed experience id in path"))
		return
	}

	p, err := h.entryUseCase.RemoveExperience(c.Request.Context(), userID, entryID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := UserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("user id missing from authenticated context", nil))
		return
	}

	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validationError(err, educationMessages))
		return
	}

	p, err := h.entryUseCase.AddEducation(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// RemoveEducation handles DELETE /api/profile/education/:edu_id.
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := UserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("user id missing from authenticated context", nil))
		return
	}

	entryID, err := uuid.Parse(c.Param("edu_id"))
	if err != nil {
		c.Error(apperror.NewEntryNotFound("malformed education id in path"))
		return
	}

	p, err := h.entryUseCase.RemoveEducation(c.Request.Context(), userID, entryID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}
