package v1

import (
	"net/http"

	"pathfinder-backend/internal/delivery/http/response"
	"pathfinder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := r.Group("/profile")
	{
		profile.GET("/me", handler.GetProfile)
		profile.PUT("/me", handler.UpdateProfile)
	}
}

// GetProfile godoc
// @Summary      Get the current user's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      404  {object}  response.Response
// @Router       /profile/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetOwn(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// UpdateProfile godoc
// @Summary      Create or update the current user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body domain.Profile true "Profile fields"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      400  {object}  response.Response
// @Router       /profile/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.profileUC.Upsert(c, &profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}
