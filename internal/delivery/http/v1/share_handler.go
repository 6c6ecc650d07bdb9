package v1

import (
	"net/http"

	"pathfinder-backend/internal/delivery/http/response"
	"pathfinder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ShareHandler struct {
	shareUC domain.ShareUsecase
}

func NewShareHandler(r *gin.RouterGroup, shareUC domain.ShareUsecase) {
	handler := &ShareHandler{shareUC: shareUC}

	r.GET("/share", handler.GetSharingState)
	r.PUT("/share", handler.UpdateSharing)
	r.GET("/shared", handler.SharedWithMe)
}

// GetSharingState godoc
// @Summary      Get the current user's sharing configuration
// @Tags         sharing
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SharingState}
// @Router       /share [get]
// @Security     BearerAuth
func (h *ShareHandler) GetSharingState(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	state, err := h.shareUC.GetSharingState(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Sharing state", state)
}

// UpdateSharing godoc
// @Summary      Replace the current user's sharing configuration
// @Description  The submitted state is diffed against the stored grants and
// @Description  only the difference is applied, atomically.
// @Tags         sharing
// @Accept       json
// @Produce      json
// @Param        request body domain.UpdateSharingRequest true "Desired sharing state"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /share [put]
// @Security     BearerAuth
func (h *ShareHandler) UpdateSharing(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req domain.UpdateSharingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.shareUC.UpdateSharing(c, userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Sharing settings updated", nil)
}

// SharedWithMe godoc
// @Summary      List documents and dashboards shared to the current user
// @Tags         sharing
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SharedWithMeResult}
// @Router       /shared [get]
// @Security     BearerAuth
func (h *ShareHandler) SharedWithMe(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	result, err := h.shareUC.SharedWithMe(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Shared with me", result)
}
