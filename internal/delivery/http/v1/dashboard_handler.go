package v1

import (
	"net/http"

	"pathfinder-backend/internal/delivery/http/response"
	"pathfinder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(r *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/stats", handler.Stats)
		dashboard.GET("/visualize", handler.Visualize)
	}
}

// Stats godoc
// @Summary      Get the current user's dashboard counters and fit score
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.DashboardStats}
// @Router       /dashboard/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	stats, err := h.dashboardUC.Stats(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard stats", stats)
}

// Visualize godoc
// @Summary      Compute the score report for a dashboard
// @Description  Defaults to the requester's own dashboard; pass ?user= to
// @Description  view another user's, which requires a dashboard grant.
// @Tags         dashboard
// @Produce      json
// @Param        user query string false "Owner user ID (default: self)"
// @Success      200  {object}  response.Response{data=domain.ScoreReport}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /dashboard/visualize [get]
// @Security     BearerAuth
func (h *DashboardHandler) Visualize(c *gin.Context) {
	requesterID := c.GetString(string(domain.KeyUserID))
	ownerID := c.Query("user")

	report, err := h.dashboardUC.Visualize(c, requesterID, ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Score report", report)
}
