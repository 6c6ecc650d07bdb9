package v1

import (
	"net/http"

	"pathfinder-backend/internal/delivery/http/response"
	"pathfinder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Add)
	}
}

// List godoc
// @Summary      List job history
// @Description  Defaults to the requester's own history; pass ?user= to view
// @Description  another user's, which requires a dashboard grant.
// @Tags         jobs
// @Produce      json
// @Param        user query string false "Owner user ID (default: self)"
// @Success      200  {object}  response.Response{data=[]domain.JobHistory}
// @Failure      403  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	requesterID := c.GetString(string(domain.KeyUserID))
	ownerID := c.Query("user")

	history, err := h.jobUC.List(c, requesterID, ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job history", history)
}

// Add godoc
// @Summary      Add a job history entry
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        request body domain.JobHistory true "Job history entry"
// @Success      201  {object}  response.Response{data=domain.JobHistory}
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Add(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var job domain.JobHistory
	if err := c.ShouldBindJSON(&job); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.jobUC.Add(c, userID, &job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job history uploaded successfully", job)
}
