package v1

import (
	"net/http"
	"strconv"

	"pathfinder-backend/internal/delivery/http/response"
	"pathfinder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentUC domain.DocumentUsecase
}

func NewDocumentHandler(r *gin.RouterGroup, documentUC domain.DocumentUsecase) {
	handler := &DocumentHandler{documentUC: documentUC}

	docs := r.Group("/documents")
	{
		docs.GET("", handler.List)
		docs.POST("", handler.Upload)
		docs.DELETE("/:id", handler.Delete)
	}

	r.GET("/users/:id/documents", handler.ListVisible)
}

// List godoc
// @Summary      List the current user's documents
// @Tags         documents
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Document}
// @Router       /documents [get]
// @Security     BearerAuth
func (h *DocumentHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	docs, err := h.documentUC.List(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Documents", docs)
}

// ListVisible godoc
// @Summary      List another user's documents visible to the requester
// @Tags         documents
// @Produce      json
// @Param        id path string true "Owner user ID"
// @Success      200  {object}  response.Response{data=[]domain.Document}
// @Router       /users/{id}/documents [get]
// @Security     BearerAuth
func (h *DocumentHandler) ListVisible(c *gin.Context) {
	requesterID := c.GetString(string(domain.KeyUserID))
	ownerID := c.Param("id")

	docs, err := h.documentUC.ListVisible(c, requesterID, ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Documents", docs)
}

// Upload godoc
// @Summary      Upload a document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file      formData file   true  "Document file"
// @Param        file_type formData string false "Type tag (resume, certificate, award)"
// @Success      201  {object}  response.Response{data=domain.Document}
// @Failure      400  {object}  response.Response
// @Router       /documents [post]
// @Security     BearerAuth
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file selected", nil)
		return
	}

	fileType := c.PostForm("file_type")
	if fileType == "" {
		fileType = "resume"
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Could not read uploaded file", nil)
		return
	}
	defer file.Close()

	doc, err := h.documentUC.Upload(c, userID, &domain.DocumentUpload{
		FileName:    fileHeader.Filename,
		FileType:    fileType,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Document uploaded successfully", doc)
}

// Delete godoc
// @Summary      Delete an owned document
// @Tags         documents
// @Produce      json
// @Param        id path int true "Document ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /documents/{id} [delete]
// @Security     BearerAuth
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	docID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid document id", nil)
		return
	}

	if err := h.documentUC.Delete(c, userID, docID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Document deleted successfully", nil)
}
