package resumes

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeiq-backend/internal/extract"
	"resumeiq-backend/internal/shared/server/middleware"
	"resumeiq-backend/internal/shared/server/respond"
)

const maxUploadSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/upload", h.upload)
	rg.GET("/resume/list", h.list)
	rg.DELETE("/resume/:id", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "NO_FILE", "No file uploaded. Attach a PDF under the key 'resume'.", nil)
		return
	}

	if !isPDF(fileHeader.Header.Get("Content-Type"), fileHeader.Filename) {
		respond.Error(c, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Only PDF files are accepted.", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unable to read the uploaded file.", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unable to read the uploaded file.", nil)
		return
	}

	resume, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnreadable), errors.Is(err, extract.ErrScanned):
			respond.Error(c, http.StatusBadRequest, "DOCUMENT_UNREADABLE", "We could not read text from this PDF. If it is a scanned image, export a text-based PDF from your word processor and try again.", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to save the resume.", nil)
		}
		return
	}

	respond.Created(c, gin.H{"resume": toResponse(resume)})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	found, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list resumes.", nil)
		return
	}

	resp := make([]ResumeResponse, 0, len(found))
	for _, resume := range found {
		resp = append(resp, toResponse(resume))
	}
	respond.OK(c, gin.H{"resumes": resp})
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, resumeID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "RESUME_NOT_FOUND", "Resume not found.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete resume.", nil)
		return
	}

	respond.NoContent(c)
}

func isPDF(contentType, fileName string) bool {
	if strings.EqualFold(strings.TrimSpace(contentType), "application/pdf") {
		return true
	}
	return contentType == "" && strings.HasSuffix(strings.ToLower(fileName), ".pdf")
}
