package reports

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resumeiq-backend/internal/shared/server/middleware"
	"resumeiq-backend/internal/shared/server/respond"
)

const (
	maxRoleLength           = 200
	minJobDescriptionLength = 100
	maxJobDescriptionLength = 8000
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/report/generate", h.generate)
	rg.GET("/report/history", h.history)
	rg.GET("/report/:id", h.get)
	rg.GET("/report/:id/pdf", h.downloadPDF)
	rg.DELETE("/report/:id", h.remove)
}

type generateRequest struct {
	ResumeID       string `json:"resume_id"`
	Mode           string `json:"mode"`
	Role           string `json:"role"`
	JobDescription string `json:"job_description"`
}

func (req *generateRequest) validate() (GenerateInput, []respond.FieldError) {
	var fields []respond.FieldError

	resumeID := strings.TrimSpace(req.ResumeID)
	if resumeID == "" {
		fields = append(fields, respond.FieldError{Field: "resume_id", Message: "'resume_id' is required."})
	} else if _, err := uuid.Parse(resumeID); err != nil {
		fields = append(fields, respond.FieldError{Field: "resume_id", Message: "'resume_id' must be a valid UUID."})
	}

	mode := strings.TrimSpace(req.Mode)
	if mode == "" {
		mode = ModeRole
	}
	if mode != ModeRole && mode != ModeJD {
		fields = append(fields, respond.FieldError{Field: "mode", Message: `'mode' must be either "role" or "jd".`})
	}

	role := strings.TrimSpace(req.Role)
	if len(role) > maxRoleLength {
		fields = append(fields, respond.FieldError{Field: "role", Message: fmt.Sprintf("Role must be at most %d characters.", maxRoleLength)})
	}
	if mode == ModeRole && role == "" {
		fields = append(fields, respond.FieldError{Field: "role", Message: "Role mode requires a non-empty 'role'."})
	}

	jobDescription := strings.TrimSpace(req.JobDescription)
	if len(jobDescription) > maxJobDescriptionLength {
		fields = append(fields, respond.FieldError{Field: "job_description", Message: fmt.Sprintf("Job description must be at most %d characters.", maxJobDescriptionLength)})
	}
	if mode == ModeJD && len(jobDescription) < minJobDescriptionLength {
		fields = append(fields, respond.FieldError{Field: "job_description", Message: fmt.Sprintf("JD mode requires a 'job_description' of at least %d characters.", minJobDescriptionLength)})
	}

	if fields != nil {
		return GenerateInput{}, fields
	}

	in := GenerateInput{ResumeID: resumeID, Mode: mode}
	if mode == ModeJD {
		in.JobDescription = jobDescription
	} else {
		in.Role = role
	}
	return in, nil
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body.", nil)
		return
	}

	in, fields := req.validate()
	if fields != nil {
		respond.ValidationError(c, fields)
		return
	}

	report, err := h.Svc.Generate(c.Request.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuotaExceeded):
			respond.Error(c, http.StatusForbidden, "DAILY_LIMIT_REACHED",
				fmt.Sprintf("Daily limit reached (%d reports/day).", h.Svc.Quota.Limit), nil)
		case errors.Is(err, ErrResumeNotFound):
			respond.Error(c, http.StatusNotFound, "RESUME_NOT_FOUND", "Resume not found or access denied.", nil)
		case errors.Is(err, ErrDocumentUnreadable):
			respond.Error(c, http.StatusBadRequest, "DOCUMENT_UNREADABLE", "We could not read text from this PDF. If it is a scanned image, export a text-based PDF from your word processor and try again.", nil)
		case errors.Is(err, ErrAssessmentFailed):
			respond.Error(c, http.StatusBadGateway, "AI_UNAVAILABLE", "AI service is temporarily unavailable. Please try again.", nil)
		case errors.Is(err, ErrQuotaCheck):
			respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify daily report limit.", nil)
		case errors.Is(err, ErrStorageUnavailable):
			respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve resume file from storage.", nil)
		case errors.Is(err, ErrPersistFailed):
			respond.Error(c, http.StatusInternalServerError, "REPORT_NOT_SAVED", "Report generated but could not be saved.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate report.", nil)
		}
		return
	}

	respond.Created(c, gin.H{"report": toResponse(report)})
}

func (h *Handler) history(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	summaries, err := h.Svc.History(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch reports from the database.", nil)
		return
	}

	resp := make([]SummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		resp = append(resp, toSummaryResponse(summary))
	}
	respond.OK(c, gin.H{"reports": resp})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	report, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "REPORT_NOT_FOUND", "Report not found or access denied.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch report.", nil)
		return
	}

	respond.OK(c, gin.H{"report": toResponse(report)})
}

func (h *Handler) downloadPDF(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	report, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "REPORT_NOT_FOUND", "Report not found or access denied.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch report.", nil)
		return
	}

	rendered, err := RenderPDF(report)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render report PDF.", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="resumeiq-%s-report.pdf"`, fileSlug(report)))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", rendered)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "REPORT_NOT_FOUND", "Report not found or access denied.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete report.", nil)
		return
	}

	respond.NoContent(c)
}

// fileSlug derives the download filename segment from the role, falling back
// to "jd-match" for jd reports.
func fileSlug(report Report) string {
	source := report.Role
	if source == "" {
		source = "jd-match"
	}
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(source) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := b.String()
	if len(slug) > 40 {
		slug = slug[:40]
	}
	return slug
}
