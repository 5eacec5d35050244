package reports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resumeiq-backend/internal/ai"
	"resumeiq-backend/internal/extract"
	"resumeiq-backend/internal/resumes"
	"resumeiq-backend/internal/shared/metrics"
	"resumeiq-backend/internal/shared/storage/object"
	"resumeiq-backend/internal/shared/telemetry"
)

// GenerateInput is a validated generate request.
type GenerateInput struct {
	ResumeID       string
	Mode           string
	Role           string
	JobDescription string
}

// Service orchestrates report generation: quota check, resume fetch, text
// extraction, AI assessment, normalization, persistence. Each step maps its
// failure to one typed error and nothing is retried; a failed request restarts
// from the quota check.
type Service struct {
	Quota   *QuotaGuard
	Resumes resumes.ResumesRepo
	Store   object.ObjectStore
	AI      ai.Client
	Repo    ReportsRepo

	// ExtractText defaults to extract.Text; overridable in tests.
	ExtractText func(data []byte) (string, error)
}

// NewService constructs a Service with the default text extractor.
func NewService(quota *QuotaGuard, resumeRepo resumes.ResumesRepo, store object.ObjectStore, client ai.Client, repo ReportsRepo) *Service {
	return &Service{
		Quota:       quota,
		Resumes:     resumeRepo,
		Store:       store,
		AI:          client,
		Repo:        repo,
		ExtractText: extract.Text,
	}
}

// Generate runs the full pipeline and returns the persisted report.
func (s *Service) Generate(ctx context.Context, userId string, in GenerateInput) (Report, error) {
	started := time.Now()

	if err := s.Quota.Allow(ctx, userId); err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			metrics.IncQuotaRejected()
		}
		return Report{}, err
	}

	resume, err := s.Resumes.GetByID(ctx, userId, in.ResumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return Report{}, ErrResumeNotFound
		}
		metrics.IncReportFailed()
		return Report{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	data, err := s.fetchObject(ctx, resume.StorageKey)
	if err != nil {
		metrics.IncReportFailed()
		return Report{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	resumeText, err := s.ExtractText(data)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	report := Report{
		ID:           uuid.NewString(),
		UserID:       userId,
		ResumeID:     resume.ID,
		AnalysisType: in.Mode,
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}

	switch in.Mode {
	case ModeJD:
		assessment, aiErr := s.AI.AssessForJD(ctx, resumeText, in.JobDescription)
		if aiErr != nil {
			metrics.IncReportFailed()
			return Report{}, fmt.Errorf("%w: %v", ErrAssessmentFailed, aiErr)
		}
		matchScore := clampScore(assessment.MatchScore)
		report.JobDescription = in.JobDescription
		report.Score = clampScore(assessment.Score)
		report.MatchScore = &matchScore
		report.Strengths = truncate(assessment.Strengths, maxListItems)
		report.Weaknesses = truncate(assessment.Weaknesses, maxListItems)
		report.Suggestions = truncate(assessment.Suggestions, maxListItems)
		report.MissingKeywords = truncate(assessment.MissingKeywords, maxKeywords)
	default:
		assessment, aiErr := s.AI.AssessForRole(ctx, resumeText, in.Role)
		if aiErr != nil {
			metrics.IncReportFailed()
			return Report{}, fmt.Errorf("%w: %v", ErrAssessmentFailed, aiErr)
		}
		report.Score = clampScore(assessment.Score)
		report.Strengths = truncate(assessment.Strengths, maxListItems)
		report.Weaknesses = truncate(assessment.Weaknesses, maxListItems)
		report.Suggestions = truncate(assessment.Suggestions, maxListItems)
	}

	if err := s.Repo.Create(ctx, report); err != nil {
		metrics.IncReportFailed()
		telemetry.Error("report persist failed after assessment", map[string]any{
			"report_id": report.ID,
			"resume_id": report.ResumeID,
			"error":     err.Error(),
		})
		return Report{}, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	metrics.IncReportGenerated()
	metrics.ObserveReportDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("report generated", map[string]any{
		"report_id":     report.ID,
		"resume_id":     report.ResumeID,
		"analysis_type": report.AnalysisType,
		"duration_ms":   time.Since(started).Milliseconds(),
	})
	return report, nil
}

func (s *Service) fetchObject(ctx context.Context, storageKey string) ([]byte, error) {
	rc, err := s.Store.Open(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// History returns the caller's report summaries, newest first.
func (s *Service) History(ctx context.Context, userId string) ([]Summary, error) {
	return s.Repo.ListByUser(ctx, userId)
}

// Get returns a full report scoped to the owner.
func (s *Service) Get(ctx context.Context, userId, reportID string) (Report, error) {
	return s.Repo.GetByID(ctx, userId, reportID)
}

// Delete hard-deletes a report scoped to the owner.
func (s *Service) Delete(ctx context.Context, userId, reportID string) error {
	return s.Repo.DeleteByID(ctx, userId, reportID)
}
