package reports

import "errors"

// Each pipeline step maps its failure to exactly one of these; the handler
// translates each to a single HTTP status. No step retries.
var (
	// ErrQuotaExceeded means the daily report ceiling is already reached.
	ErrQuotaExceeded = errors.New("daily report limit reached")
	// ErrQuotaCheck means the quota count itself could not be computed.
	ErrQuotaCheck = errors.New("quota check failed")
	// ErrResumeNotFound covers both a missing resume and an owner mismatch.
	ErrResumeNotFound = errors.New("resume not found")
	// ErrStorageUnavailable means the stored resume bytes could not be fetched.
	ErrStorageUnavailable = errors.New("resume storage unavailable")
	// ErrDocumentUnreadable means text extraction failed or found no text layer.
	ErrDocumentUnreadable = errors.New("document unreadable")
	// ErrAssessmentFailed means the AI call failed or returned an unusable shape.
	ErrAssessmentFailed = errors.New("assessment failed")
	// ErrPersistFailed means the assessment succeeded but the row insert did
	// not; the expensive AI work is lost.
	ErrPersistFailed = errors.New("report could not be saved")
	// ErrNotFound covers a missing report or an owner mismatch.
	ErrNotFound = errors.New("report not found")
)
