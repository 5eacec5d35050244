package reports

import "time"

// Analysis modes.
const (
	ModeRole = "role"
	ModeJD   = "jd"
)

// Report is a persisted assessment of a resume.
type Report struct {
	ID              string
	UserID          string
	ResumeID        string
	AnalysisType    string
	Role            string
	JobDescription  string
	Score           int
	MatchScore      *int
	Strengths       []string
	Weaknesses      []string
	Suggestions     []string
	MissingKeywords []string
	CreatedAt       time.Time
}

// Summary is the trimmed listing row; the large text fields stay out of
// history responses.
type Summary struct {
	ID           string
	ResumeID     string
	Role         string
	AnalysisType string
	Score        int
	MatchScore   *int
	CreatedAt    time.Time
}
