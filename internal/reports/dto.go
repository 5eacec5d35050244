package reports

import "time"

// ReportResponse is the outward-facing representation of a full report.
// match_score and missing_keywords are null in role mode.
type ReportResponse struct {
	ID              string    `json:"id"`
	ResumeID        string    `json:"resume_id"`
	AnalysisType    string    `json:"analysis_type"`
	Role            string    `json:"role,omitempty"`
	JobDescription  string    `json:"job_description,omitempty"`
	Score           int       `json:"score"`
	MatchScore      *int      `json:"match_score"`
	Strengths       []string  `json:"strengths"`
	Weaknesses      []string  `json:"weaknesses"`
	Suggestions     []string  `json:"suggestions"`
	MissingKeywords []string  `json:"missing_keywords"`
	CreatedAt       time.Time `json:"created_at"`
}

// SummaryResponse is a history row.
type SummaryResponse struct {
	ID           string    `json:"id"`
	ResumeID     string    `json:"resume_id"`
	Role         string    `json:"role,omitempty"`
	AnalysisType string    `json:"analysis_type"`
	Score        int       `json:"score"`
	MatchScore   *int      `json:"match_score"`
	CreatedAt    time.Time `json:"created_at"`
}

func toResponse(report Report) ReportResponse {
	return ReportResponse{
		ID:              report.ID,
		ResumeID:        report.ResumeID,
		AnalysisType:    report.AnalysisType,
		Role:            report.Role,
		JobDescription:  report.JobDescription,
		Score:           report.Score,
		MatchScore:      report.MatchScore,
		Strengths:       report.Strengths,
		Weaknesses:      report.Weaknesses,
		Suggestions:     report.Suggestions,
		MissingKeywords: report.MissingKeywords,
		CreatedAt:       report.CreatedAt,
	}
}

func toSummaryResponse(summary Summary) SummaryResponse {
	return SummaryResponse{
		ID:           summary.ID,
		ResumeID:     summary.ResumeID,
		Role:         summary.Role,
		AnalysisType: summary.AnalysisType,
		Score:        summary.Score,
		MatchScore:   summary.MatchScore,
		CreatedAt:    summary.CreatedAt,
	}
}
