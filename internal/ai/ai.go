package ai

import (
	"context"
	"errors"
)

// Client abstracts the assessment model provider.
type Client interface {
	// AssessForRole scores a résumé against a fixed role label.
	AssessForRole(ctx context.Context, resumeText, role string) (RoleAssessment, error)
	// AssessForJD scores a résumé against a pasted job description.
	AssessForJD(ctx context.Context, resumeText, jobDescription string) (JDAssessment, error)
}

// RoleAssessment is the model's answer in role mode. Scores are raw model
// output; clamping and truncation happen at persistence time.
type RoleAssessment struct {
	Score       float64
	Strengths   []string
	Weaknesses  []string
	Suggestions []string
}

// JDAssessment is the model's answer in job-description mode.
type JDAssessment struct {
	Score           float64
	MatchScore      float64
	Strengths       []string
	Weaknesses      []string
	Suggestions     []string
	MissingKeywords []string
}

var (
	// ErrUnavailable means the upstream call itself failed (network, rate
	// limit, timeout, API error). Distinct from shape/parse failures so
	// callers can choose a different status.
	ErrUnavailable = errors.New("assessment service unavailable")
	// ErrMalformed means no JSON object could be located in the response.
	ErrMalformed = errors.New("assessment response malformed")
	// ErrInvalidShape means the JSON parsed but required fields were absent
	// or of the wrong type.
	ErrInvalidShape = errors.New("assessment response has invalid shape")
)
