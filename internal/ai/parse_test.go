package ai

import (
	"errors"
	"testing"
)

func TestExtractObjectPlainJSON(t *testing.T) {
	raw := `{"score": 80}`
	got, err := ExtractObject(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != raw {
		t.Fatalf("got %q", got)
	}
}

func TestExtractObjectStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"score\": 80}\n```"
	got, err := ExtractObject(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"score": 80}` {
		t.Fatalf("got %q", got)
	}
}

func TestExtractObjectIgnoresSurroundingProse(t *testing.T) {
	raw := "Here is the analysis you asked for:\n{\"score\": 42}\nLet me know if you need more."
	got, err := ExtractObject(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"score": 42}` {
		t.Fatalf("got %q", got)
	}
}

func TestExtractObjectNoJSON(t *testing.T) {
	_, err := ExtractObject("I could not analyze this resume.")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestExtractObjectInvalidJSON(t *testing.T) {
	_, err := ExtractObject(`{"score": }`)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestDecodeRoleValid(t *testing.T) {
	raw := []byte(`{
		"score": 87,
		"strengths": ["Go", "Postgres"],
		"weaknesses": ["No Kubernetes"],
		"suggestions": ["Add metrics experience"]
	}`)
	got, err := DecodeRole(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 87 {
		t.Fatalf("score = %v", got.Score)
	}
	if len(got.Strengths) != 2 || got.Strengths[0] != "Go" {
		t.Fatalf("strengths = %v", got.Strengths)
	}
}

func TestDecodeRoleMissingField(t *testing.T) {
	raw := []byte(`{"score": 87, "strengths": [], "weaknesses": []}`)
	_, err := DecodeRole(raw)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
}

func TestDecodeRoleScoreNotNumeric(t *testing.T) {
	raw := []byte(`{"score": "high", "strengths": [], "weaknesses": [], "suggestions": []}`)
	_, err := DecodeRole(raw)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
}

func TestDecodeJDValid(t *testing.T) {
	raw := []byte(`{
		"score": 70,
		"match_score": 55,
		"strengths": ["REST APIs"],
		"weaknesses": ["No Terraform"],
		"suggestions": ["Mention CI/CD"],
		"missing_keywords": ["terraform", "grpc"]
	}`)
	got, err := DecodeJD(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MatchScore != 55 {
		t.Fatalf("match_score = %v", got.MatchScore)
	}
	if len(got.MissingKeywords) != 2 {
		t.Fatalf("missing_keywords = %v", got.MissingKeywords)
	}
}

func TestDecodeJDMissingMatchScore(t *testing.T) {
	raw := []byte(`{
		"score": 70,
		"strengths": [],
		"weaknesses": [],
		"suggestions": [],
		"missing_keywords": []
	}`)
	_, err := DecodeJD(raw)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
}

func TestDecodeJDKeywordsNotStrings(t *testing.T) {
	raw := []byte(`{
		"score": 70,
		"match_score": 55,
		"strengths": [],
		"weaknesses": [],
		"suggestions": [],
		"missing_keywords": [1, 2, 3]
	}`)
	_, err := DecodeJD(raw)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
}
