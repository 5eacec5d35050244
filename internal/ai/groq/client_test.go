package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"resumeiq-backend/internal/ai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient("test-key", "llama-3.3-70b-versatile")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	c.apiURL = srv.URL
	return c, srv
}

func completionBody(content string) []byte {
	body, _ := json.Marshal(map[string]any{
		"id":    "cmpl-1",
		"model": "llama-3.3-70b-versatile",
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return body
}

func TestAssessForRole(t *testing.T) {
	var gotReq chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write(completionBody(`{"score": 84, "strengths": ["Go"], "weaknesses": ["K8s"], "suggestions": ["Add metrics"]}`))
	})

	got, err := client.AssessForRole(context.Background(), "resume text here", "Backend Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 84 {
		t.Fatalf("score = %v", got.Score)
	}
	if gotReq.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("model = %q", gotReq.Model)
	}
	if gotReq.Temperature != 0.2 {
		t.Fatalf("temperature = %v", gotReq.Temperature)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("messages = %+v", gotReq.Messages)
	}
}

func TestAssessForJDFencedResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionBody("```json\n{\"score\": 70, \"match_score\": 55, \"strengths\": [], \"weaknesses\": [], \"suggestions\": [], \"missing_keywords\": [\"grpc\"]}\n```"))
	})

	got, err := client.AssessForJD(context.Background(), "resume", "job description")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MatchScore != 55 {
		t.Fatalf("match_score = %v", got.MatchScore)
	}
	if len(got.MissingKeywords) != 1 || got.MissingKeywords[0] != "grpc" {
		t.Fatalf("missing_keywords = %v", got.MissingKeywords)
	}
}

func TestAssessForRoleUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit"}}`))
	})

	_, err := client.AssessForRole(context.Background(), "resume", "role")
	if !errors.Is(err, ai.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAssessForRoleMalformedContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionBody("Sorry, I cannot analyze this resume."))
	})

	_, err := client.AssessForRole(context.Background(), "resume", "role")
	if !errors.Is(err, ai.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestAssessForRoleInvalidShape(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionBody(`{"score": 90}`))
	})

	_, err := client.AssessForRole(context.Background(), "resume", "role")
	if !errors.Is(err, ai.ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
}

func TestNewClientRequiresKeyAndModel(t *testing.T) {
	if _, err := NewClient("", "model"); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("key", " "); err == nil {
		t.Fatal("expected error for missing model")
	}
}
