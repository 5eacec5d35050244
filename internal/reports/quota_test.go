package reports

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func seedReports(t *testing.T, repo *MemoryRepo, userId string, n int, createdAt time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := repo.Create(context.Background(), Report{
			ID:           fmt.Sprintf("report-%s-%d-%d", userId, createdAt.Unix(), i),
			UserID:       userId,
			ResumeID:     "resume-1",
			AnalysisType: ModeRole,
			Score:        50,
			CreatedAt:    createdAt,
		})
		if err != nil {
			t.Fatalf("seed report: %v", err)
		}
	}
}

func TestQuotaAllowsUnderLimit(t *testing.T) {
	repo := NewMemoryRepo()
	seedReports(t, repo, "user-1", 9, time.Now().UTC())
	guard := &QuotaGuard{Repo: repo, Limit: 10, Scope: QuotaScopeGlobal}

	if err := guard.Allow(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuotaRejectsAtLimit(t *testing.T) {
	repo := NewMemoryRepo()
	seedReports(t, repo, "user-1", 10, time.Now().UTC())
	guard := &QuotaGuard{Repo: repo, Limit: 10, Scope: QuotaScopeGlobal}

	if err := guard.Allow(context.Background(), "user-1"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestQuotaIgnoresYesterday(t *testing.T) {
	repo := NewMemoryRepo()
	yesterday := time.Now().UTC().Truncate(24 * time.Hour).Add(-time.Hour)
	seedReports(t, repo, "user-1", 10, yesterday)
	guard := &QuotaGuard{Repo: repo, Limit: 10, Scope: QuotaScopeGlobal}

	if err := guard.Allow(context.Background(), "user-1"); err != nil {
		t.Fatalf("yesterday's reports must not count: %v", err)
	}
}

func TestQuotaGlobalScopeCountsOtherUsers(t *testing.T) {
	repo := NewMemoryRepo()
	seedReports(t, repo, "user-2", 10, time.Now().UTC())
	guard := &QuotaGuard{Repo: repo, Limit: 10, Scope: QuotaScopeGlobal}

	if err := guard.Allow(context.Background(), "user-1"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("global scope must count other users, got %v", err)
	}
}

func TestQuotaOwnerScopeIgnoresOtherUsers(t *testing.T) {
	repo := NewMemoryRepo()
	seedReports(t, repo, "user-2", 10, time.Now().UTC())
	guard := &QuotaGuard{Repo: repo, Limit: 10, Scope: QuotaScopeOwner}

	if err := guard.Allow(context.Background(), "user-1"); err != nil {
		t.Fatalf("owner scope must not count other users: %v", err)
	}
}

type failingCountRepo struct {
	ReportsRepo
}

func (r *failingCountRepo) CountCreatedSince(ctx context.Context, since time.Time, userId string) (int, error) {
	return 0, errors.New("db down")
}

func TestQuotaCheckFailure(t *testing.T) {
	guard := &QuotaGuard{Repo: &failingCountRepo{}, Limit: 10, Scope: QuotaScopeGlobal}

	err := guard.Allow(context.Background(), "user-1")
	if !errors.Is(err, ErrQuotaCheck) {
		t.Fatalf("expected ErrQuotaCheck, got %v", err)
	}
}
