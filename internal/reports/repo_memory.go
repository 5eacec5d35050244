package reports

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of ReportsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Report // userId -> reports
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Report),
	}
}

// Create stores a report for a user.
func (r *MemoryRepo) Create(ctx context.Context, report Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[report.UserID] = append(r.data[report.UserID], report)
	return nil
}

// ListByUser returns summaries newest-first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	stored := r.data[userId]
	r.mu.RUnlock()

	out := make([]Summary, 0, len(stored))
	for _, report := range stored {
		out = append(out, Summary{
			ID:           report.ID,
			ResumeID:     report.ResumeID,
			Role:         report.Role,
			AnalysisType: report.AnalysisType,
			Score:        report.Score,
			MatchScore:   report.MatchScore,
			CreatedAt:    report.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID returns a full report for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, reportID string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, report := range r.data[userId] {
		if report.ID == reportID {
			return report, nil
		}
	}
	return Report{}, ErrNotFound
}

// DeleteByID removes a report for a user.
func (r *MemoryRepo) DeleteByID(ctx context.Context, userId, reportID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.data[userId]
	for i, report := range stored {
		if report.ID == reportID {
			r.data[userId] = append(stored[:i:i], stored[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// CountCreatedSince counts reports created at or after since. Empty userId
// counts across all users.
func (r *MemoryRepo) CountCreatedSince(ctx context.Context, since time.Time, userId string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for owner, stored := range r.data {
		if userId != "" && owner != userId {
			continue
		}
		for _, report := range stored {
			if !report.CreatedAt.Before(since) {
				count++
			}
		}
	}
	return count, nil
}

var _ ReportsRepo = (*MemoryRepo)(nil)
