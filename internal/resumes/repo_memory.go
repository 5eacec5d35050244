package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ResumesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume // userId -> resumes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Resume),
	}
}

// Create stores a resume for a user.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[resume.UserID] = append(r.data[resume.UserID], resume)
	return nil
}

// GetByID returns a resume by id for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, resume := range r.data[userId] {
		if resume.ID == resumeID {
			return resume, nil
		}
	}
	return Resume{}, ErrNotFound
}

// ListByUser returns a user's resumes newest-first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	stored := r.data[userId]
	r.mu.RUnlock()

	out := make([]Resume, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// DeleteByID removes a resume by id for a user.
func (r *MemoryRepo) DeleteByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.data[userId]
	for i, resume := range stored {
		if resume.ID == resumeID {
			r.data[userId] = append(stored[:i:i], stored[i+1:]...)
			return resume, nil
		}
	}
	return Resume{}, ErrNotFound
}

var _ ResumesRepo = (*MemoryRepo)(nil)
