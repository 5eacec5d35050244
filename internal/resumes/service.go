package resumes

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumeiq-backend/internal/extract"
	"resumeiq-backend/internal/shared/storage/object"
	"resumeiq-backend/internal/shared/telemetry"
)

// Service contains business logic for resumes.
type Service struct {
	Store object.ObjectStore
	Repo  ResumesRepo

	// ExtractText validates the upload has a usable text layer. Defaults to
	// extract.Text; overridable in tests.
	ExtractText func(data []byte) (string, error)
}

// NewService constructs a Service with the default text extractor.
func NewService(store object.ObjectStore, repo ResumesRepo) *Service {
	return &Service{
		Store:       store,
		Repo:        repo,
		ExtractText: extract.Text,
	}
}

// Upload validates the PDF, saves it to object storage and records the resume.
// The stored object is removed again if the metadata insert fails, so storage
// and the database never disagree about which uploads exist.
func (s *Service) Upload(ctx context.Context, userId, fileName string, data []byte) (Resume, error) {
	if fileName == "" {
		return Resume{}, fmt.Errorf("%w: file name required", ErrInvalidInput)
	}

	// Extraction runs before storage so broken files never take up space.
	if _, err := s.ExtractText(data); err != nil {
		return Resume{}, err
	}

	storageKey, size, _, err := s.Store.Save(ctx, userId, fileName, bytes.NewReader(data))
	if err != nil {
		return Resume{}, fmt.Errorf("store resume: %w", err)
	}

	resume := Resume{
		ID:         uuid.NewString(),
		UserID:     userId,
		FileName:   fileName,
		StorageKey: storageKey,
		SizeBytes:  size,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		if delErr := s.Store.Delete(ctx, storageKey); delErr != nil {
			telemetry.Error("resume upload rollback failed", map[string]any{
				"storage_key": storageKey,
				"error":       delErr.Error(),
			})
		}
		return Resume{}, fmt.Errorf("save resume metadata: %w", err)
	}

	return resume, nil
}

// List returns the caller's resumes, newest first.
func (s *Service) List(ctx context.Context, userId string) ([]Resume, error) {
	if userId == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userId)
}

// Get returns one resume scoped to the owner.
func (s *Service) Get(ctx context.Context, userId, resumeID string) (Resume, error) {
	return s.Repo.GetByID(ctx, userId, resumeID)
}

// Delete removes both the resume row and its stored object.
func (s *Service) Delete(ctx context.Context, userId, resumeID string) error {
	resume, err := s.Repo.DeleteByID(ctx, userId, resumeID)
	if err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, resume.StorageKey); err != nil {
		// Row is gone; log the orphaned object rather than failing the call.
		telemetry.Error("resume object delete failed", map[string]any{
			"storage_key": resume.StorageKey,
			"error":       err.Error(),
		})
	}
	return nil
}
