package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements ResumesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume row.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, file_name, file_path, size_bytes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		resume.StorageKey,
		resume.SizeBytes,
		resume.CreatedAt,
	)
	return err
}

// GetByID fetches a resume by id, scoped to the owner.
func (r *PGRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, file_path, size_bytes, created_at
FROM resumes
WHERE user_id = $1 AND id = $2
LIMIT 1`
	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, userId, resumeID).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.StorageKey,
		&resume.SizeBytes,
		&resume.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// ListByUser lists resumes newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string) ([]Resume, error) {
	const query = `
SELECT id, user_id, file_name, file_path, size_bytes, created_at
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var resume Resume
		if err := rows.Scan(
			&resume.ID,
			&resume.UserID,
			&resume.FileName,
			&resume.StorageKey,
			&resume.SizeBytes,
			&resume.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// DeleteByID removes a resume row scoped to the owner and returns the deleted
// row so the caller can also remove the stored object.
func (r *PGRepo) DeleteByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	const query = `
DELETE FROM resumes
WHERE user_id = $1 AND id = $2
RETURNING id, user_id, file_name, file_path, size_bytes, created_at`
	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, userId, resumeID).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.StorageKey,
		&resume.SizeBytes,
		&resume.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

var _ ResumesRepo = (*PGRepo)(nil)
