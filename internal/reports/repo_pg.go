package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements ReportsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new report row.
func (r *PGRepo) Create(ctx context.Context, report Report) error {
	const query = `
INSERT INTO reports (
	id, user_id, resume_id, analysis_type, role, job_description,
	score, match_score, strengths, weaknesses, suggestions, missing_keywords, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	strengths, err := marshalList(report.Strengths)
	if err != nil {
		return err
	}
	weaknesses, err := marshalList(report.Weaknesses)
	if err != nil {
		return err
	}
	suggestions, err := marshalList(report.Suggestions)
	if err != nil {
		return err
	}

	var keywords any
	if report.MissingKeywords != nil {
		keywords, err = marshalList(report.MissingKeywords)
		if err != nil {
			return err
		}
	}

	var role sql.NullString
	if report.Role != "" {
		role = sql.NullString{String: report.Role, Valid: true}
	}
	var jobDescription sql.NullString
	if report.JobDescription != "" {
		jobDescription = sql.NullString{String: report.JobDescription, Valid: true}
	}
	var matchScore sql.NullInt64
	if report.MatchScore != nil {
		matchScore = sql.NullInt64{Int64: int64(*report.MatchScore), Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, query,
		report.ID,
		report.UserID,
		report.ResumeID,
		report.AnalysisType,
		role,
		jobDescription,
		report.Score,
		matchScore,
		strengths,
		weaknesses,
		suggestions,
		keywords,
		report.CreatedAt,
	)
	return err
}

// ListByUser returns report summaries newest-first. Large text fields stay in
// the full-report query only.
func (r *PGRepo) ListByUser(ctx context.Context, userId string) ([]Summary, error) {
	const query = `
SELECT id, resume_id, role, analysis_type, score, match_score, created_at
FROM reports
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var summary Summary
		var role sql.NullString
		var matchScore sql.NullInt64
		if err := rows.Scan(
			&summary.ID,
			&summary.ResumeID,
			&role,
			&summary.AnalysisType,
			&summary.Score,
			&matchScore,
			&summary.CreatedAt,
		); err != nil {
			return nil, err
		}
		if role.Valid {
			summary.Role = role.String
		}
		if matchScore.Valid {
			v := int(matchScore.Int64)
			summary.MatchScore = &v
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

// GetByID fetches a full report scoped to the owner.
func (r *PGRepo) GetByID(ctx context.Context, userId, reportID string) (Report, error) {
	const query = `
SELECT id, user_id, resume_id, analysis_type, role, job_description,
       score, match_score, strengths, weaknesses, suggestions, missing_keywords, created_at
FROM reports
WHERE user_id = $1 AND id = $2
LIMIT 1`
	var report Report
	var role sql.NullString
	var jobDescription sql.NullString
	var matchScore sql.NullInt64
	var strengths, weaknesses, suggestions []byte
	var keywords []byte
	err := r.DB.QueryRowContext(ctx, query, userId, reportID).Scan(
		&report.ID,
		&report.UserID,
		&report.ResumeID,
		&report.AnalysisType,
		&role,
		&jobDescription,
		&report.Score,
		&matchScore,
		&strengths,
		&weaknesses,
		&suggestions,
		&keywords,
		&report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrNotFound
		}
		return Report{}, err
	}
	if role.Valid {
		report.Role = role.String
	}
	if jobDescription.Valid {
		report.JobDescription = jobDescription.String
	}
	if matchScore.Valid {
		v := int(matchScore.Int64)
		report.MatchScore = &v
	}
	if report.Strengths, err = unmarshalList(strengths); err != nil {
		return Report{}, err
	}
	if report.Weaknesses, err = unmarshalList(weaknesses); err != nil {
		return Report{}, err
	}
	if report.Suggestions, err = unmarshalList(suggestions); err != nil {
		return Report{}, err
	}
	if keywords != nil {
		if report.MissingKeywords, err = unmarshalList(keywords); err != nil {
			return Report{}, err
		}
	}
	return report, nil
}

// DeleteByID hard-deletes a report scoped to the owner.
func (r *PGRepo) DeleteByID(ctx context.Context, userId, reportID string) error {
	const query = `DELETE FROM reports WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userId, reportID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountCreatedSince counts reports created at or after since. Empty userId
// counts across all users.
func (r *PGRepo) CountCreatedSince(ctx context.Context, since time.Time, userId string) (int, error) {
	var count int
	if userId == "" {
		const query = `SELECT COUNT(*) FROM reports WHERE created_at >= $1`
		if err := r.DB.QueryRowContext(ctx, query, since).Scan(&count); err != nil {
			return 0, err
		}
		return count, nil
	}
	const query = `SELECT COUNT(*) FROM reports WHERE created_at >= $1 AND user_id = $2`
	if err := r.DB.QueryRowContext(ctx, query, since, userId).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func marshalList(items []string) ([]byte, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(items)
}

func unmarshalList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

var _ ReportsRepo = (*PGRepo)(nil)
