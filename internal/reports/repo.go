package reports

import (
	"context"
	"time"
)

// ReportsRepo defines persistence operations for reports.
type ReportsRepo interface {
	Create(ctx context.Context, report Report) error
	ListByUser(ctx context.Context, userId string) ([]Summary, error)
	GetByID(ctx context.Context, userId, reportID string) (Report, error)
	DeleteByID(ctx context.Context, userId, reportID string) error
	// CountCreatedSince counts reports created at or after since. An empty
	// userId counts system-wide.
	CountCreatedSince(ctx context.Context, since time.Time, userId string) (int, error)
}
