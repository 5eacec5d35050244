package reports

import (
	"context"
	"fmt"
	"time"
)

// Quota scopes.
const (
	QuotaScopeGlobal = "global"
	QuotaScopeOwner  = "owner"
)

// QuotaGuard enforces a daily ceiling on generated reports. The count is
// derived from report rows created since midnight UTC, so the limit resets at
// the UTC day boundary without any stored counter. The check is advisory:
// concurrent requests can each observe the old count and both pass.
type QuotaGuard struct {
	Repo  ReportsRepo
	Limit int
	// Scope is QuotaScopeGlobal (one ceiling for the whole deployment) or
	// QuotaScopeOwner (per-user ceiling).
	Scope string

	// Now is overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

// Allow returns nil when another report may be generated today. It returns
// ErrQuotaExceeded at the ceiling and wraps ErrQuotaCheck when the count
// itself fails.
func (g *QuotaGuard) Allow(ctx context.Context, userId string) error {
	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}
	startOfToday := now.UTC().Truncate(24 * time.Hour)

	scopedUser := ""
	if g.Scope == QuotaScopeOwner {
		scopedUser = userId
	}

	count, err := g.Repo.CountCreatedSince(ctx, startOfToday, scopedUser)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQuotaCheck, err)
	}
	if count >= g.Limit {
		return ErrQuotaExceeded
	}
	return nil
}
