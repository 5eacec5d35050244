package resumes

import "time"

// Resume represents an uploaded résumé PDF owned by a user.
type Resume struct {
	ID         string
	UserID     string
	FileName   string
	StorageKey string
	SizeBytes  int64
	CreatedAt  time.Time
}
