package resumes

import "time"

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		ID:        resume.ID,
		FileName:  resume.FileName,
		SizeBytes: resume.SizeBytes,
		CreatedAt: resume.CreatedAt,
	}
}
