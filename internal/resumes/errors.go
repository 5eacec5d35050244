package resumes

import "errors"

var (
	// ErrNotFound covers both a missing row and an owner mismatch so callers
	// cannot probe other users' resume ids.
	ErrNotFound = errors.New("resume not found")
	// ErrNotPDF means the upload is not a PDF.
	ErrNotPDF = errors.New("only PDF files are accepted")
	// ErrInvalidInput means the request was malformed.
	ErrInvalidInput = errors.New("invalid input")
)
