package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// minTextLength is the smallest extracted-text size we accept before treating
// the document as a scanned/image PDF with no text layer.
const minTextLength = 80

var (
	// ErrUnreadable means the bytes could not be parsed as a PDF.
	ErrUnreadable = errors.New("document unreadable")
	// ErrScanned means the PDF parsed but carries no usable text layer.
	ErrScanned = errors.New("document has no text layer")
)

// Text extracts plain text from PDF bytes, concatenated across pages in
// document order. It is a pure function of its input.
// Library used: github.com/ledongthuc/pdf.
func Text(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrUnreadable
	}

	text, err := extractPDF(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	return checkTextLayer(text)
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func checkTextLayer(text string) (string, error) {
	if len(strings.TrimSpace(text)) < minTextLength {
		return "", ErrScanned
	}
	return text, nil
}
