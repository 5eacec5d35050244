package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestTextRejectsEmptyInput(t *testing.T) {
	_, err := Text(nil)
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestTextRejectsGarbageBytes(t *testing.T) {
	_, err := Text([]byte("this is definitely not a pdf file"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestTextRejectsTruncatedHeader(t *testing.T) {
	// Valid magic bytes but no body; the parser must fail, not panic.
	_, err := Text([]byte("%PDF-1.7\n"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestCheckTextLayerShortText(t *testing.T) {
	_, err := checkTextLayer("Jane Doe")
	if !errors.Is(err, ErrScanned) {
		t.Fatalf("expected ErrScanned, got %v", err)
	}
}

func TestCheckTextLayerWhitespaceOnly(t *testing.T) {
	_, err := checkTextLayer(strings.Repeat(" \n\t", 100))
	if !errors.Is(err, ErrScanned) {
		t.Fatalf("expected ErrScanned for whitespace padding, got %v", err)
	}
}

func TestCheckTextLayerAcceptsRealText(t *testing.T) {
	text := strings.Repeat("Senior backend engineer with Go and Postgres experience. ", 3)
	got, err := checkTextLayer(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != text {
		t.Fatalf("text must be returned unmodified")
	}
}
