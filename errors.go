package segtok

import (
	"errors"
	"fmt"
)

// Error kinds of segmentation and tokenization. None of them is ever
// retried: segmenting is deterministic and will fail the same way again.
var (
	// ErrUnsupportedLanguage is returned if no resources exist for a language.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrMalformedSpan flags an internal defect: a rule produced spans
	// which are empty, overlapping or out of bounds.
	ErrMalformedSpan = errors.New("malformed span")
	// ErrResourceLoad is returned if a prefix list or model is missing or corrupt.
	ErrResourceLoad = errors.New("resource load failure")
)

// LanguageError is a configuration error concerning resources for a language.
type LanguageError struct {
	Language string // language as requested by the client
	Resource string // kind of resource, e.g. "prefix list"
	Err      error  // underlying error
}

func (e *LanguageError) Error() string {
	if e.Err == nil || errors.Is(e.Err, ErrUnsupportedLanguage) {
		return fmt.Sprintf("no %s for language %q", e.Resource, e.Language)
	}
	return fmt.Sprintf("cannot load %s for language %q: %v", e.Resource, e.Language, e.Err)
}

// Unwrap returns the underlying error, which defaults to ErrUnsupportedLanguage.
func (e *LanguageError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupportedLanguage
}

// SpanError reports a violated span invariant.
type SpanError struct {
	Level string // "paragraph", "sentence" or "token"
	Index int    // index of the offending unit within its parent
	Span  Span
	Msg   string
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("malformed %s span #%d %v: %s", e.Level, e.Index, e.Span, e.Msg)
}

// Unwrap makes errors.Is(err, ErrMalformedSpan) hold.
func (e *SpanError) Unwrap() error {
	return ErrMalformedSpan
}
