// Package lexerrors defines the error kinds raised by the lexical-item
// analyzer and its supporting packages.
//
// Every error carries the offending key (an XML element, a token tuple, a
// file path) so a caller's log line is actionable without re-deriving the
// failure from scratch. None of these are retried internally — propagation
// is always fatal to the current call.
package lexerrors

import "fmt"

// ResourceLoadError reports a failure to load an external resource: a
// missing tagger binary, malformed dictionary XML, a missing supplemental
// changelog, or a cache read failure.
type ResourceLoadError struct {
	// Resource names the resource that failed to load, e.g. "tagger binary"
	// or "dictionary XML".
	Resource string
	// Key is the offending path, element, or identifier.
	Key string
	Err error
}

func (e *ResourceLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lexerrors: load %s %q: %v", e.Resource, e.Key, e.Err)
	}
	return fmt.Sprintf("lexerrors: load %s %q", e.Resource, e.Key)
}

func (e *ResourceLoadError) Unwrap() error { return e.Err }

// NewResourceLoadError builds a ResourceLoadError.
func NewResourceLoadError(resource, key string, err error) *ResourceLoadError {
	return &ResourceLoadError{Resource: resource, Key: key, Err: err}
}

// ResourceNotReadyError reports that a store accessor was called before the
// store finished loading.
type ResourceNotReadyError struct {
	Resource string
}

func (e *ResourceNotReadyError) Error() string {
	return fmt.Sprintf("lexerrors: %s used before loading", e.Resource)
}

// NewResourceNotReadyError builds a ResourceNotReadyError.
func NewResourceNotReadyError(resource string) *ResourceNotReadyError {
	return &ResourceNotReadyError{Resource: resource}
}

// TextAnalysisError reports that tagger output violated the expected column
// contract, that surface-form alignment failed, or that input text was
// malformed.
type TextAnalysisError struct {
	// Text is the text (or a short excerpt of it) being analyzed when the
	// failure occurred.
	Text string
	// Detail describes what went wrong.
	Detail string
}

func (e *TextAnalysisError) Error() string {
	return fmt.Sprintf("lexerrors: text analysis: %s: %q", e.Detail, e.Text)
}

// NewTextAnalysisError builds a TextAnalysisError.
func NewTextAnalysisError(text, detail string) *TextAnalysisError {
	return &TextAnalysisError{Text: text, Detail: detail}
}
