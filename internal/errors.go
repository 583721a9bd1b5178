package internal

import "fmt"

// InputError represents errors locating or opening the export input
type InputError struct {
	Path string
	Op   string // "open", "locate", "read"
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ParseError represents a fatal parse failure: the document itself is
// not well-formed XML. Malformed individual records are skipped and
// tallied, never surfaced as a ParseError.
type ParseError struct {
	Source string // input path or "stream"
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s]: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
