package polestudio

import "fmt"

// FieldError reports that a single field's extraction rule matched markup but
// failed while processing it. It is distinct from structural absence: a
// selector that matches nothing produces no value and no error.
type FieldError struct {
	// Field is the semantic field name, e.g. "address" or "rating".
	Field string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FieldError) Unwrap() error { return e.Err }

// StudioExtractor assembles a Studio record from one page's markup.
type StudioExtractor interface {
	// Extract parses html and applies every field extraction rule exactly
	// once. Field failures are returned alongside the record; they never
	// abort the remaining fields, and a record with every field absent is a
	// valid result. Extract itself never fails as a whole.
	Extract(html string) (*Studio, []*FieldError)
}
