package polestudio

import (
	"context"
	"fmt"
)

// ErrorKind classifies batch failures.
type ErrorKind string

const (
	// KindRetrieval marks a hard per-locator failure: the page could not be
	// fetched and no record was produced for it.
	KindRetrieval ErrorKind = "retrieval"

	// KindField marks a soft per-field failure: one field of one record could
	// not be extracted; the rest of the record is unaffected.
	KindField ErrorKind = "field"
)

// ScrapeError is one entry in the batch error log.
type ScrapeError struct {
	Kind    ErrorKind
	Locator string
	Field   string // set only for KindField
	Cause   error
}

// Error implements the error interface.
func (e *ScrapeError) Error() string {
	if e.Kind == KindField {
		return fmt.Sprintf("%s: field %q: %v", e.Locator, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Locator, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ScrapeError) Unwrap() error { return e.Cause }

// ErrorLog is the append-only error log for a batch. Implementations must be
// safe for concurrent use; report operations are terminal and never fail.
type ErrorLog interface {
	// ReportRetrieval records that a locator could not be fetched.
	ReportRetrieval(locator string, cause error)

	// ReportField records that one field of one page failed extraction.
	ReportField(locator, field string, cause error)

	// Errors returns a snapshot of the log in report order.
	Errors() []*ScrapeError
}

// DomainLimiter rate-limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}

// ScrapeProgress reports progress during a batch scrape.
type ScrapeProgress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ScrapeProgressFunc is called as locators are processed.
type ScrapeProgressFunc func(ScrapeProgress)
