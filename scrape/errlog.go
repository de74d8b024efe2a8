package scrape

import (
	"sync"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

// Ensure Log implements polestudio.ErrorLog at compile time.
var _ polestudio.ErrorLog = (*Log)(nil)

// Log is a mutex-guarded, append-only error log. It is safe for concurrent
// use by multiple workers; report operations never fail.
type Log struct {
	mu   sync.Mutex
	errs []*polestudio.ScrapeError
}

// NewLog creates an empty Log.
func NewLog() *Log {
	return &Log{}
}

// ReportRetrieval records that a locator could not be fetched.
func (l *Log) ReportRetrieval(locator string, cause error) {
	l.append(&polestudio.ScrapeError{
		Kind:    polestudio.KindRetrieval,
		Locator: locator,
		Cause:   cause,
	})
}

// ReportField records that one field of one page failed extraction.
func (l *Log) ReportField(locator, field string, cause error) {
	l.append(&polestudio.ScrapeError{
		Kind:    polestudio.KindField,
		Locator: locator,
		Field:   field,
		Cause:   cause,
	})
}

// Errors returns a snapshot of the log in report order.
func (l *Log) Errors() []*polestudio.ScrapeError {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*polestudio.ScrapeError, len(l.errs))
	copy(out, l.errs)
	return out
}

func (l *Log) append(err *polestudio.ScrapeError) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
}
