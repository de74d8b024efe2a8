package mock

import (
	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

var _ polestudio.ErrorLog = (*ErrorLog)(nil)

// ErrorLog is a mock implementation of polestudio.ErrorLog.
type ErrorLog struct {
	ReportRetrievalFn func(locator string, cause error)
	ReportFieldFn     func(locator, field string, cause error)
	ErrorsFn          func() []*polestudio.ScrapeError
}

func (l *ErrorLog) ReportRetrieval(locator string, cause error) {
	l.ReportRetrievalFn(locator, cause)
}

func (l *ErrorLog) ReportField(locator, field string, cause error) {
	l.ReportFieldFn(locator, field, cause)
}

func (l *ErrorLog) Errors() []*polestudio.ScrapeError {
	return l.ErrorsFn()
}
