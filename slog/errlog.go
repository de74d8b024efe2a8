package slog

import (
	"log/slog"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

// Ensure LoggingLog implements polestudio.ErrorLog at compile time.
var _ polestudio.ErrorLog = (*LoggingLog)(nil)

// LoggingLog wraps an ErrorLog and emits each report as it arrives.
// Retrieval failures are hard per-locator errors; field failures are soft
// per-field warnings.
type LoggingLog struct {
	next   polestudio.ErrorLog
	logger *slog.Logger
}

// NewLoggingLog creates a new LoggingLog.
func NewLoggingLog(next polestudio.ErrorLog, logger *slog.Logger) *LoggingLog {
	return &LoggingLog{next: next, logger: logger}
}

// ReportRetrieval logs the failure at error level and delegates.
func (l *LoggingLog) ReportRetrieval(locator string, cause error) {
	l.logger.Error("retrieval failed",
		"locator", locator,
		"err", cause.Error(),
	)
	l.next.ReportRetrieval(locator, cause)
}

// ReportField logs the failure at warn level and delegates.
func (l *LoggingLog) ReportField(locator, field string, cause error) {
	l.logger.Warn("field extraction failed",
		"locator", locator,
		"field", field,
		"err", cause.Error(),
	)
	l.next.ReportField(locator, field, cause)
}

// Errors delegates to the wrapped log.
func (l *LoggingLog) Errors() []*polestudio.ScrapeError {
	return l.next.Errors()
}
