package main

import (
	"context"
	"io"
	"time"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   polestudio.Fetcher
	Extractor polestudio.StudioExtractor
	Log       polestudio.ErrorLog
	Limiter   polestudio.DomainLimiter
	Writer    polestudio.RecordWriter

	// Studios is optional; when set, scraped records are also persisted.
	Studios polestudio.StudioService

	Concurrency int

	// RetryDelays overrides the fetch retry backoff; nil means the default.
	RetryDelays []time.Duration
}

// ScrapeCmd handles the batch scrape operation.
type ScrapeCmd struct {
	URLs []string
}
