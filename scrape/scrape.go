// Package scrape provides batch scraping orchestration. It coordinates
// fetching, extraction, and error logging across a fixed list of listing
// page URLs.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker pool size when none is configured.
const DefaultConcurrency = 4

// Scraper drives the batch over a fixed list of locators. Each locator runs
// its own fetch→extract pipeline; the only shared mutable state is the
// append-only error log.
type Scraper struct {
	Fetcher     polestudio.Fetcher
	Extractor   polestudio.StudioExtractor
	Log         polestudio.ErrorLog
	RateLimiter polestudio.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a batch scrape.
type Result struct {
	// Studios holds one record per successfully fetched locator, in input
	// order. Locators that failed retrieval are omitted.
	Studios []*polestudio.Studio

	Scraped int
	Failed  int
}

// scrapeResult holds the outcome of processing a single locator.
type scrapeResult struct {
	position  int
	url       string
	studio    *polestudio.Studio
	fieldErrs []*polestudio.FieldError
	err       error
}

// ScrapeAll processes every locator and returns the assembled records in
// input order. A locator that fails retrieval contributes one retrieval
// error to the log and no record; a field that fails extraction contributes
// one field error and leaves the rest of its record intact. The batch never
// aborts on an individual locator's failure.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress polestudio.ScrapeProgressFunc) (*Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan scrapeResult, len(urls))
	total := len(urls)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				resultCh <- s.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results as workers finish.
	results := make([]scrapeResult, len(urls))
	var completed int
	for result := range resultCh {
		completed++
		results[result.position] = result

		if progress != nil {
			progress(polestudio.ScrapeProgress{
				URL:       result.url,
				Completed: completed,
				Total:     total,
				Err:       result.err,
			})
		}
	}

	// Assemble records and report errors in input order so the log stays
	// deterministic regardless of worker scheduling.
	res := &Result{}
	for _, result := range results {
		if result.err != nil {
			res.Failed++
			if s.Log != nil {
				s.Log.ReportRetrieval(result.url, result.err)
			}
			continue
		}

		for _, fe := range result.fieldErrs {
			if s.Log != nil {
				s.Log.ReportField(result.url, fe.Field, fe.Err)
			}
		}

		res.Scraped++
		res.Studios = append(res.Studios, result.studio)
	}

	return res, nil
}

// processURL runs the fetch→extract pipeline for one locator.
func (s *Scraper) processURL(ctx context.Context, position int, pageURL string) scrapeResult {
	result := scrapeResult{position: position, url: pageURL}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, domainOf(pageURL)); err != nil {
			result.err = err
			return result
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	studio, fieldErrs := s.Extractor.Extract(html)
	studio.SourceURL = pageURL
	studio.Position = position
	studio.ContentHash = contentHash(html)
	studio.ScrapedAt = time.Now().UTC()

	result.studio = studio
	result.fieldErrs = fieldErrs
	return result
}

// contentHash fingerprints the fetched markup so repeat runs can detect
// unchanged pages.
func contentHash(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}

// domainOf extracts the host for rate limiting. Unparseable URLs fall back
// to the raw string so they still get a limiter bucket.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
