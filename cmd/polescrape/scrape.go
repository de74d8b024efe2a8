package main

import (
	"fmt"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
	"github.com/hamudal/Hall-of-Pole-Version-6/scrape"
)

// Run executes the scrape command: fetch and extract every listing page,
// export the records, and print the batch summary. Individual page or field
// failures end up in the error log, never abort the batch.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	scraper := &scrape.Scraper{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Log:         deps.Log,
		RateLimiter: deps.Limiter,
		Concurrency: deps.Concurrency,
		RetryDelays: deps.RetryDelays,
	}

	progress := func(p polestudio.ScrapeProgress) {
		fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", p.Completed, p.Total, p.URL)
	}

	result, err := scraper.ScrapeAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		return err
	}

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")

	for _, studio := range result.Studios {
		if err := deps.Writer.WriteStudio(deps.Ctx, studio); err != nil {
			return fmt.Errorf("writing %s: %w", studio.SourceURL, err)
		}
		if deps.Studios != nil {
			if err := deps.Studios.CreateStudio(deps.Ctx, studio); err != nil {
				return fmt.Errorf("persisting %s: %w", studio.SourceURL, err)
			}
		}
	}
	if err := deps.Writer.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d studios, %d failed\n", result.Scraped, result.Failed)

	if errs := deps.Log.Errors(); len(errs) > 0 {
		fmt.Fprintf(deps.Stderr, "%d errors:\n", len(errs))
		for _, e := range errs {
			fmt.Fprintf(deps.Stderr, "  [%s] %s\n", e.Kind, e.Error())
		}
	}

	return nil
}
