package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
	"github.com/hamudal/Hall-of-Pole-Version-6/goquery"
	"github.com/hamudal/Hall-of-Pole-Version-6/mock"
	"github.com/hamudal/Hall-of-Pole-Version-6/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studioPage = `<!DOCTYPE html>
<html><body>
<h1 class="MuiTypography-root MuiTypography-h1 css-qinhw0">Poda Studio</h1>
<div class="css-1x2phcg"><a href="mailto:hello@poda.de">Mail</a></div>
<p class="MuiTypography-root MuiTypography-body1 css-1619old">Main St 5, 10115 Berlin</p>
<p class="MuiTypography-root MuiTypography-body1 css-2g7rhg">4.8 (123)</p>
</body></html>`

func testDeps(fetcher polestudio.Fetcher, writer polestudio.RecordWriter) *Dependencies {
	return &Dependencies{
		Ctx:         context.Background(),
		Stdout:      &bytes.Buffer{},
		Stderr:      &bytes.Buffer{},
		Fetcher:     fetcher,
		Extractor:   goquery.NewExtractor(),
		Log:         scrape.NewLog(),
		Writer:      writer,
		RetryDelays: []time.Duration{},
	}
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("mixed batch yields one record and one retrieval error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://www.eversports.de/s/down" {
					return "", polestudio.Errorf(polestudio.EUNAVAILABLE, "HTTP 503 for %s", url)
				}
				return studioPage, nil
			},
		}

		var written []*polestudio.Studio
		writer := &mock.RecordWriter{
			WriteStudioFn: func(ctx context.Context, studio *polestudio.Studio) error {
				written = append(written, studio)
				return nil
			},
			FlushFn: func() error { return nil },
		}

		deps := testDeps(fetcher, writer)
		cmd := &ScrapeCmd{URLs: []string{
			"https://www.eversports.de/s/poda-studio",
			"https://www.eversports.de/s/down",
		}}

		require.NoError(t, cmd.Run(deps))

		require.Len(t, written, 1)
		record := written[0]
		assert.Equal(t, "https://www.eversports.de/s/poda-studio", record.SourceURL)
		assert.Equal(t, "Poda Studio", record.Name)
		assert.Equal(t, "hello@poda.de", record.Contact.Email)
		require.NotNil(t, record.Address)
		assert.Equal(t, "Berlin", record.Address.City)
		require.NotNil(t, record.Rating)
		assert.Equal(t, "4.8", record.Rating.Score)

		errs := deps.Log.Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, polestudio.KindRetrieval, errs[0].Kind)
		assert.Equal(t, "https://www.eversports.de/s/down", errs[0].Locator)

		out := deps.Stdout.(*bytes.Buffer).String()
		assert.Contains(t, out, "Scraped 1 studios, 1 failed")
	})

	t.Run("persists records when a studio service is configured", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return studioPage, nil
			},
		}
		writer := &mock.RecordWriter{
			WriteStudioFn: func(ctx context.Context, studio *polestudio.Studio) error { return nil },
			FlushFn:       func() error { return nil },
		}

		var persisted int
		deps := testDeps(fetcher, writer)
		deps.Studios = &mock.StudioService{
			CreateStudioFn: func(ctx context.Context, studio *polestudio.Studio) error {
				persisted++
				return nil
			},
		}

		cmd := &ScrapeCmd{URLs: []string{"https://www.eversports.de/s/poda-studio"}}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, 1, persisted)
	})

	t.Run("prints error log to stderr", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", polestudio.Errorf(polestudio.EUNAVAILABLE, "HTTP 500 for %s", url)
			},
		}
		writer := &mock.RecordWriter{
			WriteStudioFn: func(ctx context.Context, studio *polestudio.Studio) error { return nil },
			FlushFn:       func() error { return nil },
		}

		deps := testDeps(fetcher, writer)
		cmd := &ScrapeCmd{URLs: []string{"https://www.eversports.de/s/down"}}

		require.NoError(t, cmd.Run(deps))

		errOut := deps.Stderr.(*bytes.Buffer).String()
		assert.Contains(t, errOut, "1 errors:")
		assert.Contains(t, errOut, "retrieval")
	})
}
