// Package csv exports studio records as CSV rows, one row per studio,
// suitable for spreadsheet import.
package csv

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

// listSeparator joins sequence fields into a single CSV cell.
const listSeparator = "; "

// header defines the column layout. Sequence fields are joined with
// listSeparator; absent fields are empty cells.
var header = []string{
	"source_url",
	"name",
	"overview_labels",
	"email",
	"homepage",
	"phone",
	"street",
	"postal_code",
	"city",
	"description",
	"rating_score",
	"rating_count",
	"rating_factors",
	"activities",
	"sale_text",
	"image_urls",
	"scraped_at",
}

// Ensure Writer implements polestudio.RecordWriter at compile time.
var _ polestudio.RecordWriter = (*Writer)(nil)

// Writer writes studio records to an underlying io.Writer as CSV.
// The header row is written before the first record.
type Writer struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewWriter creates a new Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// WriteStudio appends one record as a CSV row.
func (w *Writer) WriteStudio(ctx context.Context, studio *polestudio.Studio) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := studio.Validate(); err != nil {
		return err
	}

	if !w.wroteHeader {
		if err := w.w.Write(header); err != nil {
			return err
		}
		w.wroteHeader = true
	}

	return w.w.Write(record(studio))
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}

func record(studio *polestudio.Studio) []string {
	var street, postal, city string
	if studio.Address != nil {
		street = studio.Address.Street
		postal = studio.Address.PostalCode
		city = studio.Address.City
	}

	var score, count string
	if studio.Rating != nil {
		score = studio.Rating.Score
		count = studio.Rating.Count
	}

	var scrapedAt string
	if !studio.ScrapedAt.IsZero() {
		scrapedAt = studio.ScrapedAt.Format(time.RFC3339)
	}

	return []string{
		studio.SourceURL,
		studio.Name,
		strings.Join(studio.OverviewLabels, listSeparator),
		studio.Contact.Email,
		studio.Contact.Homepage,
		studio.Contact.Phone,
		street,
		postal,
		city,
		studio.Description,
		score,
		count,
		strings.Join(studio.RatingFactors, listSeparator),
		strings.Join(studio.Activities, listSeparator),
		studio.SaleText,
		strings.Join(studio.ImageURLs, listSeparator),
		scrapedAt,
	}
}
