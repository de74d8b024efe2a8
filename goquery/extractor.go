// Package goquery implements field extraction from listing page markup
// using CSS selector queries.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

// Ensure Extractor implements polestudio.StudioExtractor at compile time.
var _ polestudio.StudioExtractor = (*Extractor)(nil)

// Extractor assembles a Studio record by applying every field extraction rule
// to one page's markup. Extractor is stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and runs every field rule exactly once. A rule that
// matches nothing leaves its field absent; a rule that matches but fails to
// process its markup contributes a FieldError and leaves its field absent.
// Extract never fails as a whole: the record is returned even when every
// field is absent.
func (e *Extractor) Extract(html string) (*polestudio.Studio, []*polestudio.FieldError) {
	studio := &polestudio.Studio{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return studio, []*polestudio.FieldError{{
			Field: "document",
			Err:   polestudio.Errorf(polestudio.EINVALID, "failed to parse HTML: %v", err),
		}}
	}

	var fieldErrs []*polestudio.FieldError
	fail := func(field string, err error) {
		fieldErrs = append(fieldErrs, &polestudio.FieldError{Field: field, Err: err})
	}

	studio.Name = extractName(doc)
	studio.OverviewLabels = extractOverviewLabels(doc)
	studio.Contact = extractContact(doc)

	if addr, err := extractAddress(doc); err != nil {
		fail("address", err)
	} else {
		studio.Address = addr
	}

	studio.Description = extractDescription(doc)
	studio.Rating = extractRating(doc)
	studio.RatingFactors = extractRatingFactors(doc)
	studio.Activities = extractActivities(doc)
	studio.SaleText = extractSaleText(doc)
	studio.ImageURLs = extractImageURLs(doc)

	return studio, fieldErrs
}
