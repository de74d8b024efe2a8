package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

// Selectors keyed to the listing pages' generated MUI class signatures.
// These break when the site ships a new build; keeping them in one place
// makes that a one-file fix.
const (
	selName           = "h1.MuiTypography-h1.css-qinhw0"
	selOverviewGroups = "div.MuiStack-root.css-sgccrm"
	selContactGroups  = "div.css-1x2phcg"
	selAddress        = "p.MuiTypography-body1.css-1619old"
	selDescription    = "div.MuiBox-root.css-0"
	selRating         = "p.MuiTypography-body1.css-2g7rhg"
	selRatingFactors  = "div.MuiStack-root.css-95g4uk"
	selFactorLabel    = "p.MuiTypography-body1.css-1k55edk"
	selFactorValue    = "p.MuiTypography-body1.css-1y0caop"
	selActivities     = "p.MuiTypography-body1.css-6ik050"
	selSale           = "p.MuiTypography-body1.css-153qxhx"
	selImageGroups    = "div.MuiBox-root.css-1fivxf"
)

// extractName returns the studio name, or empty if the heading is absent.
func extractName(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(selName).First().Text())
}

// extractOverviewLabels returns the text of every anchor inside the overview
// button groups, in document order.
func extractOverviewLabels(doc *goquery.Document) []string {
	var labels []string
	doc.Find(selOverviewGroups).Each(func(_ int, group *goquery.Selection) {
		group.Find("a").Each(func(_ int, a *goquery.Selection) {
			labels = append(labels, strings.TrimSpace(a.Text()))
		})
	})
	return labels
}

// extractContact classifies every anchor in the contact blocks by href scheme:
// mailto → Email, tel → Phone, anything else → Homepage. When a category
// matches more than once the last anchor wins. The overwrite policy is
// intentional and preserved from the page's known layout; see DESIGN.md.
func extractContact(doc *goquery.Document) polestudio.Contact {
	var c polestudio.Contact
	doc.Find(selContactGroups).Each(func(_ int, group *goquery.Selection) {
		group.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok || href == "" {
				return
			}
			switch {
			case strings.HasPrefix(href, "mailto:"):
				c.Email = strings.TrimPrefix(href, "mailto:")
			case strings.HasPrefix(href, "tel:"):
				c.Phone = strings.TrimPrefix(href, "tel:")
			default:
				c.Homepage = href
			}
		})
	})
	return c
}

// extractAddress splits the address blob on commas and derives postal code and
// city from fixed token positions of the second segment. The format is
// "Street 5, 10115 Berlin": splitting the second segment on spaces yields a
// leading empty token, then the postal code, then the city. A blob with too
// few segments or tokens fails the field, not the record.
func extractAddress(doc *goquery.Document) (*polestudio.Address, error) {
	sel := doc.Find(selAddress).First()
	if sel.Length() == 0 {
		return nil, nil
	}

	text := sel.Text()
	segments := strings.Split(text, ",")
	if len(segments) < 2 {
		return nil, polestudio.Errorf(polestudio.EINVALID,
			"address %q: expected at least 2 comma-separated segments", text)
	}

	tokens := strings.Split(segments[1], " ")
	if len(tokens) < 3 {
		return nil, polestudio.Errorf(polestudio.EINVALID,
			"address segment %q: expected at least 3 space-separated tokens", segments[1])
	}

	return &polestudio.Address{
		RawSegments: segments,
		Street:      segments[0],
		PostalCode:  tokens[1],
		City:        tokens[2],
	}, nil
}

// extractDescription returns the description text, or empty if absent.
func extractDescription(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(selDescription).First().Text())
}

// extractRating splits the rating text on the first "(": the left side is the
// score, the right side with the closing ")" stripped is the review count.
// Text without a "(" means the page shows a score with no count; the field is
// absent, not an error.
func extractRating(doc *goquery.Document) *polestudio.Rating {
	sel := doc.Find(selRating).First()
	if sel.Length() == 0 {
		return nil
	}

	text := sel.Text()
	idx := strings.Index(text, "(")
	if idx < 0 {
		return nil
	}

	return &polestudio.Rating{
		Score: strings.TrimSpace(text[:idx]),
		Count: strings.TrimSpace(strings.ReplaceAll(text[idx+1:], ")", "")),
	}
}

// extractRatingFactors returns one "label: value" string per factor row.
// Rows missing either part are skipped; one malformed row does not drop
// the rest.
func extractRatingFactors(doc *goquery.Document) []string {
	var factors []string
	doc.Find(selRatingFactors).Each(func(_ int, item *goquery.Selection) {
		label := item.Find(selFactorLabel).First()
		value := item.Find(selFactorValue).First()
		if label.Length() == 0 || value.Length() == 0 {
			return
		}
		factors = append(factors, fmt.Sprintf("%s: %s",
			strings.TrimSpace(label.Text()), strings.TrimSpace(value.Text())))
	})
	return factors
}

// extractActivities returns the text of every activity tag, in document order.
func extractActivities(doc *goquery.Document) []string {
	var activities []string
	doc.Find(selActivities).Each(func(_ int, p *goquery.Selection) {
		activities = append(activities, strings.TrimSpace(p.Text()))
	})
	return activities
}

// extractSaleText returns the sale banner text, or empty if absent.
func extractSaleText(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(selSale).First().Text())
}

// extractImageURLs returns the src of the first img in every gallery box, in
// document order. Boxes whose first img has no src are skipped.
func extractImageURLs(doc *goquery.Document) []string {
	var urls []string
	doc.Find(selImageGroups).Each(func(_ int, box *goquery.Selection) {
		src, ok := box.Find("img").First().Attr("src")
		if !ok || src == "" {
			return
		}
		urls = append(urls, src)
	})
	return urls
}
