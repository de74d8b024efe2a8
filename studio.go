package polestudio

import (
	"context"
	"time"
)

// Studio is the assembled record for one scraped listing page. Every field is
// independently optional: a missing field never invalidates the record and
// never blocks extraction of the remaining fields. A record with nothing but
// its source URL is a valid, if sparse, result.
type Studio struct {
	ID        string    `json:"id"`
	SourceURL string    `json:"sourceUrl"`
	Position  int       `json:"position"`

	Name           string   `json:"name"`
	OverviewLabels []string `json:"overviewLabels"`
	Contact        Contact  `json:"contact"`
	Address        *Address `json:"address"`
	Description    string   `json:"description"`
	Rating         *Rating  `json:"rating"`
	RatingFactors  []string `json:"ratingFactors"`
	Activities     []string `json:"activities"`
	SaleText       string   `json:"saleText"`
	ImageURLs      []string `json:"imageUrls"`

	ContentHash string    `json:"contentHash"`
	ScrapedAt   time.Time `json:"scrapedAt"`
}

// Contact holds the classified contact anchors from a listing page.
// Empty strings mean the category was not present.
type Contact struct {
	Email    string `json:"email"`
	Homepage string `json:"homepage"`
	Phone    string `json:"phone"`
}

// Address holds the address blob split into its parts. RawSegments preserves
// the comma-separated segments verbatim; the remaining fields are derived from
// fixed token positions and inherit that format's fragility.
type Address struct {
	RawSegments []string `json:"rawSegments"`
	Street      string   `json:"street"`
	PostalCode  string   `json:"postalCode"`
	City        string   `json:"city"`
}

// Rating holds the score/count pair as shown on the page, e.g. "4.8 (123)"
// becomes {Score: "4.8", Count: "123"}. Both are kept as text.
type Rating struct {
	Score string `json:"score"`
	Count string `json:"count"`
}

// Validate returns an error if the studio record contains invalid fields.
func (s *Studio) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "studio source URL required")
	}
	return nil
}

// RecordWriter exports studio records for downstream consumption.
type RecordWriter interface {
	// WriteStudio appends one record to the output.
	WriteStudio(ctx context.Context, studio *Studio) error

	// Flush finalizes the output. Must be called after the last record.
	Flush() error
}

// StudioService represents a service for persisting and querying studios.
type StudioService interface {
	// CreateStudio persists a new studio record.
	CreateStudio(ctx context.Context, studio *Studio) error

	// FindStudioByID retrieves a studio by ID.
	// Returns ENOTFOUND if the studio does not exist.
	FindStudioByID(ctx context.Context, id string) (*Studio, error)

	// FindStudios retrieves studios matching the filter.
	FindStudios(ctx context.Context, filter StudioFilter) ([]*Studio, error)

	// DeleteStudio permanently removes a studio.
	// Returns ENOTFOUND if the studio does not exist.
	DeleteStudio(ctx context.Context, id string) error
}

// SortOrder represents the sort order for studio queries.
type SortOrder string

// SortOrder constants for StudioFilter.
const (
	SortByScrapedAt SortOrder = "scraped_at"
	SortByPosition  SortOrder = "position"
)

// StudioFilter represents a filter for FindStudios.
type StudioFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Name      *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
