package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

// Compile-time interface verification.
var _ polestudio.StudioService = (*StudioService)(nil)

// StudioService implements polestudio.StudioService using SQLite.
type StudioService struct {
	db *DB
}

// NewStudioService creates a new StudioService.
func NewStudioService(db *DB) *StudioService {
	return &StudioService{db: db}
}

const studioColumns = `id, source_url, position, name, overview_labels,
	email, homepage, phone, address_segments, street, postal_code, city,
	description, rating_score, rating_count, rating_factors, activities,
	sale_text, image_urls, content_hash, scraped_at`

// CreateStudio persists a new studio record, assigning its ID.
func (s *StudioService) CreateStudio(ctx context.Context, studio *polestudio.Studio) error {
	if err := studio.Validate(); err != nil {
		return err
	}

	studio.ID = uuid.New().String()
	if studio.ScrapedAt.IsZero() {
		studio.ScrapedAt = time.Now().UTC()
	}

	var addressSegments, street, postal, city any
	if studio.Address != nil {
		addressSegments = marshalStrings(studio.Address.RawSegments)
		street = studio.Address.Street
		postal = studio.Address.PostalCode
		city = studio.Address.City
	} else {
		street, postal, city = "", "", ""
	}

	var ratingScore, ratingCount any
	if studio.Rating != nil {
		ratingScore = studio.Rating.Score
		ratingCount = studio.Rating.Count
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO studios (`+studioColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, studio.ID, studio.SourceURL, studio.Position, studio.Name,
		marshalStrings(studio.OverviewLabels),
		studio.Contact.Email, studio.Contact.Homepage, studio.Contact.Phone,
		addressSegments, street, postal, city,
		studio.Description, ratingScore, ratingCount,
		marshalStrings(studio.RatingFactors),
		marshalStrings(studio.Activities),
		studio.SaleText,
		marshalStrings(studio.ImageURLs),
		studio.ContentHash,
		studio.ScrapedAt.Format(time.RFC3339))

	return err
}

// FindStudioByID retrieves a studio by ID.
func (s *StudioService) FindStudioByID(ctx context.Context, id string) (*polestudio.Studio, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+studioColumns+`
		FROM studios
		WHERE id = ?
	`, id)

	studio, err := scanStudio(row)
	if err == sql.ErrNoRows {
		return nil, polestudio.Errorf(polestudio.ENOTFOUND, "studio not found")
	}
	if err != nil {
		return nil, err
	}
	return studio, nil
}

// FindStudios retrieves studios matching the filter.
func (s *StudioService) FindStudios(ctx context.Context, filter polestudio.StudioFilter) ([]*polestudio.Studio, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + studioColumns + ` FROM studios WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	switch filter.SortBy {
	case polestudio.SortByPosition:
		query.WriteString(" ORDER BY position ASC")
	default:
		query.WriteString(" ORDER BY scraped_at DESC")
	}

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var studios []*polestudio.Studio
	for rows.Next() {
		studio, err := scanStudio(rows)
		if err != nil {
			return nil, err
		}
		studios = append(studios, studio)
	}
	return studios, rows.Err()
}

// DeleteStudio permanently removes a studio.
func (s *StudioService) DeleteStudio(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM studios WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return polestudio.Errorf(polestudio.ENOTFOUND, "studio not found")
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanStudio.
type scanner interface {
	Scan(dest ...any) error
}

// scanStudio reads one studio row, reconstructing the optional address and
// rating from their nullable columns.
func scanStudio(row scanner) (*polestudio.Studio, error) {
	var studio polestudio.Studio
	var overviewLabels, ratingFactors, activities, imageURLs string
	var addressSegments, ratingScore, ratingCount sql.NullString
	var street, postal, city string
	var scrapedAt string

	err := row.Scan(&studio.ID, &studio.SourceURL, &studio.Position, &studio.Name,
		&overviewLabels,
		&studio.Contact.Email, &studio.Contact.Homepage, &studio.Contact.Phone,
		&addressSegments, &street, &postal, &city,
		&studio.Description, &ratingScore, &ratingCount,
		&ratingFactors, &activities, &studio.SaleText, &imageURLs,
		&studio.ContentHash, &scrapedAt)
	if err != nil {
		return nil, err
	}

	if studio.OverviewLabels, err = unmarshalStrings(overviewLabels); err != nil {
		return nil, err
	}
	if studio.RatingFactors, err = unmarshalStrings(ratingFactors); err != nil {
		return nil, err
	}
	if studio.Activities, err = unmarshalStrings(activities); err != nil {
		return nil, err
	}
	if studio.ImageURLs, err = unmarshalStrings(imageURLs); err != nil {
		return nil, err
	}

	if addressSegments.Valid {
		segments, err := unmarshalStrings(addressSegments.String)
		if err != nil {
			return nil, err
		}
		studio.Address = &polestudio.Address{
			RawSegments: segments,
			Street:      street,
			PostalCode:  postal,
			City:        city,
		}
	}

	if ratingScore.Valid {
		studio.Rating = &polestudio.Rating{
			Score: ratingScore.String,
			Count: ratingCount.String,
		}
	}

	studio.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}

	return &studio, nil
}

// marshalStrings encodes a string slice as a JSON array; nil encodes as [].
func marshalStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

// unmarshalStrings decodes a JSON array column; [] decodes as nil.
func unmarshalStrings(encoded string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}
