package csv_test

import (
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"testing"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
	pscsv "github.com/hamudal/Hall-of-Pole-Version-6/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteStudio(t *testing.T) {
	t.Parallel()

	t.Run("writes header and one row per studio", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := pscsv.NewWriter(&buf)
		ctx := context.Background()

		studio := &polestudio.Studio{
			SourceURL:      "https://www.eversports.de/s/poda-studio",
			Name:           "Poda Studio",
			OverviewLabels: []string{"Classes", "Workshops"},
			Contact: polestudio.Contact{
				Email:    "hello@poda.de",
				Homepage: "https://example.com",
				Phone:    "+4930123456",
			},
			Address: &polestudio.Address{
				RawSegments: []string{"Main St 5", " 10115 Berlin"},
				Street:      "Main St 5",
				PostalCode:  "10115",
				City:        "Berlin",
			},
			Rating:        &polestudio.Rating{Score: "4.8", Count: "123"},
			RatingFactors: []string{"Ambience: 4.9"},
			Activities:    []string{"Pole Dance", "Aerial Hoop"},
			ImageURLs:     []string{"https://img.example.com/1.jpg"},
		}

		require.NoError(t, w.WriteStudio(ctx, studio))
		require.NoError(t, w.WriteStudio(ctx, &polestudio.Studio{SourceURL: "https://www.eversports.de/s/nordpole"}))
		require.NoError(t, w.Flush())

		rows, err := stdcsv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, "source_url", rows[0][0])
		assert.Equal(t, "https://www.eversports.de/s/poda-studio", rows[1][0])
		assert.Equal(t, "Poda Studio", rows[1][1])
		assert.Equal(t, "Classes; Workshops", rows[1][2])
		assert.Equal(t, "hello@poda.de", rows[1][3])
		assert.Equal(t, "10115", rows[1][7])
		assert.Equal(t, "Berlin", rows[1][8])
		assert.Equal(t, "4.8", rows[1][10])
		assert.Equal(t, "123", rows[1][11])
		assert.Equal(t, "Pole Dance; Aerial Hoop", rows[1][13])
	})

	t.Run("sparse record produces empty cells", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := pscsv.NewWriter(&buf)

		studio := &polestudio.Studio{SourceURL: "https://www.eversports.de/s/nordpole"}
		require.NoError(t, w.WriteStudio(context.Background(), studio))
		require.NoError(t, w.Flush())

		rows, err := stdcsv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)

		for i, cell := range rows[1] {
			if i == 0 {
				continue
			}
			assert.Empty(t, cell)
		}
	})

	t.Run("rejects record without source URL", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := pscsv.NewWriter(&buf)

		err := w.WriteStudio(context.Background(), &polestudio.Studio{})
		require.Error(t, err)
		assert.Equal(t, polestudio.EINVALID, polestudio.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := pscsv.NewWriter(&buf)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := w.WriteStudio(ctx, &polestudio.Studio{SourceURL: "https://example.com"})
		require.Error(t, err)
	})
}
