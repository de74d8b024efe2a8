package scrape_test

import (
	"fmt"
	"sync"
	"testing"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
	"github.com/hamudal/Hall-of-Pole-Version-6/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	t.Parallel()

	t.Run("preserves report order", func(t *testing.T) {
		t.Parallel()

		log := scrape.NewLog()
		log.ReportRetrieval("https://example.com/a", polestudio.Errorf(polestudio.EUNAVAILABLE, "HTTP 503"))
		log.ReportField("https://example.com/b", "rating", polestudio.Errorf(polestudio.EINVALID, "malformed"))

		errs := log.Errors()
		require.Len(t, errs, 2)
		assert.Equal(t, polestudio.KindRetrieval, errs[0].Kind)
		assert.Equal(t, "https://example.com/a", errs[0].Locator)
		assert.Equal(t, polestudio.KindField, errs[1].Kind)
		assert.Equal(t, "rating", errs[1].Field)
	})

	t.Run("empty log returns empty snapshot", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, scrape.NewLog().Errors())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		t.Parallel()

		log := scrape.NewLog()
		log.ReportField("https://example.com", "name", polestudio.Errorf(polestudio.EINVALID, "boom"))

		snap := log.Errors()
		snap[0] = nil

		require.NotNil(t, log.Errors()[0])
	})

	t.Run("safe under concurrent reports", func(t *testing.T) {
		t.Parallel()

		log := scrape.NewLog()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				log.ReportField(fmt.Sprintf("https://example.com/%d", i), "name",
					polestudio.Errorf(polestudio.EINVALID, "boom"))
			}(i)
		}
		wg.Wait()

		assert.Len(t, log.Errors(), 50)
	})
}
