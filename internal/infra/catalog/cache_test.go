//go:build unit

package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio-search/internal/domain/studio"
	"studio-search/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	records []studio.Record
	err     error
	calls   int
}

func (s *stubSource) Fetch(context.Context) ([]studio.Record, error) {
	s.calls++
	return s.records, s.err
}

func (s *stubSource) Name() string { return "stub" }

func TestCachedCatalogLoad(t *testing.T) {
	base := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)

	t.Run("TTL内は同じスナップショットを返す", func(t *testing.T) {
		src := &stubSource{records: []studio.Record{{StudioName: "A"}}}
		clk := clock.NewMockClock(base)
		cache := NewCachedCatalog(src, clk, 5*time.Minute, discardLogger())

		first, err := cache.Load(context.Background())
		require.NoError(t, err)

		clk.Add(4 * time.Minute)
		second, err := cache.Load(context.Background())
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, src.calls)
		assert.Equal(t, base, first.LoadedAt)
	})

	t.Run("TTL切れで再読込しバージョンが変わる", func(t *testing.T) {
		src := &stubSource{records: []studio.Record{{StudioName: "A"}}}
		clk := clock.NewMockClock(base)
		cache := NewCachedCatalog(src, clk, 5*time.Minute, discardLogger())

		first, err := cache.Load(context.Background())
		require.NoError(t, err)

		clk.Add(5 * time.Minute)
		second, err := cache.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, src.calls)
		assert.NotEqual(t, first.Version, second.Version)
	})

	t.Run("TTL 0 は毎回読込", func(t *testing.T) {
		src := &stubSource{}
		cache := NewCachedCatalog(src, clock.NewMockClock(base), 0, discardLogger())

		_, _ = cache.Load(context.Background())
		_, _ = cache.Load(context.Background())

		assert.Equal(t, 2, src.calls)
	})

	t.Run("再読込の失敗は古いデータを返さない", func(t *testing.T) {
		src := &stubSource{records: []studio.Record{{StudioName: "A"}}}
		clk := clock.NewMockClock(base)
		cache := NewCachedCatalog(src, clk, time.Minute, discardLogger())

		_, err := cache.Load(context.Background())
		require.NoError(t, err)

		clk.Add(2 * time.Minute)
		src.err = errors.New("boom")
		got, err := cache.Load(context.Background())

		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("Invalidate後は再読込", func(t *testing.T) {
		src := &stubSource{}
		cache := NewCachedCatalog(src, clock.NewMockClock(base), time.Hour, discardLogger())

		_, _ = cache.Load(context.Background())
		cache.Invalidate()
		_, _ = cache.Load(context.Background())

		assert.Equal(t, 2, src.calls)
	})
}
