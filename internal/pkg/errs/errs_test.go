//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"studio-search/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	base := errors.New("dial tcp: connection refused")

	marked := errs.Mark(errs.Wrap(base, "fetch catalog"), errs.ErrCatalogUnavailable)

	assert.True(t, errs.Is(marked, errs.ErrCatalogUnavailable))
	assert.True(t, errs.Is(marked, base))
	assert.Contains(t, marked.Error(), "fetch catalog")
	assert.Equal(t, errs.ErrCatalogUnavailable, errs.Mark(nil, errs.ErrCatalogUnavailable))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.New("boom")

	lines := errs.ExtractStackLines(err, 3)

	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
