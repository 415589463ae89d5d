//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertCookieSet checks that name was set with a value and the HttpOnly flag.
func AssertCookieSet(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	c := ExtractCookie(w, name)
	require.NotNil(t, c, "cookie %s not set", name)
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly, "cookie %s must be HttpOnly", name)
	return c
}

// AssertCookieCleared checks that name was expired.
func AssertCookieCleared(t *testing.T, w *httptest.ResponseRecorder, name string) {
	t.Helper()
	c := ExtractCookie(w, name)
	require.NotNil(t, c, "cookie %s not present in response", name)
	assert.Empty(t, c.Value)
	assert.Less(t, c.MaxAge, 0)
}
