//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"studio-search/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and, for 2xx with a target, decodes the JSON body.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "invalid JSON body: %s", w.Body.String())
}

// AssertErrorResponse decodes an httperr.Response and checks that its message contains expectedMsg.
// An empty expectedMsg only checks the status and shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "invalid error body: %s", w.Body.String())
	assert.NotEmpty(t, resp.Error.Code)
	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
	return resp
}

func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, code httperr.Code) {
	t.Helper()

	resp := AssertErrorResponse(t, w, expectedStatus, "")
	assert.Equal(t, code, resp.Error.Code)
}
