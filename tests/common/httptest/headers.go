//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// SessionFrom returns the session id the server echoed back in the response.
func SessionFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	raw := w.Header().Get(sessionHeader)
	_, err := uuid.Parse(raw)
	require.NoError(t, err, "response carries no valid session id")
	return raw
}
