// Package testutil holds helpers shared by HTTP tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"readinglog/internal/httpx"
	"readinglog/internal/platform/crypto"

	"github.com/stretchr/testify/require"
)

// GenerateTestToken returns a bearer token for userID valid for an hour.
func GenerateTestToken(secret, userID string) string {
	token, _ := crypto.GenerateToken(secret, userID, time.Hour)
	return token
}

// GenerateExpiredToken returns a token that expired an hour ago.
func GenerateExpiredToken(secret, userID string) string {
	token, _ := crypto.GenerateToken(secret, userID, -time.Hour)
	return token
}

// NewRequest builds a request with body encoded as JSON when non-nil.
func NewRequest(method, path string, body any) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	b, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(b))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth is NewRequest with a bearer token.
func NewRequestWithAuth(method, path string, body any, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// Envelope is the decoded JSON envelope of an API response, with data and
// error left for the test to inspect.
type Envelope struct {
	Success bool                    `json:"success"`
	Data    json.RawMessage         `json:"data"`
	Meta    map[string]any          `json:"meta"`
	Error   httpx.ErrorResponseBody `json:"error"`
}

// Serve runs req against h and decodes the envelope when there is a body.
func Serve(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env Envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

// Data decodes the envelope data into T.
func Data[T any](t *testing.T, env Envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}
