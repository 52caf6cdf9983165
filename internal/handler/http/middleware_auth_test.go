package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(t *testing.T, h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		wantStatus     int
		wantNextCalled bool
	}{
		{
			name:           "valid token",
			authHeader:     testAuthHeader,
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong token",
			authHeader: "Bearer not-the-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without scheme",
			authHeader: testToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "lowercase scheme",
			authHeader: "bearer " + testToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "basic scheme",
			authHeader: "Basic " + testToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "trailing space",
			authHeader: testAuthHeader + " ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "double space after scheme",
			authHeader: "Bearer  " + testToken,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil)
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(t, h, tt.authHeader, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
			}
		})
	}
}

func TestAuth_UsesConfiguredToken(t *testing.T) {
	h := newTestHandler(t, nil)
	h.authHeader = bearerPrefix + "rotated"

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.Equal(t, http.StatusUnauthorized, executeAuth(t, h, testAuthHeader, next).Code)
	assert.Equal(t, http.StatusNoContent, executeAuth(t, h, "Bearer rotated", next).Code)
}
