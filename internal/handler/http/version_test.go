package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "semver", version: "1.2.3", want: `{"version":"1.2.3"}`},
		{name: "empty", version: "", want: `{"version":""}`},
		{name: "with suffix", version: "v2.0.0-rc1+abc", want: `{"version":"v2.0.0-rc1+abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{AppInfoService: &mockAppInfoService{version: tt.version}}, config.App{}, logger.Nop())

			rr := httptest.NewRecorder()
			err := h.getServerVersion(rr, httptest.NewRequest(http.MethodGet, "/version", nil))

			require.NoError(t, err)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rr.Body.String())
		})
	}
}

func TestGetServerVersion_ThroughRouter(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	rr := serve(t, router, http.MethodGet, "/version", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"test-version"}`, rr.Body.String())
}
