package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	testToken      = "my-secret-token"
	testAuthHeader = "Bearer " + testToken
)

// ---- Mock: UserService ----

// mockUserSvc lets each test override only the calls it cares about.
// A call without an override fails the test.
type mockUserSvc struct {
	t *testing.T

	listFn   func(ctx context.Context) ([]models.User, error)
	getFn    func(ctx context.Context, id int64) (models.User, error)
	createFn func(ctx context.Context, user models.User) (models.User, error)
	updateFn func(ctx context.Context, id int64, user models.User) (models.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockUserSvc) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn == nil {
		m.t.Fatal("unexpected ListUsers call")
	}
	return m.listFn(ctx)
}

func (m *mockUserSvc) GetUser(ctx context.Context, id int64) (models.User, error) {
	if m.getFn == nil {
		m.t.Fatal("unexpected GetUser call")
	}
	return m.getFn(ctx, id)
}

func (m *mockUserSvc) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn == nil {
		m.t.Fatal("unexpected CreateUser call")
	}
	return m.createFn(ctx, user)
}

func (m *mockUserSvc) UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error) {
	if m.updateFn == nil {
		m.t.Fatal("unexpected UpdateUser call")
	}
	return m.updateFn(ctx, id, user)
}

func (m *mockUserSvc) DeleteUser(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		m.t.Fatal("unexpected DeleteUser call")
	}
	return m.deleteFn(ctx, id)
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helpers ----

func newTestHandler(t *testing.T, userSvc service.UserService) *Handler {
	t.Helper()
	return NewHandler(
		&service.Services{
			UserService:    userSvc,
			AppInfoService: &mockAppInfoService{version: "test-version"},
		},
		config.App{AuthToken: testToken},
		logger.Nop(),
	)
}

// newBufferedLogger returns a logger whose JSON output lands in buf.
func newBufferedLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

// serve sends a request with a valid token through the full router.
func serve(t *testing.T, router http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", testAuthHeader)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rr).Error
}

func newRequest(method, target, body, authHeader string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

func recordTo(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
