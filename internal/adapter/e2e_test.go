package adapter

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/MKhiriev/go-users-api/internal/config"
	handlerhttp "github.com/MKhiriev/go-users-api/internal/handler/http"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// newUsersAPI starts the real router over a freshly seeded store.
func newUsersAPI(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.Nop()
	services := service.NewServices(store.NewStorages(log), models.NewAppBuildInfo("e2e", "", ""), log)
	router := handlerhttp.NewHandler(services, config.App{AuthToken: testToken}, log).Init()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestE2E_SeedScenario(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t, newUsersAPI(t).URL)

	users, err := a.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{
		{ID: 1, Name: "Alice", Email: "alice@techhive.com"},
		{ID: 2, Name: "Bob", Email: "bob@techhive.com"},
	}, users)

	carl, err := a.CreateUser(ctx, models.User{Name: "Carl", Email: "carl@techhive.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), carl.ID)

	got, err := a.GetUser(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, carl, got)

	_, err = a.UpdateUser(ctx, 99, models.User{Name: "Ghost", Email: "g@x"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, a.DeleteUser(ctx, 3))
	_, err = a.GetUser(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	dana, err := a.CreateUser(ctx, models.User{Name: "Dana", Email: "dana@techhive.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), dana.ID, "deleted ids are not reused")

	version, err := a.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e2e", version)
}

func TestE2E_WrongTokenIsUnauthorized(t *testing.T) {
	srv := newUsersAPI(t)
	a, err := NewHTTPUsersAdapter(&config.ClientConfig{
		HTTPAddress:    srv.URL,
		RequestTimeout: 2 * time.Second,
		AuthToken:      "wrong",
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.CreateUser(context.Background(), models.User{Name: "Mallory", Email: "m@x"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	users, err := newTestAdapter(t, srv.URL).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestE2E_ConcurrentCreates(t *testing.T) {
	a := newTestAdapter(t, newUsersAPI(t).URL)
	const n = 10

	ids := make([]int64, n)
	g, ctx := errgroup.WithContext(context.Background())
	for i := range n {
		g.Go(func() error {
			u, err := a.CreateUser(ctx, models.User{
				Name:  fmt.Sprintf("user-%d", i),
				Email: fmt.Sprintf("user-%d@techhive.com", i),
			})
			ids[i] = u.ID
			return err
		})
	}
	require.NoError(t, g.Wait())

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		assert.Equal(t, int64(i+3), id)
	}

	users, err := a.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, n+2)
}
