package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/mock"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStore := mock.NewMockUserStore(ctrl)
	return NewUserService(mockStore, logger.Nop()), mockStore
}

var alice = models.User{ID: 1, Name: "Alice", Email: "alice@techhive.com"}

// ── ListUsers ────────────────────────────────────────────────────────────────

func TestUserService_ListUsers(t *testing.T) {
	svc, mockStore := newTestUserSvc(t)
	ctx := context.Background()

	mockStore.EXPECT().List(ctx).Return([]models.User{alice}, nil)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{alice}, users)
}

func TestUserService_ListUsers_Error(t *testing.T) {
	svc, mockStore := newTestUserSvc(t)
	ctx := context.Background()

	mockStore.EXPECT().List(ctx).Return(nil, assert.AnError)

	users, err := svc.ListUsers(ctx)
	assert.Nil(t, users)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── GetUser ──────────────────────────────────────────────────────────────────

func TestUserService_GetUser(t *testing.T) {
	svc, mockStore := newTestUserSvc(t)
	ctx := context.Background()

	mockStore.EXPECT().Get(ctx, int64(1)).Return(alice, nil)

	got, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, mockStore := newTestUserSvc(t)
	ctx := context.Background()

	mockStore.EXPECT().Get(ctx, int64(9)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetUser(ctx, 9)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.Contains(t, err.Error(), "get user 9")
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestUserService_CreateUser_DropsClientID(t *testing.T) {
	svc, mockStore := newTestUserSvc(t)
	ctx := context.Background()

	in := models.User{ID: 77, Name: "Carl", Email: "carl@x.com"}
	mockStore.EXPECT().
		Create(ctx, models.User{Name: "Carl", Email: "carl@x.com"}).
		Return(models.User{ID: 3, Name: "Carl", Email: "carl@x.com"}, nil)

	created, err := svc.CreateUser(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestUserService_CreateUser_Error(t *testing.T) {
	svc, mockStore := newTestUserSvc(t)
	ctx := context.Background()

	mockStore.EXPECT().Create(ctx, gomock.Any()).Return(models.User{}, assert.AnError)

	_, err := svc.CreateUser(ctx, models.User{Name: "x"})
	assert.ErrorIs(t, err, assert.AnError)
}

// ── UpdateUser ───────────────────────────────────────────────────────────────

func TestUserService_UpdateUser(t *testing.T) {
	svc, mockStore := newTestUserSvc(t)
	ctx := context.Background()

	patch := models.User{Name: "Alicia", Email: "alicia@techhive.com"}
	mockStore.EXPECT().Update(ctx, int64(1), patch).Return(models.User{ID: 1, Name: "Alicia", Email: "alicia@techhive.com"}, nil)

	updated, err := svc.UpdateUser(ctx, 1, patch)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	svc, mockStore := newTestUserSvc(t)
	ctx := context.Background()

	mockStore.EXPECT().Update(ctx, int64(5), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateUser(ctx, 5, models.User{})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ── DeleteUser ───────────────────────────────────────────────────────────────

func TestUserService_DeleteUser(t *testing.T) {
	svc, mockStore := newTestUserSvc(t)
	ctx := context.Background()

	mockStore.EXPECT().Delete(ctx, int64(2)).Return(nil)

	require.NoError(t, svc.DeleteUser(ctx, 2))
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	svc, mockStore := newTestUserSvc(t)
	ctx := context.Background()

	mockStore.EXPECT().Delete(ctx, int64(2)).Return(store.ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(ctx, 2), store.ErrUserNotFound)
}

// ── NewServices ──────────────────────────────────────────────────────────────

// TestNewServices_WiresValidation verifies that the aggregate reports
// non-positive ids as absent and reaches the seeded store otherwise.
func TestNewServices_WiresValidation(t *testing.T) {
	services := NewServices(store.NewStorages(logger.Nop()), models.NewAppBuildInfo("1.2.3", "", ""), logger.Nop())
	ctx := context.Background()

	_, err := services.UserService.GetUser(ctx, 0)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	got, err := services.UserService.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	assert.Equal(t, "1.2.3", services.AppInfoService.GetAppVersion(ctx))
}
