package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/mock"
	"github.com/logmind/moodlog/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockAuthProvider, *mock.MockPreferences) {
	t.Helper()
	mockProvider := mock.NewMockAuthProvider(ctrl)
	mockPrefs := mock.NewMockPreferences(ctrl)

	svc := NewAuthService(mockProvider, mockPrefs, logger.Nop())

	return svc, mockProvider, mockPrefs
}

// ── SignInAnonymously ────────────────────────────────────────────────────────

func TestAuthService_SignInAnonymously_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockPrefs := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UID: "anon-1", IsAnonymous: true}
	gomock.InOrder(
		mockProvider.EXPECT().SignInAnonymously(ctx).Return(user, nil),
		mockPrefs.EXPECT().AddOnboardedLoginType(ctx, models.LoginAnonymous).Return(nil),
	)

	got, err := svc.SignInAnonymously(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_SignInAnonymously_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockProvider.EXPECT().SignInAnonymously(ctx).Return(models.User{}, errors.New("offline"))

	_, err := svc.SignInAnonymously(ctx)
	require.Error(t, err)
}

func TestAuthService_SignInAnonymously_OnboardingWriteFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockPrefs := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UID: "anon-1", IsAnonymous: true}
	gomock.InOrder(
		mockProvider.EXPECT().SignInAnonymously(ctx).Return(user, nil),
		mockPrefs.EXPECT().AddOnboardedLoginType(ctx, models.LoginAnonymous).Return(errors.New("read-only fs")),
	)

	got, err := svc.SignInAnonymously(ctx)
	require.NoError(t, err, "a lost onboarding hint must not fail the sign-in")
	assert.Equal(t, user, got)
}

// ── SignInWithGoogle ─────────────────────────────────────────────────────────

func TestAuthService_SignInWithGoogle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockPrefs := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UID: "g-1", Email: "me@example.com"}
	gomock.InOrder(
		mockProvider.EXPECT().SignInWithCredential(ctx, "id-token").Return(user, nil),
		mockPrefs.EXPECT().AddOnboardedLoginType(ctx, models.LoginGoogle).Return(nil),
	)

	got, err := svc.SignInWithGoogle(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

// ── SignOut ──────────────────────────────────────────────────────────────────

func TestAuthService_SignOut_SwallowsRemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockProvider.EXPECT().SignOut(ctx).Return(errors.New("503"))

	svc.SignOut(ctx)
}

// ── Profile updates ──────────────────────────────────────────────────────────

func TestAuthService_UpdateDisplayName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockProvider.EXPECT().UpdateDisplayName(ctx, "Dana").Return(nil)
	require.NoError(t, svc.UpdateDisplayName(ctx, "Dana"))

	mockProvider.EXPECT().UpdateProfileImage(ctx, "https://img").Return(errors.New("denied"))
	require.Error(t, svc.UpdateProfileImage(ctx, "https://img"))
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, _ := newTestAuthSvc(t, ctrl)

	user := &models.User{UID: "g-1"}
	mockProvider.EXPECT().CurrentUser().Return(user)
	assert.Equal(t, user, svc.CurrentUser())
}
