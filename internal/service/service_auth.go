package service

import (
	"context"
	"fmt"

	"github.com/logmind/moodlog/internal/adapter"
	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/models"
)

type authService struct {
	provider adapter.AuthProvider
	prefs    Preferences
	logger   *logger.Logger
}

func NewAuthService(provider adapter.AuthProvider, prefs Preferences, log *logger.Logger) AuthService {
	return &authService{
		provider: provider,
		prefs:    prefs,
		logger:   log,
	}
}

func (s *authService) SignInAnonymously(ctx context.Context) (models.User, error) {
	user, err := s.provider.SignInAnonymously(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("anonymous sign-in: %w", err)
	}

	s.markOnboarded(ctx, models.LoginAnonymous)
	return user, nil
}

func (s *authService) SignInWithGoogle(ctx context.Context, idToken string) (models.User, error) {
	user, err := s.provider.SignInWithCredential(ctx, idToken)
	if err != nil {
		return models.User{}, fmt.Errorf("google sign-in: %w", err)
	}

	s.markOnboarded(ctx, models.LoginGoogle)
	return user, nil
}

// markOnboarded records the login type; a failed write only loses the
// onboarding hint, never the session.
func (s *authService) markOnboarded(ctx context.Context, loginType models.LoginType) {
	if err := s.prefs.AddOnboardedLoginType(ctx, loginType); err != nil {
		s.logger.Warn().Err(err).Str("login_type", string(loginType)).Msg("failed to record onboarded login type")
	}
}

func (s *authService) SignOut(ctx context.Context) {
	// The provider clears the local session even when the remote call
	// fails, so the user is signed out either way.
	if err := s.provider.SignOut(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("remote sign-out failed")
	}
}

func (s *authService) UpdateDisplayName(ctx context.Context, displayName string) error {
	if err := s.provider.UpdateDisplayName(ctx, displayName); err != nil {
		return fmt.Errorf("update display name: %w", err)
	}
	return nil
}

func (s *authService) UpdateProfileImage(ctx context.Context, photoURL string) error {
	if err := s.provider.UpdateProfileImage(ctx, photoURL); err != nil {
		return fmt.Errorf("update profile image: %w", err)
	}
	return nil
}

func (s *authService) CurrentUser() *models.User {
	return s.provider.CurrentUser()
}

func (s *authService) UserChanges(ctx context.Context) <-chan *models.User {
	return s.provider.UserChanges(ctx)
}
