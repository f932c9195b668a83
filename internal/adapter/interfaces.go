package adapter

import (
	"context"

	"github.com/logmind/moodlog/models"
)

// AuthProvider is the remote authentication boundary. The provider itself
// (account storage, credential verification) is an external capability;
// this interface is everything the app consumes from it.
type AuthProvider interface {
	// SignInAnonymously creates or resumes an anonymous session.
	SignInAnonymously(ctx context.Context) (models.User, error)

	// SignInWithCredential exchanges a provider ID token for a session.
	SignInWithCredential(ctx context.Context, idToken string) (models.User, error)

	// SignOut terminates the session. The local signed-out transition
	// happens regardless of the remote call's outcome.
	SignOut(ctx context.Context) error

	// UpdateDisplayName changes the profile display name.
	UpdateDisplayName(ctx context.Context, displayName string) error

	// UpdateProfileImage changes the profile photo URL.
	UpdateProfileImage(ctx context.Context, photoURL string) error

	// CurrentUser returns the signed-in user, or nil.
	CurrentUser() *models.User

	// UserChanges streams the current user on every auth state change;
	// nil means signed out. The channel closes when ctx is done.
	UserChanges(ctx context.Context) <-chan *models.User
}
