package viewstate

import (
	"context"
	"sync"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/service"
	"github.com/logmind/moodlog/models"
)

// ProfileState is the snapshot behind the profile screen. A nil User means
// signed out.
type ProfileState struct {
	User *models.User
	Err  error
}

// Profile drives the profile screen. It follows the auth change stream so
// the screen reflects sign-ins and sign-outs from any path.
type Profile struct {
	auth   service.AuthService
	logger *logger.Logger

	mu    sync.RWMutex
	state ProfileState

	updates chan ProfileState

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewProfile(auth service.AuthService, log *logger.Logger) *Profile {
	return &Profile{
		auth:    auth,
		logger:  log,
		updates: make(chan ProfileState, 1),
	}
}

// Start snapshots the current user and launches the auth follower. It
// stops any previously running follower first.
func (p *Profile) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.state.User = p.auth.CurrentUser()
	p.wg.Add(1)
	p.mu.Unlock()

	changes := p.auth.UserChanges(runCtx)
	go func() {
		defer p.wg.Done()
		for {
			select {
			case <-runCtx.Done():
				return
			case user, ok := <-changes:
				if !ok {
					return
				}
				p.setUser(user)
			}
		}
	}()
}

// Stop cancels the auth follower and waits for it to exit.
func (p *Profile) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// State returns the current snapshot.
func (p *Profile) State() ProfileState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Updates returns the coalescing update channel.
func (p *Profile) Updates() <-chan ProfileState {
	return p.updates
}

// SignInAnonymously opens an anonymous session.
func (p *Profile) SignInAnonymously(ctx context.Context) error {
	if _, err := p.auth.SignInAnonymously(ctx); err != nil {
		p.fail(err)
		return err
	}
	return nil
}

// SignInWithGoogle exchanges a Google ID token for a session.
func (p *Profile) SignInWithGoogle(ctx context.Context, idToken string) error {
	if _, err := p.auth.SignInWithGoogle(ctx, idToken); err != nil {
		p.fail(err)
		return err
	}
	return nil
}

// SignOut ends the session; the follower picks up the nil user.
func (p *Profile) SignOut(ctx context.Context) {
	p.auth.SignOut(ctx)
}

// UpdateDisplayName changes the profile display name.
func (p *Profile) UpdateDisplayName(ctx context.Context, name string) error {
	if err := p.auth.UpdateDisplayName(ctx, name); err != nil {
		p.fail(err)
		return err
	}
	return nil
}

// UpdateProfileImage changes the profile photo URL.
func (p *Profile) UpdateProfileImage(ctx context.Context, photoURL string) error {
	if err := p.auth.UpdateProfileImage(ctx, photoURL); err != nil {
		p.fail(err)
		return err
	}
	return nil
}

func (p *Profile) setUser(user *models.User) {
	p.mu.Lock()
	p.state.User = user
	p.state.Err = nil
	snapshot := p.state
	p.mu.Unlock()

	p.publish(snapshot)
}

func (p *Profile) fail(err error) {
	p.logger.Error().Err(err).Msg("profile action failed")

	p.mu.Lock()
	p.state.Err = err
	snapshot := p.state
	p.mu.Unlock()

	p.publish(snapshot)
}

func (p *Profile) publish(snapshot ProfileState) {
	for {
		select {
		case p.updates <- snapshot:
			return
		default:
			select {
			case <-p.updates:
			default:
			}
		}
	}
}
