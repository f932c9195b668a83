package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/logmind/moodlog/internal/config"
	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/models"
)

type httpAuthProvider struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
	user  *models.User
	subs  map[chan *models.User]struct{}
}

// NewHTTPAuthProvider constructs the resty-backed AuthProvider talking to
// the auth service's REST surface.
func NewHTTPAuthProvider(cfg config.Auth, log *logger.Logger) AuthProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &httpAuthProvider{
		client: cli,
		logger: log,
		subs:   make(map[chan *models.User]struct{}),
	}
}

func (h *httpAuthProvider) setToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAuthProvider) authedRequest(ctx context.Context) *resty.Request {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// setUser swaps the current user and notifies every subscriber. Stale
// unread states are coalesced away so a slow subscriber only sees the
// latest value.
func (h *httpAuthProvider) setUser(user *models.User) {
	h.mu.Lock()
	h.user = user
	subs := make([]chan *models.User, 0, len(h.subs))
	for ch := range h.subs {
		subs = append(subs, ch)
	}
	h.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- user:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- user:
			default:
			}
		}
	}
}

func (h *httpAuthProvider) CurrentUser() *models.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user
}

func (h *httpAuthProvider) UserChanges(ctx context.Context) <-chan *models.User {
	ch := make(chan *models.User, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	// Deliver the current state immediately so new subscribers do not
	// wait for the next transition.
	ch <- h.user
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}()

	return ch
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (h *httpAuthProvider) SignInAnonymously(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	// The provider keys anonymous accounts by a client-generated UID so
	// a re-install resumes a fresh identity.
	body := map[string]string{"clientUid": uuid.NewString()}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/auth/anonymous")
	if err != nil {
		log.Err(err).Str("func", "httpAuthProvider.SignInAnonymously").Msg("anonymous sign-in request failed")
		return models.User{}, fmt.Errorf("%w: anonymous sign-in: %w", ErrProviderOffline, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var session sessionResponse
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.User{}, fmt.Errorf("%w: decode anonymous session: %w", ErrRemoteAuth, err)
	}

	session.User.IsAnonymous = true
	h.setToken(session.Token)
	h.setUser(&session.User)

	return session.User, nil
}

func (h *httpAuthProvider) SignInWithCredential(ctx context.Context, idToken string) (models.User, error) {
	log := logger.FromContext(ctx)

	claims, err := parseIDTokenClaims(idToken)
	if err != nil {
		return models.User{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"idToken": idToken}).
		Post("/api/auth/credential")
	if err != nil {
		log.Err(err).Str("func", "httpAuthProvider.SignInWithCredential").Msg("credential sign-in request failed")
		return models.User{}, fmt.Errorf("%w: credential sign-in: %w", ErrProviderOffline, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var session sessionResponse
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.User{}, fmt.Errorf("%w: decode credential session: %w", ErrRemoteAuth, err)
	}

	// The provider response wins over token claims, but claims fill in
	// profile fields the provider leaves blank.
	if session.User.DisplayName == "" {
		session.User.DisplayName = claims.Name
	}
	if session.User.Email == "" {
		session.User.Email = claims.Email
	}
	if session.User.PhotoURL == "" {
		session.User.PhotoURL = claims.Picture
	}

	h.setToken(session.Token)
	h.setUser(&session.User)

	return session.User, nil
}

func (h *httpAuthProvider) SignOut(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/signout")

	// The local transition always happens, even when the remote call
	// failed; the caller decides whether to surface the error.
	h.setToken("")
	h.setUser(nil)

	if err != nil {
		return fmt.Errorf("%w: sign-out: %w", ErrProviderOffline, err)
	}
	return mapHTTPError(resp)
}

func (h *httpAuthProvider) UpdateDisplayName(ctx context.Context, displayName string) error {
	if h.CurrentUser() == nil {
		return ErrNoCurrentUser
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"displayName": displayName}).
		Put("/api/user/display-name")
	if err != nil {
		return fmt.Errorf("%w: update display name: %w", ErrProviderOffline, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.mu.Lock()
	if h.user == nil {
		// Signed out while the request was in flight.
		h.mu.Unlock()
		return ErrNoCurrentUser
	}
	updated := *h.user
	h.mu.Unlock()
	updated.DisplayName = displayName
	h.setUser(&updated)

	return nil
}

func (h *httpAuthProvider) UpdateProfileImage(ctx context.Context, photoURL string) error {
	if h.CurrentUser() == nil {
		return ErrNoCurrentUser
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"photoUrl": photoURL}).
		Put("/api/user/photo")
	if err != nil {
		return fmt.Errorf("%w: update profile image: %w", ErrProviderOffline, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.mu.Lock()
	if h.user == nil {
		// Signed out while the request was in flight.
		h.mu.Unlock()
		return ErrNoCurrentUser
	}
	updated := *h.user
	h.mu.Unlock()
	updated.PhotoURL = photoURL
	h.setUser(&updated)

	return nil
}

type idTokenClaims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// parseIDTokenClaims decodes the provider ID token without verifying its
// signature. Verification belongs to the auth service; the client only
// reads profile claims out of it.
func parseIDTokenClaims(idToken string) (*idTokenClaims, error) {
	claims := &idTokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}
	return claims, nil
}
