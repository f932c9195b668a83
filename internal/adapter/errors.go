package adapter

import "errors"

// Sentinel errors for remote auth failures. Everything the provider
// returns is wrapped into one of these with a short diagnostic string;
// raw transport errors never cross the adapter boundary.
var (
	ErrRemoteAuth      = errors.New("remote auth failure")
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrNoCurrentUser   = errors.New("no current user")
	ErrInvalidIDToken  = errors.New("invalid id token")
	ErrProviderOffline = errors.New("auth provider unreachable")
)
