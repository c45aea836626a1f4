package ports

// Package ports defines the auth seams the job board plugs identity into:
// the OIDC adapter and the dev-mode provider both implement AuthProvider,
// sessions live behind SessionStore, and RoleMapper turns IdP groups into
// the board's seeker/employer/admin roles. Implementations live in
// internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
)

// BeginInput carries inputs for starting a sign-in.
type BeginInput struct {
	RedirectURL string
}

// AuthProvider runs the sign-in flow against the identity provider. The
// board never sees credentials; it only receives the verified identity that
// user provisioning is keyed on.
type AuthProvider interface {
	// Begin starts the sign-in and returns the provider auth URL, an opaque
	// state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the sign-in, verifying state and nonce, and returns
	// the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// SessionStore persists signed-in board sessions between requests. The
// session cookie holds only the opaque ID; role and identity live here.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleMapper assigns a board role from the IdP group claims. Users outside
// the employer and admin groups default to job seeker.
type RoleMapper interface {
	Map(groups []string) domainauth.Role
}
