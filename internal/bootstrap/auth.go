package bootstrap

import (
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/qatalent/jobboard/config"
	"github.com/qatalent/jobboard/internal/adapters/authroles"
	"github.com/qatalent/jobboard/internal/adapters/devauth"
	"github.com/qatalent/jobboard/internal/adapters/oidc"
	redisadapter "github.com/qatalent/jobboard/internal/adapters/redis"
	"github.com/qatalent/jobboard/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Every route depends on sessions, so a misconfigured auth stack is fatal.
func BuildAuthService(cfg AuthConfig) (*service.AuthService, error) {
	if cfg.RedisClient == nil {
		return nil, errors.New("auth requires a redis client for the session store")
	}

	// Session store and role mapper are shared by both modes.
	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")
	roleMapper := authroles.StaticRoleMapper{
		AdminGroup:    cfg.Auth.AdminGroup,
		EmployerGroup: cfg.Auth.EmployerGroup,
	}

	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		return buildDevAuthService(cfg, sessionStore, roleMapper)

	case config.AuthModeOAuth:
		return buildOAuthService(cfg, sessionStore, roleMapper)

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}

func buildDevAuthService(
	cfg AuthConfig,
	sessionStore *redisadapter.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) (*service.AuthService, error) {
	prov, err := devauth.NewProvider(devauth.Config{
		SubjectID: cfg.Auth.DevAuth.SubjectID,
		Email:     cfg.Auth.DevAuth.Email,
		Name:      cfg.Auth.DevAuth.Name,
		Groups:    cfg.Auth.DevAuth.Groups,
		// session duration defaults inside provider
	})
	if err != nil {
		return nil, fmt.Errorf("create dev auth provider: %w", err)
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Roles:    roleMapper,
	}), nil
}

func buildOAuthService(
	cfg AuthConfig,
	sessionStore *redisadapter.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) (*service.AuthService, error) {
	oauth := cfg.Auth.OAuth
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		return nil, fmt.Errorf(
			"oauth mode requires discovery URL, client ID, and client secret (discovery_url_empty=%t client_id_empty=%t client_secret_empty=%t)",
			oauth.DiscoveryURL == "", oauth.ClientID == "", oauth.ClientSecret == "",
		)
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		IssuerURL:    oauth.DiscoveryURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create OIDC provider: %w", err)
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Roles:    roleMapper,
	}), nil
}
