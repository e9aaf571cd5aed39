package app

import (
	"context"
	"time"

	ytmusic_client "github.com/oshokin/ytmusic-cli/internal/client/ytmusic"
	"github.com/oshokin/ytmusic-cli/internal/config"
	"github.com/oshokin/ytmusic-cli/internal/logger"
	ytmusic_service "github.com/oshokin/ytmusic-cli/internal/service/ytmusic"
)

// newService assembles the API client and the cached service layer from the
// validated configuration. Refreshed OAuth tokens are written back to the
// configuration file as they arrive.
func newService(ctx context.Context, cfg *config.Config) (ytmusic_service.Service, error) {
	credential, err := buildCredential(cfg)
	if err != nil {
		return nil, err
	}

	apiClient, err := ytmusic_client.NewClient(cfg, credential)
	if err != nil {
		return nil, err
	}

	apiClient.SetTokenRefreshHook(func(refreshed *ytmusic_client.OAuthCredential) {
		persistOAuthCredential(ctx, cfg, refreshed)
	})

	return ytmusic_service.NewService(cfg, apiClient)
}

// buildCredential turns the stored configuration into an authorization
// credential matching the selected auth mode.
func buildCredential(cfg *config.Config) (ytmusic_client.Credential, error) {
	if cfg.AuthMode == config.AuthModeOAuth {
		token := ytmusic_client.OAuthToken{
			AccessToken:  cfg.OAuthAccessToken,
			TokenType:    cfg.OAuthTokenType,
			RefreshToken: cfg.OAuthRefreshToken,
		}

		return ytmusic_client.NewStoredOAuthCredential(token, cfg.ParsedOAuthExpiresAt), nil
	}

	return ytmusic_client.NewBrowserCredential(cfg.Cookie)
}

// persistOAuthCredential writes refreshed token material back to the
// configuration file. Persistence failures are logged and otherwise ignored:
// the in-memory credential stays usable for the rest of the run.
func persistOAuthCredential(ctx context.Context, cfg *config.Config, credential *ytmusic_client.OAuthCredential) {
	token := credential.Token()

	cfg.OAuthAccessToken = token.AccessToken
	cfg.OAuthRefreshToken = token.RefreshToken
	cfg.OAuthTokenType = token.TokenType
	cfg.OAuthExpiresAt = credential.ExpiresAt().Format(time.RFC3339)
	cfg.ParsedOAuthExpiresAt = credential.ExpiresAt()

	if err := config.SaveConfig(cfg); err != nil {
		logger.Errorf(ctx, "Failed to persist refreshed token: %v", err)
	}
}
