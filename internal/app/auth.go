package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	ytmusic_client "github.com/oshokin/ytmusic-cli/internal/client/ytmusic"
	"github.com/oshokin/ytmusic-cli/internal/config"
	"github.com/oshokin/ytmusic-cli/internal/logger"
	"github.com/oshokin/ytmusic-cli/internal/service/auth"
)

// ExecuteAuthLoginCommand executes the auth login command.
// It opens a browser, waits for the user to log in, extracts the session
// cookie, and saves it to the configuration file.
func ExecuteAuthLoginCommand(ctx context.Context, cfg *config.Config) {
	logger.Info(ctx, "Starting authentication process")

	// Create browser authentication service.
	authService, err := auth.NewService(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize authentication service: %v", err)
		return
	}

	// Perform login and extract the session cookie.
	credentials, err := authService.LoginAndExtractCookie(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Authentication failed: %v", err)
		return
	}

	// Update configuration with the captured session.
	cfg.AuthMode = config.AuthModeBrowser
	cfg.Cookie = credentials.Cookie

	if credentials.UserAgent != "" {
		cfg.UserAgent = credentials.UserAgent
	}

	// Save configuration to file.
	if err = config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
		return
	}

	logger.Info(ctx, "Configuration updated successfully!")
	logger.Info(ctx, "Authentication complete! You can now browse your music.")
	logger.Info(ctx, "")
	logger.Info(ctx, "Try searching for an artist:")
	logger.Info(ctx, "ytmusic-cli search \"Oxxxymiron\"")
}

// ExecuteAuthOAuthCommand executes the auth oauth command.
// It runs the OAuth device code flow: the user opens a verification page,
// enters a short code, and the granted token is saved to the configuration
// file.
func ExecuteAuthOAuthCommand(ctx context.Context, cfg *config.Config) {
	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	httpClient := &http.Client{Timeout: timeout}

	deviceCode, err := ytmusic_client.RequestDeviceCode(ctx, httpClient)
	if err != nil {
		logger.Fatalf(ctx, "Failed to request device code: %v", err)
		return
	}

	logger.Info(ctx, "To authorize this application:")
	logger.Infof(ctx, "1. Open %s", deviceCode.VerificationURL)
	logger.Infof(ctx, "2. Enter the code: %s", deviceCode.UserCode)
	logger.Info(ctx, "3. Approve the access request")
	logger.Info(ctx, "")
	logger.Info(ctx, "Waiting for approval...")

	credential, err := pollForDeviceToken(ctx, httpClient, deviceCode)
	if err != nil {
		logger.Fatalf(ctx, "Authorization failed: %v", err)
		return
	}

	cfg.AuthMode = config.AuthModeOAuth
	persistOAuthCredential(ctx, cfg, credential)

	logger.Info(ctx, "Configuration updated successfully!")
	logger.Info(ctx, "Authentication complete! You can now browse your music.")
}

// pollForDeviceToken polls the token endpoint at the interval the endpoint
// requested until the user approves the code, the code expires, or the
// context is canceled.
func pollForDeviceToken(
	ctx context.Context,
	httpClient *http.Client,
	deviceCode *ytmusic_client.DeviceCode,
) (*ytmusic_client.OAuthCredential, error) {
	interval := time.Duration(deviceCode.Interval) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}

	deadline := time.Now().Add(time.Duration(deviceCode.ExpiresIn) * time.Second)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		if time.Now().After(deadline) {
			return nil, errors.New("device code expired before approval")
		}

		credential, err := ytmusic_client.ExchangeDeviceCode(ctx, httpClient, deviceCode.DeviceCode)
		if err != nil {
			if errors.Is(err, ytmusic_client.ErrOAuthPending) {
				continue
			}

			return nil, err
		}

		return credential, nil
	}
}
