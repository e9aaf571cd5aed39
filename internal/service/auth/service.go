package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"

	"github.com/oshokin/ytmusic-cli/internal/config"
	"github.com/oshokin/ytmusic-cli/internal/logger"
)

const (
	// browserSlowMotionDelay is the delay between browser actions for visibility during debugging.
	browserSlowMotionDelay = 200 * time.Millisecond

	// musicHomeURL is the YouTube Music landing page.
	musicHomeURL = "https://music.youtube.com/"

	// musicDomain is the YouTube Music domain.
	musicDomain = "music.youtube.com"

	// youtubeDomain is the main YouTube domain.
	youtubeDomain = "youtube.com"

	// googleDomain covers the Google account and consent pages the login flow passes through.
	googleDomain = "google.com"

	// sessionCookieName is the cookie that marks an authenticated session.
	// The same value is later used to sign API requests.
	sessionCookieName = "SAPISID"

	// loginPollInterval is the interval for polling the login status.
	loginPollInterval = 1 * time.Second

	// maxLoginWaitTime is the maximum time to wait for user to complete login.
	maxLoginWaitTime = 10 * time.Minute

	// sessionEstablishDelay is the delay after login to allow the session cookies to settle.
	sessionEstablishDelay = 2 * time.Second

	// browserCleanupDelay is the delay to wait for Chrome to release file locks before cleanup.
	browserCleanupDelay = 500 * time.Millisecond
)

var (
	// ErrLoginTimeout is returned when login takes too long.
	ErrLoginTimeout = errors.New("login timeout exceeded")

	// ErrBrowserClosed is returned when the browser is closed by the user.
	ErrBrowserClosed = errors.New("browser was closed by user")

	// ErrNavigatedAway is returned when the user navigates away from the login flow.
	ErrNavigatedAway = errors.New("user navigated away from login flow")

	// ErrSessionCookiesNotFound is returned when the session cookies cannot be found after login.
	ErrSessionCookiesNotFound = errors.New("session cookies not found - login may have failed")
)

// Credentials is the material captured from an authenticated browser
// session. UserAgent matters because the cookie signature is only accepted
// together with the browser identity it was issued to.
type Credentials struct {
	// Cookie is the assembled Cookie header of the session.
	Cookie string
	// UserAgent is the browser's User-Agent string.
	UserAgent string
}

// Service provides browser-based credential capture.
type Service interface {
	// LoginAndExtractCookie opens a browser, waits for the user to sign in
	// to their Google account, then extracts the session cookie header.
	LoginAndExtractCookie(ctx context.Context) (*Credentials, error)
}

// ServiceImpl provides browser-based credential capture for YouTube Music.
type ServiceImpl struct {
	cfg     *config.Config
	browser *rod.Browser
	page    *rod.Page
	// tempDir stores the temporary profile directory for cleanup.
	tempDir string
}

// NewService creates a new browser authentication service.
func NewService(cfg *config.Config) (*ServiceImpl, error) {
	return &ServiceImpl{
		cfg: cfg,
	}, nil
}

// LoginAndExtractCookie opens a browser, waits for the user to sign in,
// then extracts the session cookie header.
func (s *ServiceImpl) LoginAndExtractCookie(ctx context.Context) (*Credentials, error) {
	logger.Info(ctx, "Starting browser-based authentication")

	// Initialize browser.
	if err := s.initBrowser(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	defer s.cleanup(ctx)

	// Navigate to YouTube Music and wait for the user to complete sign-in.
	if err := s.waitForUserLogin(ctx); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// Assemble the cookie header from the authenticated session.
	credentials, err := s.extractSessionCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract session cookies: %w", err)
	}

	logger.Info(ctx, "Session cookies extracted successfully")

	return credentials, nil
}
