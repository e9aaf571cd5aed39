package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oshokin/ytmusic-cli/internal/logger"
)

// waitForUserLogin navigates to YouTube Music and waits for the user to
// finish signing in to their Google account.
func (s *ServiceImpl) waitForUserLogin(ctx context.Context) error {
	logger.Info(ctx, "Opening YouTube Music...")
	logger.Debugf(ctx, "Navigating to %s", musicHomeURL)

	s.page.MustNavigate(musicHomeURL)

	currentURL := s.page.MustInfo().URL
	logger.Debugf(ctx, "Navigation complete. Current URL: %s", currentURL)

	logger.Info(ctx, "")
	logger.Info(ctx, "Please complete the sign-in in the browser:")
	logger.Info(ctx, "")
	logger.Info(ctx, "1. Click 'Sign in' in the top right corner")
	logger.Info(ctx, "2. Enter your Google account email and password")
	logger.Info(ctx, "3. Complete any two-factor prompts on your phone")
	logger.Info(ctx, "4. Wait until YouTube Music shows your avatar")
	logger.Info(ctx, "")
	logger.Info(ctx, "Do NOT close the browser - the tool detects the login automatically.")
	logger.Info(ctx, "")
	logger.Info(ctx, "Waiting for login to complete...")

	if err := s.waitForLoginComplete(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Login completed successfully!")

	// Give the session a moment to fully establish.
	time.Sleep(sessionEstablishDelay)

	return nil
}

// waitForLoginComplete polls until the session cookie appears for the
// music origin, the browser dies, or the login window closes.
func (s *ServiceImpl) waitForLoginComplete(ctx context.Context) error {
	var (
		startTime = time.Now()
		lastURL   string
	)

	for {
		// Check context cancellation.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Check timeout.
		if time.Since(startTime) > maxLoginWaitTime {
			return fmt.Errorf("%w: waited for %v", ErrLoginTimeout, maxLoginWaitTime)
		}

		// Check if browser was closed.
		if !s.isBrowserAlive(ctx) {
			return ErrBrowserClosed
		}

		// Get current URL safely.
		currentURL, err := s.getCurrentURL(ctx)
		if err != nil {
			return fmt.Errorf("failed to get current URL: %w", err)
		}

		// Log URL changes for debugging.
		if currentURL != lastURL {
			logger.Debugf(ctx, "URL changed: %s", currentURL)

			lastURL = currentURL
		}

		// Validate user hasn't navigated away.
		if err = s.validateLoginURL(currentURL); err != nil {
			return err
		}

		// The login is complete once the session cookie shows up while
		// the page is back on the music origin. Google sets the cookie on
		// the consent redirect, so checking the URL alone is not enough.
		if strings.Contains(currentURL, musicDomain) && s.hasSessionCookie(ctx) {
			logger.Debug(ctx, "Session cookie detected - login successful")

			return nil
		}

		time.Sleep(loginPollInterval)
	}
}

// validateLoginURL validates that the user hasn't navigated away from the
// Google sign-in flow or YouTube Music.
func (s *ServiceImpl) validateLoginURL(currentURL string) error {
	if !strings.Contains(currentURL, youtubeDomain) &&
		!strings.Contains(currentURL, googleDomain) {
		return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
	}

	return nil
}
