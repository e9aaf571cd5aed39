package auth

import (
	"context"
	"strings"

	"github.com/oshokin/ytmusic-cli/internal/logger"
)

// hasSessionCookie reports whether the session cookie is set for the music
// origin, without logging.
func (s *ServiceImpl) hasSessionCookie(ctx context.Context) bool {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf(ctx, "hasSessionCookie panic recovered: %v", r)
		}
	}()

	cookies, err := s.page.Cookies([]string{musicHomeURL})
	if err != nil {
		return false
	}

	for _, cookie := range cookies {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			return true
		}
	}

	return false
}

// extractSessionCredentials assembles the Cookie header from the
// authenticated session, together with the browser's User-Agent. All
// cookies visible to the music origin are kept: the API rejects requests
// that carry the signature cookie without its siblings.
func (s *ServiceImpl) extractSessionCredentials(ctx context.Context) (*Credentials, error) {
	logger.Info(ctx, "Extracting session cookies from browser...")

	cookies, err := s.page.Cookies([]string{musicHomeURL})
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Found %d cookies for the music origin", len(cookies))

	var (
		pairs      = make([]string, 0, len(cookies))
		hasSession bool
	)

	for _, cookie := range cookies {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			hasSession = true
		}

		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}

	if !hasSession {
		logger.Errorf(ctx, "'%s' cookie not found among %d cookies", sessionCookieName, len(cookies))

		return nil, ErrSessionCookiesNotFound
	}

	// The cookie signature is only accepted together with the browser
	// identity it was issued to, so the User-Agent is captured as well.
	userAgent := s.page.MustEval("() => navigator.userAgent").Str()

	logger.Debugf(ctx, "Captured User-Agent: %s", userAgent)

	return &Credentials{
		Cookie:    strings.Join(pairs, "; "),
		UserAgent: userAgent,
	}, nil
}
