package ytmusic

import (
	"fmt"
	"net/http"
	"time"
)

// Credential supplies the authorization headers of an API request.
// Implementations must be safe to share between goroutines; the client
// treats them as immutable and swaps the whole value on refresh.
type Credential interface {
	// apply stamps the credential's authorization headers onto the request.
	apply(req *http.Request, now time.Time) error
	// expired reports whether the credential must be refreshed before use.
	expired(now time.Time) bool
	// mode names the credential kind for logs.
	mode() string
}

// BrowserCredential authorizes requests with a browser cookie jar and the
// timestamped signature derived from its SAPISID cookie.
type BrowserCredential struct {
	// cookie is the full Cookie header captured from a logged-in browser.
	cookie string
	// sapisid is the cookie value the signature is derived from.
	sapisid string
}

// NewBrowserCredential builds a cookie credential from a raw Cookie header.
// The header must contain a SAPISID (or __Secure-3PAPISID) cookie.
func NewBrowserCredential(cookie string) (*BrowserCredential, error) {
	sapisid, ok := extractSAPISID(cookie)
	if !ok {
		return nil, fmt.Errorf("%w: cookie header carries no SAPISID", ErrAuthNotConfigured)
	}

	return &BrowserCredential{cookie: cookie, sapisid: sapisid}, nil
}

func (b *BrowserCredential) apply(req *http.Request, now time.Time) error {
	req.Header.Set("Authorization", sapisidHash(b.sapisid, now))
	req.Header.Set("Cookie", b.cookie)
	req.Header.Set("X-Origin", originURL)

	return nil
}

// expired always reports false: cookies have no usable expiry signal, so a
// dead cookie only surfaces as an authorization rejection.
func (b *BrowserCredential) expired(time.Time) bool {
	return false
}

func (b *BrowserCredential) mode() string {
	return "browser"
}

// OAuthToken mirrors the token endpoint's response payload. RefreshToken is
// only present on the initial device code exchange; refreshes keep the one
// issued first.
type OAuthToken struct {
	// AccessToken is the bearer token presented to the API.
	AccessToken string `json:"access_token"`
	// TokenType is the authorization scheme, normally "Bearer".
	TokenType string `json:"token_type"`
	// RefreshToken is the long-lived token used to mint access tokens.
	RefreshToken string `json:"refresh_token"`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
	// Scope is the granted access scope.
	Scope string `json:"scope"`
}

// OAuthCredential authorizes requests with a bearer token from the device
// code flow.
type OAuthCredential struct {
	// token holds the current token material.
	token OAuthToken
	// expiresAt is the instant the access token stops being trusted,
	// already shortened by the safety margin.
	expiresAt time.Time
}

// NewOAuthCredential builds a bearer credential from stored token material.
// issuedAt is the instant the token response was received.
func NewOAuthCredential(token OAuthToken, issuedAt time.Time) *OAuthCredential {
	return &OAuthCredential{
		token:     token,
		expiresAt: issuedAt.Add(time.Duration(token.ExpiresIn)*time.Second - oauthExpiryMargin),
	}
}

// NewStoredOAuthCredential rebuilds a bearer credential from persisted
// token material and its stored expiry instant. A zero expiresAt makes the
// credential refresh before its first use.
func NewStoredOAuthCredential(token OAuthToken, expiresAt time.Time) *OAuthCredential {
	return &OAuthCredential{token: token, expiresAt: expiresAt}
}

func (o *OAuthCredential) apply(req *http.Request, now time.Time) error {
	req.Header.Set("Authorization", o.token.TokenType+" "+o.token.AccessToken)
	req.Header.Set("X-Origin", originURL)
	req.Header.Set("X-Goog-Request-Time", fmt.Sprintf("%d", now.Unix()))

	return nil
}

func (o *OAuthCredential) expired(now time.Time) bool {
	return !now.Before(o.expiresAt)
}

func (o *OAuthCredential) mode() string {
	return "oauth"
}

// Token returns the credential's current token material, for persistence.
func (o *OAuthCredential) Token() OAuthToken {
	return o.token
}

// ExpiresAt returns the instant the access token stops being trusted.
func (o *OAuthCredential) ExpiresAt() time.Time {
	return o.expiresAt
}
