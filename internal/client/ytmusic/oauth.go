package ytmusic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrOAuthPending is returned while polling the token endpoint before the
// user has approved the device code.
var ErrOAuthPending = errors.New("device authorization pending")

// DeviceCode is the token endpoint's answer to a device code request.
// UserCode and VerificationURL are shown to the user; DeviceCode is polled
// until the user approves.
type DeviceCode struct {
	// DeviceCode is the opaque code polled against the token endpoint.
	DeviceCode string `json:"device_code"`
	// UserCode is the short code the user types on the verification page.
	UserCode string `json:"user_code"`
	// VerificationURL is the page where the user enters UserCode.
	VerificationURL string `json:"verification_url"`
	// ExpiresIn is the code lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
	// Interval is the minimum polling interval in seconds.
	Interval int64 `json:"interval"`
}

// oauthErrorResponse is the token endpoint's error payload.
type oauthErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

// RequestDeviceCode starts the device code flow and returns the code the
// user must approve.
func RequestDeviceCode(ctx context.Context, httpClient *http.Client) (*DeviceCode, error) {
	form := url.Values{
		"client_id": {oauthClientID},
		"scope":     {oauthScope},
	}

	var code DeviceCode
	if err := postOAuthForm(ctx, httpClient, oauthCodeURL, form, &code); err != nil {
		return nil, err
	}

	return &code, nil
}

// ExchangeDeviceCode polls the token endpoint for the token granted to a
// device code. It returns ErrOAuthPending until the user approves the code.
func ExchangeDeviceCode(ctx context.Context, httpClient *http.Client, deviceCode string) (*OAuthCredential, error) {
	form := url.Values{
		"client_id":     {oauthClientID},
		"client_secret": {oauthClientSecret},
		"grant_type":    {oauthDeviceGrantType},
		"code":          {deviceCode},
	}

	var token OAuthToken
	if err := postOAuthForm(ctx, httpClient, oauthTokenURL, form, &token); err != nil {
		return nil, err
	}

	return NewOAuthCredential(token, time.Now()), nil
}

// refreshAccessToken mints a fresh access token from a refresh token.
// The endpoint omits the refresh token from its response, so the original
// one is carried over into the new credential.
func refreshAccessToken(
	ctx context.Context,
	httpClient *http.Client,
	tokenURL string,
	refreshToken string,
	now time.Time,
) (*OAuthCredential, error) {
	form := url.Values{
		"client_id":     {oauthClientID},
		"client_secret": {oauthClientSecret},
		"grant_type":    {oauthRefreshGrantType},
		"refresh_token": {refreshToken},
	}

	var token OAuthToken
	if err := postOAuthForm(ctx, httpClient, tokenURL, form, &token); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthExpired, err)
	}

	if token.RefreshToken == "" {
		token.RefreshToken = refreshToken
	}

	return NewOAuthCredential(token, now), nil
}

// postOAuthForm posts a form to one of the OAuth endpoints and decodes the
// response into out.
func postOAuthForm(ctx context.Context, httpClient *http.Client, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build oauth request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read oauth response: %w", ErrTransport, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var oauthErr oauthErrorResponse
		if json.Unmarshal(body, &oauthErr) == nil && oauthErr.Error == "authorization_pending" {
			return ErrOAuthPending
		}

		if oauthErr.Error != "" {
			return fmt.Errorf("oauth endpoint refused request: %s (%s)", oauthErr.Error, oauthErr.Description)
		}

		return fmt.Errorf("oauth endpoint returned status %d", resp.StatusCode)
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode oauth response: %w", err)
	}

	return nil
}
