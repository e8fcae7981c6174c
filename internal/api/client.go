// Package api provides a client for the Genesys Cloud OAuth login service.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// tokenPath is the client-credentials endpoint under the login host
const tokenPath = "/oauth/token"

// ErrUnauthorized is returned when the login service rejects the client.
var ErrUnauthorized = errors.New("client credentials rejected")

// Client talks to a region's login host.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// TokenInfo describes an issued token. The token itself is not kept.
type TokenInfo struct {
	TokenType string
	Expiry    time.Time
}

// NewClient creates a new client for the given login URL,
// e.g. https://login.mypurecloud.com.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// VerifyCredentials requests a token with the client-credentials grant.
// The client ID and secret are sent with HTTP basic auth.
func (c *Client) VerifyCredentials(ctx context.Context, clientID, clientSecret string) (*TokenInfo, error) {
	url := c.BaseURL + tokenPath
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     url,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient)
	tok, err := cfg.Token(ctx)
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) {
			return nil, parseRetrieveError(rErr)
		}
		return nil, formatConnectionError(err, url)
	}

	return &TokenInfo{
		TokenType: tok.TokenType,
		Expiry:    tok.Expiry,
	}, nil
}

// parseRetrieveError maps a token endpoint error response to an error.
func parseRetrieveError(rErr *oauth2.RetrieveError) error {
	status := 0
	if rErr.Response != nil {
		status = rErr.Response.StatusCode
	}

	if status == http.StatusUnauthorized || rErr.ErrorCode == "invalid_client" {
		return fmt.Errorf("%w (%d): %s", ErrUnauthorized, status, describe(rErr))
	}
	return fmt.Errorf("login error (%d): %s", status, describe(rErr))
}

func describe(rErr *oauth2.RetrieveError) string {
	if rErr.ErrorCode != "" {
		if rErr.ErrorDescription != "" {
			return rErr.ErrorCode + ": " + rErr.ErrorDescription
		}
		return rErr.ErrorCode
	}
	return strings.TrimSpace(string(rErr.Body))
}

// formatConnectionError provides user-friendly error messages for common connection issues.
func formatConnectionError(err error, url string) error {
	if err == nil {
		return nil
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("cannot connect to login service at %s\n\nCheck the region and your network connection.", url)
	}

	if strings.Contains(err.Error(), "connection refused") {
		return fmt.Errorf("cannot connect to login service at %s (connection refused)", url)
	}

	if strings.Contains(err.Error(), "no such host") {
		return fmt.Errorf("cannot resolve %s\n\nCheck that the region is correct.", url)
	}

	if strings.Contains(err.Error(), "timeout") {
		return fmt.Errorf("connection timeout to %s\n\nThe login service did not respond in time.", url)
	}

	if strings.Contains(err.Error(), "tls") || strings.Contains(err.Error(), "certificate") {
		return fmt.Errorf("TLS/SSL error connecting to %s: %w", url, err)
	}

	return fmt.Errorf("connection error: %w", err)
}
