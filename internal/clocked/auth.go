package clocked

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
)

// AuthStyle selects how the API key is presented to the service.
type AuthStyle string

const (
	// AuthHeader sends the key in an "apikey" header (clocked.io).
	AuthHeader AuthStyle = "header"
	// AuthCookie sends the key as an "apikey" cookie (time.qpgc.org).
	AuthCookie AuthStyle = "cookie"
	// AuthBearer sends the key as an OAuth2 bearer token.
	AuthBearer AuthStyle = "bearer"
)

// ParseAuthStyle validates an auth style name.
func ParseAuthStyle(s string) (AuthStyle, error) {
	switch AuthStyle(s) {
	case AuthHeader, AuthCookie, AuthBearer:
		return AuthStyle(s), nil
	}
	return "", fmt.Errorf("unknown auth style %q", s)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// LoadAPIKey reads the API key dotfile. A missing file is an error the caller
// is expected to treat as fatal.
func LoadAPIKey(path string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(expanded)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("API key file not found: %s", expanded)
	}
	if err != nil {
		return "", fmt.Errorf("reading API key file: %w", err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("API key file is empty: %s", expanded)
	}
	return key, nil
}

// authorizer decorates outgoing requests with credentials.
type authorizer func(req *http.Request)

func keyAuthorizer(style AuthStyle, key string) authorizer {
	switch style {
	case AuthCookie:
		return func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: "apikey", Value: key})
		}
	case AuthBearer:
		// The oauth2 transport sets the Authorization header.
		return func(*http.Request) {}
	default:
		return func(req *http.Request) {
			req.Header.Set("apikey", key)
		}
	}
}

// bearerHTTPClient returns an HTTP client that presents key as a static
// OAuth2 access token.
func bearerHTTPClient(ctx context.Context, key string) *http.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: key, TokenType: "Bearer"})
	return oauth2.NewClient(ctx, ts)
}
