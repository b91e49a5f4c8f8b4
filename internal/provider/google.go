// Package provider implements the external identity-provider capability
// consumed by the auth store. The only operation is an interactive
// Google sign-in; its outcome is either an identity payload or a failure
// tagged with one of the sentinel reasons from the domain errors
// package.
package provider

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	apperrors "taskboard/internal/domain/errors"
	"taskboard/internal/store"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// The source app ran in a browser and used a sign-in popup; in a
// terminal the interactive step becomes an auth-code paste flow. The
// observable contract is the same: an identity payload or a tagged
// failure.
type Google struct {
	conf        *oauth2.Config
	in          io.Reader
	out         io.Writer
	userInfoURL string
}

func NewGoogle(clientID, clientSecret, redirectURL string) *Google {
	return &Google{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     endpoints.Google,
		},
		in:          os.Stdin,
		out:         os.Stderr,
		userInfoURL: defaultUserInfoURL,
	}
}

type userInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// SignIn runs the interactive flow: print the consent URL, read the
// verification code, exchange it and fetch the user's profile. An empty
// code counts as the user backing out.
func (g *Google) SignIn(ctx context.Context) (*store.Identity, error) {
	url := g.conf.AuthCodeURL("state", oauth2.AccessTypeOnline)
	fmt.Fprintf(g.out, "Open the following URL in a browser and authorize the application:\n\n  %s\n\nVerification code: ", url)

	code, err := g.readCode(ctx)
	if err != nil {
		return nil, err
	}

	token, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return nil, mapOAuthError(ctx, err)
	}

	return g.fetchIdentity(ctx, g.conf.Client(ctx, token))
}

func (g *Google) readCode(ctx context.Context) (string, error) {
	scanner := bufio.NewScanner(g.in)
	if !scanner.Scan() {
		return "", fmt.Errorf("%w: no verification code entered", apperrors.ErrSignInCancelled)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrSignInCancelled, err)
	}

	code := strings.TrimSpace(scanner.Text())
	if code == "" {
		return "", fmt.Errorf("%w: no verification code entered", apperrors.ErrSignInCancelled)
	}
	return code, nil
}

func (g *Google) fetchIdentity(ctx context.Context, client *http.Client) (*store.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderFailure, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, mapOAuthError(ctx, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: userinfo returned status %d", apperrors.ErrDomainNotAuthorized, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: userinfo returned status %d", apperrors.ErrProviderFailure, resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderFailure, err)
	}

	return &store.Identity{
		ID:          info.ID,
		DisplayName: info.Name,
		Email:       info.Email,
		PhotoURL:    info.Picture,
	}, nil
}

// mapOAuthError tags a transport error with the closest sentinel reason.
// The OAuth error codes arrive as substrings of the wrapped error text;
// access_denied is the consent screen's cancel button.
func mapOAuthError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSignInCancelled, ctx.Err())
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "access_denied"):
		return fmt.Errorf("%w: %v", apperrors.ErrSignInCancelled, err)
	case strings.Contains(msg, "redirect_uri_mismatch"),
		strings.Contains(msg, "unauthorized_client"),
		strings.Contains(msg, "invalid_client"):
		return fmt.Errorf("%w: %v", apperrors.ErrDomainNotAuthorized, err)
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrProviderFailure, err)
	}
}
