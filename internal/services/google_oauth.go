package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/samuraihq/samurai-backend/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleClaims are the identity attributes returned by Google's userinfo
// endpoint. VerifiedEmail is a pointer so an absent claim is
// distinguishable from a false one.
type GoogleClaims struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail *bool  `json:"verified_email,omitempty"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	HD            string `json:"hd"`
}

func (c GoogleClaims) Empty() bool {
	return c.ID == "" && c.Email == ""
}

// OAuthProvider abstracts the identity provider so the login handler can
// be exercised against a fake in tests.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Userinfo(ctx context.Context, token *oauth2.Token) (GoogleClaims, []byte, error)
}

// GoogleOAuth performs the authorization-code flow against Google.
type GoogleOAuth struct {
	cfg *oauth2.Config
}

func NewGoogleOAuth(cfg *config.Config) *GoogleOAuth {
	return &GoogleOAuth{
		cfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"email", "profile"},
			RedirectURL:  cfg.GoogleRedirectURI,
		},
	}
}

func (g *GoogleOAuth) AuthCodeURL(state string) string {
	return g.cfg.AuthCodeURL(state)
}

func (g *GoogleOAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return g.cfg.Exchange(ctx, code)
}

// Userinfo fetches the claims for the given access token. The raw
// response body is returned alongside the decoded claims so callers can
// retain the provider payload verbatim.
func (g *GoogleOAuth) Userinfo(ctx context.Context, token *oauth2.Token) (GoogleClaims, []byte, error) {
	client := g.cfg.Client(ctx, token)
	resp, err := client.Get(userinfoURL)
	if err != nil {
		return GoogleClaims{}, nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleClaims{}, nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return GoogleClaims{}, nil, fmt.Errorf("failed to read userinfo response: %w", err)
	}

	var claims GoogleClaims
	if err := json.Unmarshal(body, &claims); err != nil {
		return GoogleClaims{}, nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	return claims, body, nil
}
