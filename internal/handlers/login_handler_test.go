package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/samuraihq/samurai-backend/internal/config"
	"github.com/samuraihq/samurai-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeProvider struct {
	claims      services.GoogleClaims
	raw         []byte
	exchangeErr error
	userinfoErr error

	exchangedCode string
}

func (f *fakeProvider) AuthCodeURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + url.QueryEscape(state)
}

func (f *fakeProvider) Exchange(_ context.Context, code string) (*oauth2.Token, error) {
	f.exchangedCode = code
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}
	return &oauth2.Token{AccessToken: "test-token"}, nil
}

func (f *fakeProvider) Userinfo(_ context.Context, _ *oauth2.Token) (services.GoogleClaims, []byte, error) {
	if f.userinfoErr != nil {
		return services.GoogleClaims{}, nil, f.userinfoErr
	}
	return f.claims, f.raw, nil
}

func newLoginApp(t *testing.T, provider *fakeProvider) (*fiber.App, *services.StateSigner) {
	t.Helper()
	cfg := &config.Config{AfterLoginRedirectURI: "https://app.example.com/welcome"}
	signer := services.NewStateSigner("test-secret")
	handler := NewLoginHandler(provider, signer, session.New(), cfg)

	app := fiber.New()
	app.Get("/login", handler.Login)
	app.Get("/auth/google", handler.GoogleCallback)
	return app, signer
}

func claimsFromJSON(t *testing.T, raw string) (services.GoogleClaims, []byte) {
	t.Helper()
	var claims services.GoogleClaims
	require.NoError(t, json.Unmarshal([]byte(raw), &claims))
	return claims, []byte(raw)
}

func TestLoginRedirectsToProvider(t *testing.T) {
	app, signer := newLoginApp(t, &fakeProvider{})

	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTemporaryRedirect, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", loc.Host)

	// The state parameter must verify with the signer that issued it.
	assert.NoError(t, signer.Verify(loc.Query().Get("state")))
}

func TestCallbackRedirectsWithClaims(t *testing.T) {
	provider := &fakeProvider{}
	provider.claims, provider.raw = claimsFromJSON(t, `{"id":"1","email":"u@x.com","name":"","picture":"p"}`)
	app, signer := newLoginApp(t, provider)

	state, err := signer.Sign()
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/auth/google?code=abc&state="+url.QueryEscape(state), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "abc", provider.exchangedCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "app.example.com", loc.Host)
	assert.Equal(t, "/welcome", loc.Path)

	q := loc.Query()
	assert.Equal(t, "1", q.Get("user_id"))
	assert.Equal(t, "u@x.com", q.Get("user_email"))
	assert.Equal(t, "p", q.Get("user_picture"))

	// Empty or absent claims are omitted from the query string entirely.
	for _, key := range []string{"user_name", "user_given_name", "user_family_name", "user_hd", "user_verified_email"} {
		assert.False(t, q.Has(key), "unexpected query key %s", key)
	}
}

func TestCallbackSerializesVerifiedEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "verified", raw: `{"id":"1","email":"u@x.com","verified_email":true}`, want: "true"},
		{name: "unverified", raw: `{"id":"1","email":"u@x.com","verified_email":false}`, want: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			provider.claims, provider.raw = claimsFromJSON(t, tt.raw)
			app, signer := newLoginApp(t, provider)

			state, err := signer.Sign()
			require.NoError(t, err)

			resp, err := app.Test(httptest.NewRequest("GET", "/auth/google?code=abc&state="+url.QueryEscape(state), nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusFound, resp.StatusCode)

			loc, err := url.Parse(resp.Header.Get("Location"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.Query().Get("user_verified_email"))
		})
	}
}

func TestCallbackEmptyClaims(t *testing.T) {
	provider := &fakeProvider{}
	provider.claims, provider.raw = claimsFromJSON(t, `{}`)
	app, signer := newLoginApp(t, provider)

	state, err := signer.Sign()
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/auth/google?code=abc&state="+url.QueryEscape(state), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Authentication failed", body["error"])
}

func TestCallbackRejectsBadState(t *testing.T) {
	app, _ := newLoginApp(t, &fakeProvider{})

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing_state", query: "code=abc"},
		{name: "garbage_state", query: "code=abc&state=not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", "/auth/google?"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCallbackProviderFailures(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
	}{
		{name: "exchange_fails", provider: &fakeProvider{exchangeErr: errors.New("boom")}},
		{name: "userinfo_fails", provider: &fakeProvider{userinfoErr: errors.New("boom")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, signer := newLoginApp(t, tt.provider)

			state, err := signer.Sign()
			require.NoError(t, err)

			resp, err := app.Test(httptest.NewRequest("GET", "/auth/google?code=abc&state="+url.QueryEscape(state), nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
		})
	}
}
