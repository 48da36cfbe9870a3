package handlers

import (
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/samuraihq/samurai-backend/internal/config"
	"github.com/samuraihq/samurai-backend/internal/dto"
	"github.com/samuraihq/samurai-backend/internal/services"
)

// LoginHandler drives the Google authorization-code flow and hands the
// resulting identity off to the frontend.
type LoginHandler struct {
	provider      services.OAuthProvider
	state         *services.StateSigner
	sessions      *session.Store
	afterLoginURI string
}

func NewLoginHandler(provider services.OAuthProvider, state *services.StateSigner, sessions *session.Store, cfg *config.Config) *LoginHandler {
	return &LoginHandler{
		provider:      provider,
		state:         state,
		sessions:      sessions,
		afterLoginURI: cfg.AfterLoginRedirectURI,
	}
}

// Login handles GET /login - redirects the user to Google's consent screen.
func (h *LoginHandler) Login(c *fiber.Ctx) error {
	state, err := h.state.Sign()
	if err != nil {
		slog.Error("failed to sign oauth state", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to start login",
		})
	}
	return c.Redirect(h.provider.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback handles GET /auth/google - Google's redirect back to us.
// On success the claims are kept in the server-side session and the user
// is redirected to the frontend with the claims as query parameters.
func (h *LoginHandler) GoogleCallback(c *fiber.Ctx) error {
	if err := h.state.Verify(c.Query("state")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid or expired state",
		})
	}

	ctx := c.UserContext()
	token, err := h.provider.Exchange(ctx, c.Query("code"))
	if err != nil {
		slog.Error("google oauth token exchange failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Login failed - please try again",
		})
	}

	claims, raw, err := h.provider.Userinfo(ctx, token)
	if err != nil {
		slog.Error("google oauth userinfo fetch failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Login failed - please try again",
		})
	}

	if claims.Empty() {
		// Body shape kept for frontend compatibility.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication failed"})
	}

	sess, err := h.sessions.Get(c)
	if err == nil {
		sess.Set("user", string(raw))
		if err := sess.Save(); err != nil {
			slog.Error("failed to save session", "error", err)
		}
	} else {
		slog.Error("failed to open session", "error", err)
	}

	return c.Redirect(h.afterLoginRedirect(claims), fiber.StatusFound)
}

// afterLoginRedirect builds the frontend handoff URL. Claims with empty
// values are omitted from the query string entirely.
func (h *LoginHandler) afterLoginRedirect(claims services.GoogleClaims) string {
	q := url.Values{}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("user_id", claims.ID)
	set("user_email", claims.Email)
	set("user_name", claims.Name)
	set("user_picture", claims.Picture)
	set("user_given_name", claims.GivenName)
	set("user_family_name", claims.FamilyName)
	set("user_hd", claims.HD)
	if claims.VerifiedEmail != nil {
		q.Set("user_verified_email", strconv.FormatBool(*claims.VerifiedEmail))
	}

	target := h.afterLoginURI
	if len(q) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + q.Encode()
	}
	return target
}
