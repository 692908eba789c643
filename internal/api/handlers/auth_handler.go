package handlers

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"

	config "github.com/influenceos/agent-api/configs"
	"github.com/influenceos/agent-api/internal/models"
	"github.com/influenceos/agent-api/internal/service"
)

const (
	providerLinkedin = "linkedin"
	stateCookieName  = "oauth_state"
)

type AuthHandler struct {
	s   service.AuthService
	cfg config.Config
}

func NewAuthHandler(cfg config.Config, s service.AuthService) *AuthHandler {
	return &AuthHandler{s: s, cfg: cfg}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if c.Params("provider") != providerLinkedin {
		return models.RespondWithError(c, models.NewNotFoundError("Provider", c.Params("provider")))
	}

	state, err := gonanoid.New()
	if err != nil {
		return models.RespondWithError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     stateCookieName,
		Value:    state,
		HTTPOnly: true,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
	})

	return c.Redirect(h.s.LoginURL(state))
}

func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	if c.Params("provider") != providerLinkedin {
		return models.RespondWithError(c, models.NewNotFoundError("Provider", c.Params("provider")))
	}

	// The state cookie may not survive cross-site redirects in every browser
	// setup; it is verified whenever it did.
	if state := c.Cookies(stateCookieName); state != "" && state != c.Query("state") {
		return models.RespondWithError(c, models.NewInvalidRequestError("state parameter mismatch"))
	}

	userID, err := h.s.LoginCallback(c.Context(), c.Query("code"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	c.ClearCookie(stateCookieName)
	return c.Redirect(fmt.Sprintf("%s?user_id=%s", h.cfg.FrontendDashboardURL, url.QueryEscape(userID)))
}
