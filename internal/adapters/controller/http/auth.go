package http

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventfindr/notifier/internal/domain/entity"
)

// authCallback handles GET /auth/callback. Every failure path lands on the
// login page with a human-readable message in the query string; internal
// detail stays in the logs.
func (h *Handler) authCallback(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorf("panic in auth callback: %v", r)
			h.redirectWithError(c, "An unexpected error occurred")
		}
	}()

	if errParam := c.Query("error"); errParam != "" {
		description := c.Query("error_description")
		if description == "" {
			description = errParam
		}
		h.logger.Warnf("auth callback received provider error: %s (%s)", errParam, description)
		h.redirectWithError(c, description)
		return
	}

	code := c.Query("code")
	if code == "" {
		h.redirectWithError(c, "No authorization code provided")
		return
	}

	session, err := h.identity.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		h.logger.Errorf("code exchange failed: %v", err)
		h.redirectWithError(c, err.Error())
		return
	}

	// best-effort: the session is valid even if the local profile copy fails
	profile := &entity.Profile{
		ID:        session.User.ID,
		Email:     session.User.Email,
		FullName:  session.User.Metadata["full_name"],
		AvatarURL: session.User.Metadata["avatar_url"],
		UpdatedAt: time.Now(),
	}
	if _, err := h.profiles.Upsert(c.Request.Context(), profile); err != nil {
		h.logger.Errorf("failed to upsert profile %s: %v", session.User.ID, err)
	}

	c.Redirect(http.StatusFound, h.cfg.SiteURL+"/")
}

func (h *Handler) redirectWithError(c *gin.Context, message string) {
	c.Redirect(http.StatusFound, fmt.Sprintf("%s/login?error=%s", h.cfg.SiteURL, url.QueryEscape(message)))
}
