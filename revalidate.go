package website

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// revalidateRequest is the webhook payload the CMS sends after publishing,
// updating, or deleting a post.
type revalidateRequest struct {
	Secret string `json:"secret"`
	Slug   string `json:"slug"`
	Action string `json:"action"`
}

// handleRevalidate drops cached content for one slug so the next request
// refetches it. Authenticated by the shared secret in the request body; an
// unset secret disables the endpoint entirely.
func (a *App) handleRevalidate(c echo.Context) error {
	if a.Config.RevalidateSecret == "" {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "revalidation not configured",
		})
	}

	var req revalidateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid payload",
		})
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(a.Config.RevalidateSecret)) != 1 {
		a.Log.Warn("revalidate rejected", zap.String("ip", c.RealIP()))
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "invalid secret",
		})
	}

	if req.Slug == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "slug is required",
		})
	}
	switch req.Action {
	case "post", "update", "delete":
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "unknown action",
		})
	}

	a.Cache.Invalidate(req.Slug)
	a.Log.Info("revalidated", zap.String("slug", req.Slug), zap.String("action", req.Action))

	return c.JSON(http.StatusOK, map[string]any{
		"revalidated": true,
		"slug":        req.Slug,
		"action":      req.Action,
	})
}
