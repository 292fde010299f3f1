// Package i18n resolves the active locale for a request and holds the
// translated site copy. The locale lives in a long-lived cookie; resolution
// is a pure function of the cookie value so server rendering and the client
// switcher can never disagree. Switching locale always goes through one
// persist-and-reload round trip, never an in-place swap.
package i18n

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Locale is one of the closed set of supported language tags.
type Locale string

const (
	PT Locale = "pt"
	EN Locale = "en"
	ES Locale = "es"

	// Default is used whenever the stored value is missing or unsupported.
	Default = PT
)

// CookieName is the cookie carrying the visitor's locale preference.
const CookieName = "nortela_locale"

// cookieMaxAge keeps the preference for about a year.
const cookieMaxAge = 365 * 24 * 60 * 60

// Supported returns the closed set of locales in display order.
func Supported() []Locale {
	return []Locale{PT, EN, ES}
}

// Resolve maps a raw cookie value onto a supported Locale. It is total: any
// value outside the supported set, including the empty string, resolves to
// the default. No error path exists.
func Resolve(cookieValue string) Locale {
	switch Locale(cookieValue) {
	case PT, EN, ES:
		return Locale(cookieValue)
	}
	return Default
}

const contextKey = "nortela.locale"

// Middleware resolves the locale once per request from the cookie and stores
// it on the echo context for handlers to read.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			value := ""
			if cookie, err := c.Cookie(CookieName); err == nil {
				value = cookie.Value
			}
			c.Set(contextKey, Resolve(value))
			return next(c)
		}
	}
}

// FromContext returns the locale resolved by Middleware, or the default when
// the middleware did not run (tests, error handlers).
func FromContext(c echo.Context) Locale {
	if loc, ok := c.Get(contextKey).(Locale); ok {
		return loc
	}
	return Default
}

// Persist writes the locale cookie. The cookie is readable by the client
// script so the switcher can highlight the active language; the server-side
// resolver remains the single source of truth for rendering.
func Persist(c echo.Context, loc Locale, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    string(loc),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}
