package website

import (
	"time"

	"github.com/nortela/website/mail"
)

// SiteConfig holds all configuration for the site server.
type SiteConfig struct {
	Name        string // Site name (default "Nortela")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path for the contact submission log (default "data/site.db")

	ContentAPIURL string // WordPress REST API root, e.g. https://cms.nortela.com/wp-json/wp/v2

	SessionSecret    string // Required: session encryption secret
	RevalidateSecret string // Shared secret for /api/revalidate; empty disables the endpoint
	CookieSecure     bool   // Set true for HTTPS

	Mail mail.RelayConfig // Transactional email provider; empty = accept-and-log mode

	ContentCacheTTL time.Duration // Content cache TTL (default 5min)
	BlogPageSize    int           // Articles per listing page (default 12)

	MediaCacheDir string // Thumbnail cache directory (default "data/mediacache")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Nortela"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.ContentCacheTTL == 0 {
		c.ContentCacheTTL = 5 * time.Minute
	}
	if c.BlogPageSize == 0 {
		c.BlogPageSize = 12
	}
	if c.MediaCacheDir == "" {
		c.MediaCacheDir = "data/mediacache"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
