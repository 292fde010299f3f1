// Package website is the Nortela corporate site server: a multilingual
// marketing site (home, about, blog, case studies, contact) rendered server
// side with Echo and templ. Blog content comes from a headless WordPress
// instance through the cms package; the contact form relays through the mail
// package; a secret-protected revalidation endpoint invalidates the content
// cache when the CMS publishes.
package website

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nortela/website/cms"
	"github.com/nortela/website/mail"
)

// App wires together the Echo server, content client, cache, submission
// store, mail relay, and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Content *cms.Client
	Cache   *ContentCache
	Store   *Store
	Mail    *mail.Relay
	Log     *zap.Logger

	submitLimiter *SubmitLimiter
	customRoutes  []func(*App)
	staticDir     string
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Log:       zap.NewNop(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, content client, cache, middleware, and routes,
// then starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("website: SessionSecret is required")
	}
	if a.Config.ContentAPIURL == "" {
		return fmt.Errorf("website: ContentAPIURL is required")
	}

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("website: init logger: %w", err)
	}
	a.Log = log
	defer func() { _ = log.Sync() }()

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("website: init store: %w", err)
	}
	a.Store = store

	a.Content = cms.New(a.Config.ContentAPIURL, cms.WithLogger(log.Named("cms")))
	a.Cache = NewContentCache(a.Content, a.Config.ContentCacheTTL)
	a.Mail = mail.NewRelay(a.Config.Mail, mail.WithLogger(log.Named("mail")))
	a.submitLimiter = NewSubmitLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded client script (mobile nav, locale switcher, filter clicks),
	// served alongside the user's static dir.
	e.GET("/public/site.js", handleEmbeddedAsset)

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handleBlogPost)
	e.GET("/cases/", a.handleCases)
	e.GET("/cases/:slug/", a.handleCase)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)

	e.POST("/locale/", a.handleLocaleSwitch)

	e.POST("/api/revalidate", a.handleRevalidate)
	e.GET("/media/thumb", a.handleThumb)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
