// Package views holds the templ components for every page of the site.
// Components are written by hand as templ.ComponentFunc values building HTML
// through a buffer; all visitor-facing copy comes from the i18n bundle on
// the Page, never from string literals here.
package views

import "github.com/nortela/website/i18n"

// SiteConfig holds the site-wide settings templates read.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image, optional
}

// Flash is a one-shot status banner from the previous request.
type Flash struct {
	Kind string // "ok" or "error"
	Msg  string
}

// Page bundles everything the layout needs for one render.
type Page struct {
	Site   SiteConfig
	Meta   PageMeta
	Locale i18n.Locale
	T      i18n.Copy
	CSRF   string
	Flash  Flash
	JSONLD string
}

// CaseStudy is one locally-authored success story. The body is the site's
// markdown dialect, rendered by the markdown package.
type CaseStudy struct {
	Slug    string
	Client  string
	Sector  string
	Year    string
	Title   string
	Excerpt string
	Body    string
}
