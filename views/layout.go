package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/nortela/website/i18n"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// page wraps a body renderer in the shared document shell: head with SEO
// metadata, header with navigation and the locale switcher, flash banner,
// and footer.
func page(p Page, body func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeHead(&buf, p)
		writeHeader(&buf, p)
		if p.Flash.Msg != "" {
			fmt.Fprintf(&buf, `<div class="flash flash-%s" role="status">%s</div>`, esc(p.Flash.Kind), esc(p.Flash.Msg))
		}
		buf.WriteString(`<main>`)
		body(&buf)
		buf.WriteString(`</main>`)
		writeFooter(&buf, p)
		buf.WriteString(`</body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeHead(buf *bytes.Buffer, p Page) {
	title := p.Meta.Title
	if title == "" {
		title = p.Site.Name
	} else {
		title = title + " | " + p.Site.Name
	}
	desc := p.Meta.Description
	if desc == "" {
		desc = p.Site.Description
	}
	ogType := p.Meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	fmt.Fprintf(buf, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`, p.Locale)
	fmt.Fprintf(buf, `<title>%s</title>`, esc(title))
	fmt.Fprintf(buf, `<meta name="description" content="%s">`, esc(desc))
	if p.Meta.URL != "" {
		fmt.Fprintf(buf, `<link rel="canonical" href="%s">`, esc(p.Meta.URL))
		fmt.Fprintf(buf, `<meta property="og:url" content="%s">`, esc(p.Meta.URL))
	}
	fmt.Fprintf(buf, `<meta property="og:title" content="%s">`, esc(title))
	fmt.Fprintf(buf, `<meta property="og:description" content="%s">`, esc(desc))
	fmt.Fprintf(buf, `<meta property="og:type" content="%s">`, esc(ogType))
	fmt.Fprintf(buf, `<meta property="og:site_name" content="%s">`, esc(p.Site.Name))
	if p.Meta.Image != "" {
		fmt.Fprintf(buf, `<meta property="og:image" content="%s">`, esc(p.Meta.Image))
	}
	if p.JSONLD != "" {
		fmt.Fprintf(buf, `<script type="application/ld+json">%s</script>`, p.JSONLD)
	}
	buf.WriteString(`<link rel="stylesheet" href="/public/styles.css">`)
	buf.WriteString(`<script src="/public/site.js" defer></script>`)
	buf.WriteString(`</head><body>`)
}

func writeHeader(buf *bytes.Buffer, p Page) {
	buf.WriteString(`<header class="site-header"><a class="brand" href="/">`)
	buf.WriteString(esc(p.Site.Name))
	buf.WriteString(`</a><button class="nav-toggle" aria-label="menu">&#9776;</button><nav class="site-nav">`)
	fmt.Fprintf(buf, `<a href="/">%s</a>`, esc(p.T.Nav.Home))
	fmt.Fprintf(buf, `<a href="/about/">%s</a>`, esc(p.T.Nav.About))
	fmt.Fprintf(buf, `<a href="/blog/">%s</a>`, esc(p.T.Nav.Blog))
	fmt.Fprintf(buf, `<a href="/cases/">%s</a>`, esc(p.T.Nav.Cases))
	fmt.Fprintf(buf, `<a href="/contact/">%s</a>`, esc(p.T.Nav.Contact))
	buf.WriteString(`</nav>`)
	writeLocaleSwitcher(buf, p)
	buf.WriteString(`</header>`)
}

// writeLocaleSwitcher emits one form per locale. Switching always POSTs and
// reloads the current route server side; there is no client-side re-render.
func writeLocaleSwitcher(buf *bytes.Buffer, p Page) {
	buf.WriteString(`<div class="locale-switcher">`)
	for _, loc := range i18n.Supported() {
		active := ""
		if loc == p.Locale {
			active = ` class="active"`
		}
		fmt.Fprintf(buf, `<form method="post" action="/locale/"><input type="hidden" name="_csrf" value="%s"><input type="hidden" name="locale" value="%s"><button type="submit"%s>%s</button></form>`,
			esc(p.CSRF), loc, active, loc)
	}
	buf.WriteString(`</div>`)
}

func writeFooter(buf *bytes.Buffer, p Page) {
	fmt.Fprintf(buf, `<footer class="site-footer"><p>%s</p><p>&copy; %d %s. %s</p></footer>`,
		esc(p.T.Footer.Tagline), time.Now().Year(), esc(p.Site.Name), esc(p.T.Footer.Rights))
}

// formatDate renders a publication date in the locale's conventional shape.
func formatDate(loc i18n.Locale, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if loc == i18n.EN {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("02/01/2006")
}
