package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/nortela/website/markdown"
)

// About renders the static company page from the locale bundle.
func About(p Page) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		fmt.Fprintf(buf, `<h1>%s</h1>`, esc(p.T.About.Title))
		fmt.Fprintf(buf, `<p class="lead">%s</p>`, esc(p.T.About.Mission))
		fmt.Fprintf(buf, `<p>%s</p>`, esc(p.T.About.Values))
	})
}

// Cases renders the success-story index.
func Cases(p Page, cases []CaseStudy) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		fmt.Fprintf(buf, `<h1>%s</h1><div class="case-grid">`, esc(p.T.Cases.Title))
		for _, cs := range cases {
			writeCaseCard(buf, p, cs)
		}
		buf.WriteString(`</div>`)
	})
}

// Case renders one success story; the body is the site markdown dialect.
func Case(p Page, cs CaseStudy) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="case">`)
		fmt.Fprintf(buf, `<h1>%s</h1>`, esc(cs.Title))
		fmt.Fprintf(buf, `<p class="meta">%s &middot; %s: %s &middot; %s: %s</p>`,
			esc(cs.Client), esc(p.T.Cases.Sector), esc(cs.Sector), esc(p.T.Cases.Year), esc(cs.Year))
		buf.WriteString(`<div class="case-body">`)
		markdown.RenderMarkdown(buf, cs.Body)
		buf.WriteString(`</div></article>`)
	})
}

// Contact renders the contact form.
func Contact(p Page) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		fmt.Fprintf(buf, `<h1>%s</h1>`, esc(p.T.Contact.Title))
		buf.WriteString(`<form class="contact-form" method="post" action="/contact/">`)
		fmt.Fprintf(buf, `<input type="hidden" name="_csrf" value="%s">`, esc(p.CSRF))
		field(buf, "name", "text", p.T.Contact.Name, true)
		field(buf, "email", "email", p.T.Contact.Email, true)
		field(buf, "phone", "tel", p.T.Contact.Phone, false)
		field(buf, "company", "text", p.T.Contact.Company, false)
		field(buf, "subject", "text", p.T.Contact.Subject, false)
		fmt.Fprintf(buf, `<label>%s<textarea name="message" rows="6" required></textarea></label>`, esc(p.T.Contact.Message))
		fmt.Fprintf(buf, `<button type="submit">%s</button></form>`, esc(p.T.Contact.Send))
	})
}

func field(buf *bytes.Buffer, name, typ, label string, required bool) {
	req := ""
	if required {
		req = " required"
	}
	fmt.Fprintf(buf, `<label>%s<input type="%s" name="%s"%s></label>`, esc(label), typ, name, req)
}

// NotFound renders the localized 404 page.
func NotFound(p Page) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		fmt.Fprintf(buf, `<div class="error-page"><h1>%s</h1><p>%s</p><a href="/">%s</a></div>`,
			esc(p.T.Errors.NotFoundTitle), esc(p.T.Errors.NotFoundBody), esc(p.T.Errors.BackHome))
	})
}

// ServerError renders the localized 500 page.
func ServerError(p Page) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		fmt.Fprintf(buf, `<div class="error-page"><h1>%s</h1><p>%s</p><a href="/">%s</a></div>`,
			esc(p.T.Errors.ServerTitle), esc(p.T.Errors.ServerBody), esc(p.T.Errors.BackHome))
	})
}
