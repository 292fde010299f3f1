package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/nortela/website/cms"
)

// Home renders the landing page: hero, featured-article carousel, and a
// teaser row of case studies.
func Home(p Page, featured []cms.Article, cases []CaseStudy) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="hero"><h1>`)
		buf.WriteString(esc(p.T.Home.HeroTitle))
		buf.WriteString(`</h1><p>`)
		buf.WriteString(esc(p.T.Home.HeroSubtitle))
		buf.WriteString(`</p></section>`)

		if len(featured) > 0 {
			fmt.Fprintf(buf, `<section class="featured"><h2>%s</h2><div class="carousel" data-carousel>`, esc(p.T.Home.FeaturedHead))
			for i, art := range featured {
				cls := "slide"
				if i == 0 {
					cls = "slide active"
				}
				fmt.Fprintf(buf, `<article class="%s">`, cls)
				writeArticleCard(buf, p, art)
				buf.WriteString(`</article>`)
			}
			buf.WriteString(`</div></section>`)
		}

		if len(cases) > 0 {
			fmt.Fprintf(buf, `<section class="cases-teaser"><h2>%s</h2><div class="case-grid">`, esc(p.T.Home.CasesHead))
			for _, cs := range cases {
				writeCaseCard(buf, p, cs)
			}
			fmt.Fprintf(buf, `</div><a class="more" href="/cases/">%s</a></section>`, esc(p.T.Home.CasesLink))
		}
	})
}

// writeArticleCard renders the shared listing-projection card.
func writeArticleCard(buf *bytes.Buffer, p Page, art cms.Article) {
	link := "/blog/" + art.Slug + "/"
	if art.FeaturedImage != nil {
		fmt.Fprintf(buf, `<a href="%s"><img src="/media/thumb?src=%s" alt="%s" loading="lazy"></a>`,
			esc(link), esc(queryEscape(art.FeaturedImage.URL)), esc(art.FeaturedImage.Alt))
	}
	fmt.Fprintf(buf, `<h3><a href="%s">%s</a></h3>`, esc(link), esc(art.Title))
	fmt.Fprintf(buf, `<p class="byline">%s &middot; %s</p>`, esc(art.Author.Name), formatDate(p.Locale, art.PublishedAt))
	fmt.Fprintf(buf, `<p>%s</p>`, esc(art.Excerpt))
	fmt.Fprintf(buf, `<a class="more" href="%s">%s</a>`, esc(link), esc(p.T.Blog.ReadMore))
}

func writeCaseCard(buf *bytes.Buffer, p Page, cs CaseStudy) {
	link := "/cases/" + cs.Slug + "/"
	fmt.Fprintf(buf, `<article class="case-card"><h3><a href="%s">%s</a></h3>`, esc(link), esc(cs.Title))
	fmt.Fprintf(buf, `<p class="meta">%s: %s &middot; %s: %s</p>`,
		esc(p.T.Cases.Sector), esc(cs.Sector), esc(p.T.Cases.Year), esc(cs.Year))
	fmt.Fprintf(buf, `<p>%s</p><a class="more" href="%s">%s</a></article>`,
		esc(cs.Excerpt), esc(link), esc(p.T.Cases.ReadCase))
}
