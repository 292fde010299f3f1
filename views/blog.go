package views

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/a-h/templ"

	"github.com/nortela/website/cms"
)

func queryEscape(s string) string {
	return url.QueryEscape(s)
}

// Blog renders the listing page with the category filter and pagination.
// activeCategory is the upstream category id, 0 for unfiltered.
func Blog(p Page, posts []cms.Article, cats []cms.Category, pageNum, totalPages, activeCategory int) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		fmt.Fprintf(buf, `<h1>%s</h1>`, esc(p.T.Blog.Title))

		writeCategoryFilter(buf, p, cats, activeCategory)

		if len(posts) == 0 {
			fmt.Fprintf(buf, `<div class="empty-state"><p>%s</p><a href="/blog/">%s</a></div>`,
				esc(p.T.Blog.Empty), esc(p.T.Blog.EmptyBackLink))
			return
		}

		buf.WriteString(`<div class="post-grid">`)
		for _, art := range posts {
			buf.WriteString(`<article class="post-card">`)
			writeArticleCard(buf, p, art)
			buf.WriteString(`</article>`)
		}
		buf.WriteString(`</div>`)

		writePagination(buf, p, pageNum, totalPages, activeCategory)
	})
}

// writeCategoryFilter always includes the "all" option first; an empty
// category set degrades to just that option.
func writeCategoryFilter(buf *bytes.Buffer, p Page, cats []cms.Category, active int) {
	buf.WriteString(`<nav class="category-filter">`)
	cls := ""
	if active == 0 {
		cls = ` class="active"`
	}
	fmt.Fprintf(buf, `<a href="/blog/"%s>%s</a>`, cls, esc(p.T.Blog.AllCategories))
	for _, cat := range cats {
		cls = ""
		if cat.ID == active {
			cls = ` class="active"`
		}
		fmt.Fprintf(buf, `<a href="/blog/?category=%d"%s>%s (%d)</a>`, cat.ID, cls, esc(cat.Name), cat.Count)
	}
	buf.WriteString(`</nav>`)
}

// writePagination clamps the previous/next controls to [1, totalPages].
func writePagination(buf *bytes.Buffer, p Page, pageNum, totalPages, activeCategory int) {
	if totalPages <= 1 {
		return
	}
	link := func(n int) string {
		if activeCategory > 0 {
			return fmt.Sprintf("/blog/?page=%d&category=%d", n, activeCategory)
		}
		return fmt.Sprintf("/blog/?page=%d", n)
	}
	buf.WriteString(`<nav class="pagination">`)
	if pageNum > 1 {
		fmt.Fprintf(buf, `<a rel="prev" href="%s">%s</a>`, link(pageNum-1), esc(p.T.Blog.Previous))
	}
	fmt.Fprintf(buf, `<span class="page-indicator">%d / %d</span>`, pageNum, totalPages)
	if pageNum < totalPages {
		fmt.Fprintf(buf, `<a rel="next" href="%s">%s</a>`, link(pageNum+1), esc(p.T.Blog.Next))
	}
	buf.WriteString(`</nav>`)
}

// Post renders a single article in the full projection. The body is trusted
// rendered HTML from the CMS and is written through unescaped.
func Post(p Page, art cms.Article, related []cms.Article) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="post">`)
		fmt.Fprintf(buf, `<h1>%s</h1>`, esc(art.Title))
		fmt.Fprintf(buf, `<p class="byline">%s %s`, esc(p.T.Blog.PublishedOn), formatDate(p.Locale, art.PublishedAt))
		if art.Author.Name != "" {
			fmt.Fprintf(buf, ` &middot; %s`, esc(art.Author.Name))
		}
		buf.WriteString(`</p>`)
		if len(art.Categories) > 0 {
			buf.WriteString(`<p class="terms">`)
			for i, cat := range art.Categories {
				if i > 0 {
					buf.WriteString(` `)
				}
				fmt.Fprintf(buf, `<a href="/blog/?category=%d">%s</a>`, cat.ID, esc(cat.Name))
			}
			buf.WriteString(`</p>`)
		}
		if art.FeaturedImage != nil {
			fmt.Fprintf(buf, `<img class="cover" src="/media/thumb?src=%s&w=1200" alt="%s">`,
				esc(queryEscape(art.FeaturedImage.URL)), esc(art.FeaturedImage.Alt))
		}
		buf.WriteString(`<div class="post-body">`)
		buf.WriteString(art.Body)
		buf.WriteString(`</div></article>`)

		if len(related) > 0 {
			fmt.Fprintf(buf, `<aside class="related"><h2>%s</h2><div class="post-grid">`, esc(p.T.Home.FeaturedHead))
			for _, r := range related {
				buf.WriteString(`<article class="post-card">`)
				writeArticleCard(buf, p, r)
				buf.WriteString(`</article>`)
			}
			buf.WriteString(`</div></aside>`)
		}
	})
}
