package website

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nortela/website/cms"
	"github.com/nortela/website/i18n"
	"github.com/nortela/website/mail"
	"github.com/nortela/website/views"
)

// newPage assembles the per-request render context: resolved locale, copy
// bundle, CSRF token, pending flash, and page metadata.
func (a *App) newPage(c echo.Context, meta views.PageMeta) views.Page {
	loc := i18n.FromContext(c)
	kind, msg := popFlash(c)
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	return views.Page{
		Site: views.SiteConfig{
			Name:        a.Config.Name,
			URL:         a.Config.URL,
			Description: a.Config.Description,
		},
		Meta:   meta,
		Locale: loc,
		T:      i18n.Bundle(loc),
		CSRF:   csrfToken(c),
		Flash:  views.Flash{Kind: kind, Msg: msg},
		JSONLD: OrganizationJsonLD(a.Config),
	}
}

func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()

	featured := a.Cache.Featured(ctx)
	if len(featured) == 0 {
		// No sticky posts: fall back to the newest articles so the
		// carousel never renders empty while the blog has content.
		res := a.Cache.Listing(ctx, 1, 5, 0)
		featured = res.Posts
	}

	cases := caseStudies
	if len(cases) > 3 {
		cases = cases[:3]
	}

	p := a.newPage(c, views.PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
	})
	return Render(c, views.Home(p, featured, cases))
}

func (a *App) handleAbout(c echo.Context) error {
	p := a.newPage(c, views.PageMeta{})
	p.Meta.Title = p.T.About.Title
	p.Meta.Description = p.T.About.Mission
	p.Meta.URL = BuildURL(a.Config.URL, "about")
	return Render(c, views.About(p))
}

func (a *App) handleBlog(c echo.Context) error {
	ctx := c.Request().Context()

	pageNum, _ := strconv.Atoi(c.QueryParam("page"))
	if pageNum < 1 {
		pageNum = 1
	}
	categoryID, _ := strconv.Atoi(c.QueryParam("category"))
	if categoryID < 0 {
		categoryID = 0
	}

	res := a.Cache.Listing(ctx, pageNum, a.Config.BlogPageSize, categoryID)
	cats := a.Cache.Categories(ctx)

	p := a.newPage(c, views.PageMeta{})
	p.Meta.Title = p.T.Blog.Title
	p.Meta.Description = a.Config.Description
	p.Meta.URL = BuildURL(a.Config.URL, "blog")
	return Render(c, views.Blog(p, res.Posts, cats, pageNum, res.TotalPages, categoryID))
}

func (a *App) handleBlogPost(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	art := a.Cache.ArticleBySlug(ctx, slug)
	if art == nil {
		p := a.newPage(c, views.PageMeta{})
		p.Meta.Title = p.T.Errors.NotFoundTitle
		return RenderStatus(c, http.StatusNotFound, views.NotFound(p))
	}

	related := relatedArticles(a.Cache.Listing(ctx, 1, 4, 0).Posts, slug, 3)

	p := a.newPage(c, views.PageMeta{
		Title:       art.Title,
		Description: art.Excerpt,
		URL:         BuildURL(a.Config.URL, "blog", art.Slug),
		OGType:      "article",
	})
	if art.FeaturedImage != nil {
		p.Meta.Image = art.FeaturedImage.URL
	}
	p.JSONLD = BlogPostingJsonLD(*art, a.Config)
	return Render(c, views.Post(p, *art, related))
}

// relatedArticles picks up to max articles from posts, skipping the one
// currently being read.
func relatedArticles(posts []cms.Article, skipSlug string, max int) []cms.Article {
	related := make([]cms.Article, 0, max)
	for _, art := range posts {
		if art.Slug == skipSlug {
			continue
		}
		related = append(related, art)
		if len(related) == max {
			break
		}
	}
	return related
}

func (a *App) handleCases(c echo.Context) error {
	p := a.newPage(c, views.PageMeta{})
	p.Meta.Title = p.T.Cases.Title
	p.Meta.Description = a.Config.Description
	p.Meta.URL = BuildURL(a.Config.URL, "cases")
	return Render(c, views.Cases(p, caseStudies))
}

func (a *App) handleCase(c echo.Context) error {
	cs, ok := caseBySlug(c.Param("slug"))
	if !ok {
		p := a.newPage(c, views.PageMeta{})
		p.Meta.Title = p.T.Errors.NotFoundTitle
		return RenderStatus(c, http.StatusNotFound, views.NotFound(p))
	}
	p := a.newPage(c, views.PageMeta{
		Title:       cs.Title,
		Description: cs.Excerpt,
		URL:         BuildURL(a.Config.URL, "cases", cs.Slug),
		OGType:      "article",
	})
	return Render(c, views.Case(p, cs))
}

func (a *App) handleContact(c echo.Context) error {
	p := a.newPage(c, views.PageMeta{})
	p.Meta.Title = p.T.Contact.Title
	p.Meta.Description = a.Config.Description
	p.Meta.URL = BuildURL(a.Config.URL, "contact")
	return Render(c, views.Contact(p))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	loc := i18n.FromContext(c)
	t := i18n.Bundle(loc)
	redirect := func() error {
		return c.Redirect(http.StatusSeeOther, "/contact/")
	}

	if !a.submitLimiter.Allow(c.RealIP()) {
		flash(c, "error", t.Contact.TooMany)
		return redirect()
	}

	sub := mail.Submission{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Phone:   strings.TrimSpace(c.FormValue("phone")),
		Subject: strings.TrimSpace(c.FormValue("subject")),
		Message: strings.TrimSpace(c.FormValue("message")),
		Company: strings.TrimSpace(c.FormValue("company")),
	}
	if sub.Name == "" || sub.Message == "" || !validEmail(sub.Email) {
		flash(c, "error", t.Contact.Required)
		return redirect()
	}

	result := a.Mail.Send(c.Request().Context(), sub)

	if _, err := a.Store.SaveSubmission(sub, result); err != nil {
		a.Log.Error("save submission", zap.Error(err))
	}

	if result == mail.Failed {
		flash(c, "error", t.Contact.Failed)
		return redirect()
	}
	flash(c, "ok", t.Contact.Sent)
	return redirect()
}

func (a *App) handleLocaleSwitch(c echo.Context) error {
	loc := i18n.Resolve(c.FormValue("locale"))
	i18n.Persist(c, loc, a.Config.CookieSecure)
	return c.Redirect(http.StatusSeeOther, refererPath(c))
}

// refererPath returns the local path of the page the visitor came from, or
// "/" when the referer is absent or points off-site.
func refererPath(c echo.Context) string {
	ref := c.Request().Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	if u.Host != "" && u.Host != c.Request().Host {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: " +
		strings.TrimSuffix(a.Config.URL, "/") + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		p := a.newPage(c, views.PageMeta{})
		p.Meta.Title = p.T.Errors.NotFoundTitle
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(p))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error("server error", zap.Error(err), zap.String("path", c.Request().URL.Path))
		p := a.newPage(c, views.PageMeta{})
		p.Meta.Title = p.T.Errors.ServerTitle
		_ = RenderStatus(c, code, views.ServerError(p))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
