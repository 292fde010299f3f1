package website

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nortela/website/cms"
	"github.com/nortela/website/i18n"
	"github.com/nortela/website/mail"
)

func TestRelatedArticles(t *testing.T) {
	posts := []cms.Article{
		{Slug: "a"}, {Slug: "current"}, {Slug: "b"}, {Slug: "c"}, {Slug: "d"},
	}
	related := relatedArticles(posts, "current", 3)
	if len(related) != 3 {
		t.Fatalf("expected 3 related articles, got %d", len(related))
	}
	for _, art := range related {
		if art.Slug == "current" {
			t.Errorf("related articles must not include the current slug")
		}
	}
	if related[0].Slug != "a" || related[1].Slug != "b" || related[2].Slug != "c" {
		t.Errorf("unexpected order: %+v", related)
	}
}

func TestRefererPath(t *testing.T) {
	e := echo.New()
	tests := []struct {
		referer  string
		expected string
	}{
		{"", "/"},
		{"http://example.com/blog/", "/blog/"},
		{"http://example.com/blog/?page=2", "/blog/?page=2"},
		{"http://evil.com/phish", "/"},
		{"/contact/", "/contact/"},
		{"not a url at all", "/"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "http://example.com/locale/", nil)
		if tt.referer != "" {
			req.Header.Set("Referer", tt.referer)
		}
		c := e.NewContext(req, httptest.NewRecorder())
		if got := refererPath(c); got != tt.expected {
			t.Errorf("refererPath(%q) = %q, want %q", tt.referer, got, tt.expected)
		}
	}
}

func TestHandleLocaleSwitch(t *testing.T) {
	a := &App{Config: SiteConfig{}, Echo: echo.New()}

	form := url.Values{"locale": {"es"}}
	req := httptest.NewRequest(http.MethodPost, "http://example.com/locale/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("Referer", "http://example.com/about/")
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)

	if err := a.handleLocaleSwitch(c); err != nil {
		t.Fatalf("handleLocaleSwitch returned error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/about/" {
		t.Errorf("Location = %q, want %q", loc, "/about/")
	}

	var found bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == i18n.CookieName {
			found = true
			if cookie.Value != "es" {
				t.Errorf("locale cookie = %q, want %q", cookie.Value, "es")
			}
		}
	}
	if !found {
		t.Error("locale cookie was not set")
	}
}

func TestHandleLocaleSwitchUnsupportedFallsBack(t *testing.T) {
	a := &App{Config: SiteConfig{}, Echo: echo.New()}

	form := url.Values{"locale": {"de"}}
	req := httptest.NewRequest(http.MethodPost, "http://example.com/locale/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)

	if err := a.handleLocaleSwitch(c); err != nil {
		t.Fatalf("handleLocaleSwitch returned error: %v", err)
	}

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == i18n.CookieName && cookie.Value != string(i18n.Default) {
			t.Errorf("unsupported locale should persist the default, got %q", cookie.Value)
		}
	}
}

func TestHandleRobots(t *testing.T) {
	a := &App{Config: SiteConfig{URL: "https://nortela.com"}, Echo: echo.New()}

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)

	if err := a.handleRobots(c); err != nil {
		t.Fatalf("handleRobots returned error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Sitemap: https://nortela.com/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap line: %q", body)
	}
	if !strings.Contains(body, "Disallow: /api/") {
		t.Errorf("robots.txt should keep crawlers out of the API: %q", body)
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"maria.silva@empresa.com.br", true},
		{"", false},
		{"no-at-sign", false},
		{"@b.com", false},
		{"a@", false},
		{"a@nodot", false},
	}
	for _, tt := range tests {
		if got := validEmail(tt.email); got != tt.valid {
			t.Errorf("validEmail(%q) = %v, want %v", tt.email, got, tt.valid)
		}
	}
}

func newContactApp(t *testing.T) *App {
	t.Helper()
	store, cleanup := setupTestStore(t)
	t.Cleanup(cleanup)
	return &App{
		Config:        SiteConfig{},
		Echo:          echo.New(),
		Store:         store,
		Mail:          mail.NewRelay(mail.RelayConfig{}),
		Log:           zap.NewNop(),
		submitLimiter: NewSubmitLimiter(5, time.Minute),
	}
}

func postContact(t *testing.T, a *App, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	if err := a.handleContactSubmit(c); err != nil {
		t.Fatalf("handleContactSubmit returned error: %v", err)
	}
	return rec
}

func TestHandleContactSubmitNotConfiguredIsSoftSuccess(t *testing.T) {
	a := newContactApp(t)

	rec := postContact(t, a, url.Values{
		"name":    {"Maria"},
		"email":   {"maria@example.com"},
		"message": {"Olá"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/contact/" {
		t.Errorf("Location = %q, want %q", loc, "/contact/")
	}

	subs, err := a.Store.ListSubmissions(10)
	if err != nil {
		t.Fatalf("ListSubmissions failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 logged submission, got %d", len(subs))
	}
	if subs[0].Delivery != "not_configured" {
		t.Errorf("Delivery = %q, want %q", subs[0].Delivery, "not_configured")
	}
}

func TestHandleContactSubmitRejectsInvalid(t *testing.T) {
	a := newContactApp(t)

	rec := postContact(t, a, url.Values{
		"name":    {"Maria"},
		"email":   {"not-an-email"},
		"message": {"Olá"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	subs, err := a.Store.ListSubmissions(10)
	if err != nil {
		t.Fatalf("ListSubmissions failed: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("invalid submission must not be logged, got %d", len(subs))
	}
}

func TestHandleContactSubmitRateLimited(t *testing.T) {
	a := newContactApp(t)
	a.submitLimiter = NewSubmitLimiter(1, time.Minute)

	form := url.Values{
		"name":    {"Maria"},
		"email":   {"maria@example.com"},
		"message": {"Olá"},
	}
	postContact(t, a, form)
	postContact(t, a, form)

	subs, err := a.Store.ListSubmissions(10)
	if err != nil {
		t.Fatalf("ListSubmissions failed: %v", err)
	}
	if len(subs) != 1 {
		t.Errorf("rate-limited submission must not be logged, got %d", len(subs))
	}
}

func TestCaseBySlug(t *testing.T) {
	for _, cs := range caseStudies {
		got, ok := caseBySlug(cs.Slug)
		if !ok || got.Slug != cs.Slug {
			t.Errorf("caseBySlug(%q) not found", cs.Slug)
		}
	}
	if _, ok := caseBySlug("nope"); ok {
		t.Error("caseBySlug should miss on unknown slug")
	}
}
