package website

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func newRevalidateApp(secret string) *App {
	return &App{
		Config: SiteConfig{RevalidateSecret: secret},
		Cache:  NewContentCache(&fakeSource{}, time.Minute),
		Echo:   echo.New(),
		Log:    zap.NewNop(),
	}
}

func postRevalidate(t *testing.T, a *App, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/revalidate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	if err := a.handleRevalidate(c); err != nil {
		t.Fatalf("handleRevalidate returned error: %v", err)
	}
	return rec
}

func TestRevalidateNotConfigured(t *testing.T) {
	a := newRevalidateApp("")
	rec := postRevalidate(t, a, `{"secret":"anything","slug":"post","action":"update"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestRevalidateBadSecret(t *testing.T) {
	a := newRevalidateApp("s3cret")
	rec := postRevalidate(t, a, `{"secret":"wrong","slug":"post","action":"update"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected a descriptive error payload")
	}
}

func TestRevalidateMissingSlug(t *testing.T) {
	a := newRevalidateApp("s3cret")
	rec := postRevalidate(t, a, `{"secret":"s3cret","action":"update"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRevalidateUnknownAction(t *testing.T) {
	a := newRevalidateApp("s3cret")
	rec := postRevalidate(t, a, `{"secret":"s3cret","slug":"post","action":"publish-all"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRevalidateSuccess(t *testing.T) {
	a := newRevalidateApp("s3cret")
	src := &fakeSource{article: nil}
	a.Cache = NewContentCache(src, time.Minute)

	for _, action := range []string{"post", "update", "delete"} {
		rec := postRevalidate(t, a, `{"secret":"s3cret","slug":"hello","action":"`+action+`"}`)
		if rec.Code != http.StatusOK {
			t.Errorf("action %q: status = %d, want %d", action, rec.Code, http.StatusOK)
			continue
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response not JSON: %v", err)
		}
		if resp["revalidated"] != true {
			t.Errorf("action %q: revalidated = %v, want true", action, resp["revalidated"])
		}
		if resp["slug"] != "hello" {
			t.Errorf("action %q: slug = %v, want %q", action, resp["slug"], "hello")
		}
	}
}

func TestRevalidateDropsCachedArticle(t *testing.T) {
	art := okListing("hello").Posts[0]
	src := &fakeSource{article: &art}
	a := newRevalidateApp("s3cret")
	a.Cache = NewContentCache(src, time.Minute)

	ctx := context.Background()
	a.Cache.ArticleBySlug(ctx, "hello")
	postRevalidate(t, a, `{"secret":"s3cret","slug":"hello","action":"update"}`)
	a.Cache.ArticleBySlug(ctx, "hello")

	if src.articleCalls != 2 {
		t.Errorf("cached article should be dropped by revalidation, got %d upstream calls", src.articleCalls)
	}
}
