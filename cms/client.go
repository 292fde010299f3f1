package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// listingFields keeps the listing payload small: everything except the
	// rendered body, plus the _links/_embedded data needed for expansion.
	listingFields = "id,slug,date_gmt,date,title,excerpt,sticky,_links,_embedded"

	// fanOutPageSize is the page size used when fetching the whole corpus.
	fanOutPageSize = 100

	featuredLimit = 5
)

// Client talks to a WordPress REST API rooted at baseURL
// (e.g. https://cms.example.com/wp-json/wp/v2).
//
// Every public method absorbs upstream failures: a transport error, a parse
// error, or a non-2xx status yields an empty or nil result tagged degraded,
// never an error. The site must render with whatever is available.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to add a caching
// transport or shorten timeouts.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger used to report absorbed upstream failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: trimSlash(baseURL),
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// FetchListingPage returns one page of posts in the listing projection,
// optionally filtered to a category. An unknown category id simply yields
// zero posts. Upstream order (publish date descending) is preserved.
func (c *Client) FetchListingPage(ctx context.Context, page, pageSize, categoryID int) ListingResult {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(pageSize))
	q.Set("_fields", listingFields)
	q.Set("_embed", "1")
	if categoryID > 0 {
		q.Set("categories", strconv.Itoa(categoryID))
	}

	raw, totalPages, err := c.fetchPosts(ctx, q)
	if err != nil {
		c.log.Warn("blog listing fetch degraded",
			zap.Int("page", page),
			zap.Int("category", categoryID),
			zap.Error(err))
		return ListingResult{Posts: []Article{}, TotalPages: 1, Status: StatusDegraded}
	}

	posts := make([]Article, 0, len(raw))
	for _, r := range raw {
		posts = append(posts, r.article(false))
	}
	return ListingResult{Posts: posts, TotalPages: totalPages, Status: StatusOK}
}

// FetchAllListingArticles returns the complete corpus in the listing
// projection. The first page discovers the total page count; remaining pages
// are fetched concurrently and joined in ascending page order, so the final
// sequence matches what sequential pagination would have produced.
func (c *Client) FetchAllListingArticles(ctx context.Context) []Article {
	first := c.FetchListingPage(ctx, 1, fanOutPageSize, 0)
	if first.Status == StatusDegraded || first.TotalPages <= 1 {
		return first.Posts
	}

	pages := make([][]Article, first.TotalPages+1)
	pages[1] = first.Posts

	var wg sync.WaitGroup
	for p := 2; p <= first.TotalPages; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			// A failed page already degrades to empty inside
			// FetchListingPage, so the join cannot abort siblings.
			pages[p] = c.FetchListingPage(ctx, p, fanOutPageSize, 0).Posts
		}(p)
	}
	wg.Wait()

	var all []Article
	for p := 1; p < len(pages); p++ {
		all = append(all, pages[p]...)
	}
	return all
}

// FetchFullArticleBySlug returns the article with the exact slug in the full
// projection, or nil when no such post exists or the upstream is unavailable.
// nil is the expected not-found signal, not a fault.
func (c *Client) FetchFullArticleBySlug(ctx context.Context, slug string) *Article {
	q := url.Values{}
	q.Set("slug", slug)
	q.Set("per_page", "1")
	q.Set("_embed", "1")

	raw, _, err := c.fetchPosts(ctx, q)
	if err != nil {
		c.log.Warn("article fetch degraded", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	if len(raw) == 0 {
		return nil
	}
	a := raw[0].article(true)
	return &a
}

// FetchFeaturedArticles returns up to five sticky posts in the listing
// projection, for the home page hero carousel.
func (c *Client) FetchFeaturedArticles(ctx context.Context) []Article {
	q := url.Values{}
	q.Set("sticky", "true")
	q.Set("per_page", strconv.Itoa(featuredLimit))
	q.Set("_fields", listingFields)
	q.Set("_embed", "1")

	raw, _, err := c.fetchPosts(ctx, q)
	if err != nil {
		c.log.Warn("featured fetch degraded", zap.Error(err))
		return nil
	}
	posts := make([]Article, 0, len(raw))
	for _, r := range raw {
		posts = append(posts, r.article(false))
	}
	return posts
}

// FetchCategories returns the taxonomy ordered by post count descending,
// dropping empty categories and the default "uncategorized" bucket.
func (c *Client) FetchCategories(ctx context.Context) []Category {
	q := url.Values{}
	q.Set("per_page", "100")
	q.Set("orderby", "count")
	q.Set("order", "desc")

	body, _, err := c.get(ctx, "/categories", q)
	if err != nil {
		c.log.Warn("categories fetch degraded", zap.Error(err))
		return nil
	}
	var raw []rawCategory
	if err := json.Unmarshal(body, &raw); err != nil {
		c.log.Warn("categories fetch degraded", zap.Error(err))
		return nil
	}

	cats := make([]Category, 0, len(raw))
	for _, r := range raw {
		if r.Count == 0 || r.Slug == "uncategorized" {
			continue
		}
		cats = append(cats, Category{ID: r.ID, Name: cleanText(r.Name), Slug: r.Slug, Count: r.Count})
	}
	return cats
}

func (c *Client) fetchPosts(ctx context.Context, q url.Values) ([]rawPost, int, error) {
	body, header, err := c.get(ctx, "/posts", q)
	if err != nil {
		return nil, 0, err
	}
	var raw []rawPost
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode posts: %w", err)
	}
	totalPages := 1
	if v, err := strconv.Atoi(header.Get("X-WP-TotalPages")); err == nil && v > 0 {
		totalPages = v
	}
	return raw, totalPages, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, fmt.Errorf("request %s: unexpected status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return body, resp.Header, nil
}
