package website

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nortela/website/cms"
)

// contentSource is the slice of the cms client the cache consumes. It exists
// so tests can substitute a fake upstream.
type contentSource interface {
	FetchListingPage(ctx context.Context, page, pageSize, categoryID int) cms.ListingResult
	FetchAllListingArticles(ctx context.Context) []cms.Article
	FetchFullArticleBySlug(ctx context.Context, slug string) *cms.Article
	FetchFeaturedArticles(ctx context.Context) []cms.Article
	FetchCategories(ctx context.Context) []cms.Category
}

// ContentCache is a TTL cache in front of the content API, keyed per query.
// Only successful results are cached: degraded listings and nil articles are
// refetched on the next request so an upstream blip does not stick for a
// whole TTL. The revalidation endpoint invalidates entries explicitly when
// the CMS publishes.
type ContentCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	source  contentSource
}

type cacheEntry struct {
	value   any
	fetched time.Time
}

// NewContentCache creates a ContentCache backed by the given source.
func NewContentCache(source contentSource, ttl time.Duration) *ContentCache {
	return &ContentCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		source:  source,
	}
}

func (c *ContentCache) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || time.Since(e.fetched) >= c.ttl {
		return nil, false
	}
	return e.value, true
}

func (c *ContentCache) put(key string, v any) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: v, fetched: time.Now()}
	c.mu.Unlock()
}

// Listing returns one blog listing page, optionally filtered by category.
func (c *ContentCache) Listing(ctx context.Context, page, pageSize, categoryID int) cms.ListingResult {
	key := fmt.Sprintf("listing:%d:%d:%d", page, pageSize, categoryID)
	if v, ok := c.lookup(key); ok {
		return v.(cms.ListingResult)
	}
	res := c.source.FetchListingPage(ctx, page, pageSize, categoryID)
	if res.Status == cms.StatusOK {
		c.put(key, res)
	}
	return res
}

// All returns the complete article corpus in the listing projection.
func (c *ContentCache) All(ctx context.Context) []cms.Article {
	if v, ok := c.lookup("all"); ok {
		return v.([]cms.Article)
	}
	all := c.source.FetchAllListingArticles(ctx)
	if len(all) > 0 {
		c.put("all", all)
	}
	return all
}

// ArticleBySlug returns one article in the full projection, or nil.
func (c *ContentCache) ArticleBySlug(ctx context.Context, slug string) *cms.Article {
	key := "article:" + slug
	if v, ok := c.lookup(key); ok {
		return v.(*cms.Article)
	}
	art := c.source.FetchFullArticleBySlug(ctx, slug)
	if art != nil {
		c.put(key, art)
	}
	return art
}

// Featured returns the sticky articles for the home carousel.
func (c *ContentCache) Featured(ctx context.Context) []cms.Article {
	if v, ok := c.lookup("featured"); ok {
		return v.([]cms.Article)
	}
	featured := c.source.FetchFeaturedArticles(ctx)
	if featured != nil {
		c.put("featured", featured)
	}
	return featured
}

// Categories returns the filtered category taxonomy.
func (c *ContentCache) Categories(ctx context.Context) []cms.Category {
	if v, ok := c.lookup("categories"); ok {
		return v.([]cms.Category)
	}
	cats := c.source.FetchCategories(ctx)
	if cats != nil {
		c.put("categories", cats)
	}
	return cats
}

// Invalidate drops the cached entry for one slug plus every aggregate entry
// (listing pages, corpus, featured, categories) that could include it.
func (c *ContentCache) Invalidate(slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, "article:"+slug)
	for key := range c.entries {
		if strings.HasPrefix(key, "listing:") || key == "all" || key == "featured" || key == "categories" {
			delete(c.entries, key)
		}
	}
}

// InvalidateAll clears the cache so the next read triggers a fresh load.
func (c *ContentCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
