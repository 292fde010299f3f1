package website

import (
	"context"
	"testing"
	"time"

	"github.com/nortela/website/cms"
)

// fakeSource counts upstream calls and returns canned results.
type fakeSource struct {
	listingCalls  int
	articleCalls  int
	featuredCalls int

	listing cms.ListingResult
	article *cms.Article
}

func (f *fakeSource) FetchListingPage(ctx context.Context, page, pageSize, categoryID int) cms.ListingResult {
	f.listingCalls++
	return f.listing
}

func (f *fakeSource) FetchAllListingArticles(ctx context.Context) []cms.Article {
	return f.listing.Posts
}

func (f *fakeSource) FetchFullArticleBySlug(ctx context.Context, slug string) *cms.Article {
	f.articleCalls++
	return f.article
}

func (f *fakeSource) FetchFeaturedArticles(ctx context.Context) []cms.Article {
	f.featuredCalls++
	return f.listing.Posts
}

func (f *fakeSource) FetchCategories(ctx context.Context) []cms.Category {
	return []cms.Category{{ID: 1, Name: "Tech", Slug: "tech", Count: 5}}
}

func okListing(slugs ...string) cms.ListingResult {
	posts := make([]cms.Article, len(slugs))
	for i, s := range slugs {
		posts[i] = cms.Article{ID: i + 1, Slug: s, Title: s}
	}
	return cms.ListingResult{Posts: posts, TotalPages: 1, Status: cms.StatusOK}
}

func TestCacheListingHit(t *testing.T) {
	src := &fakeSource{listing: okListing("a", "b")}
	cache := NewContentCache(src, time.Minute)
	ctx := context.Background()

	first := cache.Listing(ctx, 1, 12, 0)
	second := cache.Listing(ctx, 1, 12, 0)

	if src.listingCalls != 1 {
		t.Errorf("expected 1 upstream call, got %d", src.listingCalls)
	}
	if len(first.Posts) != 2 || len(second.Posts) != 2 {
		t.Errorf("unexpected posts: first=%d second=%d", len(first.Posts), len(second.Posts))
	}
}

func TestCacheKeyedPerQuery(t *testing.T) {
	src := &fakeSource{listing: okListing("a")}
	cache := NewContentCache(src, time.Minute)
	ctx := context.Background()

	cache.Listing(ctx, 1, 12, 0)
	cache.Listing(ctx, 2, 12, 0)
	cache.Listing(ctx, 1, 12, 7)

	if src.listingCalls != 3 {
		t.Errorf("distinct queries should each hit upstream, got %d calls", src.listingCalls)
	}
}

func TestCacheDegradedNotCached(t *testing.T) {
	src := &fakeSource{listing: cms.ListingResult{Posts: []cms.Article{}, TotalPages: 1, Status: cms.StatusDegraded}}
	cache := NewContentCache(src, time.Minute)
	ctx := context.Background()

	cache.Listing(ctx, 1, 12, 0)
	cache.Listing(ctx, 1, 12, 0)

	if src.listingCalls != 2 {
		t.Errorf("degraded results must be refetched, got %d calls", src.listingCalls)
	}
}

func TestCacheNilArticleNotCached(t *testing.T) {
	src := &fakeSource{}
	cache := NewContentCache(src, time.Minute)
	ctx := context.Background()

	if art := cache.ArticleBySlug(ctx, "missing"); art != nil {
		t.Fatalf("expected nil article, got %+v", art)
	}
	cache.ArticleBySlug(ctx, "missing")

	if src.articleCalls != 2 {
		t.Errorf("nil articles must be refetched, got %d calls", src.articleCalls)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	src := &fakeSource{listing: okListing("a")}
	cache := NewContentCache(src, 10*time.Millisecond)
	ctx := context.Background()

	cache.Listing(ctx, 1, 12, 0)
	time.Sleep(20 * time.Millisecond)
	cache.Listing(ctx, 1, 12, 0)

	if src.listingCalls != 2 {
		t.Errorf("expired entry should be refetched, got %d calls", src.listingCalls)
	}
}

func TestCacheInvalidateSlug(t *testing.T) {
	art := &cms.Article{ID: 1, Slug: "hello", Title: "Hello"}
	src := &fakeSource{listing: okListing("hello"), article: art}
	cache := NewContentCache(src, time.Minute)
	ctx := context.Background()

	cache.ArticleBySlug(ctx, "hello")
	cache.Listing(ctx, 1, 12, 0)

	cache.Invalidate("hello")

	cache.ArticleBySlug(ctx, "hello")
	cache.Listing(ctx, 1, 12, 0)

	if src.articleCalls != 2 {
		t.Errorf("invalidated article should be refetched, got %d calls", src.articleCalls)
	}
	if src.listingCalls != 2 {
		t.Errorf("listing pages should be dropped with the slug, got %d calls", src.listingCalls)
	}
}

func TestCacheInvalidateLeavesOtherArticles(t *testing.T) {
	art := &cms.Article{ID: 1, Slug: "keep", Title: "Keep"}
	src := &fakeSource{article: art}
	cache := NewContentCache(src, time.Minute)
	ctx := context.Background()

	cache.ArticleBySlug(ctx, "keep")
	cache.Invalidate("other")
	cache.ArticleBySlug(ctx, "keep")

	if src.articleCalls != 1 {
		t.Errorf("unrelated article entry should survive, got %d calls", src.articleCalls)
	}
}

func TestCacheInvalidateAll(t *testing.T) {
	src := &fakeSource{listing: okListing("a")}
	cache := NewContentCache(src, time.Minute)
	ctx := context.Background()

	cache.Listing(ctx, 1, 12, 0)
	cache.Featured(ctx)
	cache.InvalidateAll()
	cache.Listing(ctx, 1, 12, 0)
	cache.Featured(ctx)

	if src.listingCalls != 2 || src.featuredCalls != 2 {
		t.Errorf("everything should be refetched after InvalidateAll: listing=%d featured=%d",
			src.listingCalls, src.featuredCalls)
	}
}
