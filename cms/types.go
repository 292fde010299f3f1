// Package cms is a read-only client for the headless WordPress REST API that
// feeds the blog. It normalizes the upstream wire format into flat value types
// and never surfaces transport errors to callers: every fetch degrades to an
// empty or nil result so pages always have something to render.
package cms

import "time"

// Status tells callers whether a result came from a successful upstream read
// or is the default value produced after an absorbed failure. The data shape
// is identical either way; the tag exists for logging and tests.
type Status string

const (
	StatusOK       Status = "ok"
	StatusDegraded Status = "degraded"
)

// Author is the post author as embedded in the list response.
type Author struct {
	Name      string
	AvatarURL string
}

// Image is a featured image reference. A post without usable media carries a
// nil *Image rather than a zero value.
type Image struct {
	URL string
	Alt string
}

// TermRef is a category or tag attached to a post.
type TermRef struct {
	ID   int
	Name string
	Slug string
}

// Article is one blog post. In the listing projection Body is always empty;
// in the full projection it holds the upstream rendered HTML. All other
// fields are identical between projections, so callers must branch on which
// operation they called, never on Body being present.
type Article struct {
	ID            int
	Slug          string
	Title         string
	Excerpt       string
	Body          string
	PublishedAt   time.Time
	Author        Author
	Categories    []TermRef
	Tags          []TermRef
	FeaturedImage *Image
	Sticky        bool
}

// Category is a taxonomy term surfaced to the blog filter UI.
type Category struct {
	ID    int
	Name  string
	Slug  string
	Count int
}

// ListingResult is one page of the blog listing. TotalPages is read from the
// upstream pagination header and is always at least 1. Page numbers are
// 1-based; callers clamp their navigation controls to [1, TotalPages].
type ListingResult struct {
	Posts      []Article
	TotalPages int
	Status     Status
}
