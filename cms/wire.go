package cms

import "time"

// Raw wire shapes for the WordPress REST API. Only the fields the site reads
// are declared; everything else in the payload is ignored by encoding/json.

type rendered struct {
	Rendered string `json:"rendered"`
}

type rawPost struct {
	ID       int         `json:"id"`
	Slug     string      `json:"slug"`
	DateGMT  string      `json:"date_gmt"`
	Date     string      `json:"date"`
	Title    rendered    `json:"title"`
	Excerpt  rendered    `json:"excerpt"`
	Content  rendered    `json:"content"`
	Sticky   bool        `json:"sticky"`
	Embedded rawEmbedded `json:"_embedded"`
}

type rawEmbedded struct {
	Author        []rawAuthor  `json:"author"`
	FeaturedMedia []rawMedia   `json:"wp:featuredmedia"`
	Terms         [][]rawTerm  `json:"wp:term"`
}

type rawAuthor struct {
	Name       string            `json:"name"`
	AvatarURLs map[string]string `json:"avatar_urls"`
}

type rawMedia struct {
	SourceURL string `json:"source_url"`
	AltText   string `json:"alt_text"`
}

type rawTerm struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Taxonomy string `json:"taxonomy"`
}

type rawCategory struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// wpDateLayout is the zone-less timestamp format WordPress uses for date_gmt.
const wpDateLayout = "2006-01-02T15:04:05"

// article flattens a raw post into the normalized shape. full controls the
// projection: only the full projection carries the rendered HTML body.
func (r rawPost) article(full bool) Article {
	a := Article{
		ID:      r.ID,
		Slug:    r.Slug,
		Title:   cleanText(r.Title.Rendered),
		Excerpt: truncate(cleanText(r.Excerpt.Rendered), excerptMaxLen),
		Sticky:  r.Sticky,
	}
	if full {
		a.Body = r.Content.Rendered
	}

	date := r.DateGMT
	if date == "" {
		date = r.Date
	}
	if t, err := time.Parse(wpDateLayout, date); err == nil {
		a.PublishedAt = t.UTC()
	}

	if len(r.Embedded.Author) > 0 {
		au := r.Embedded.Author[0]
		a.Author = Author{Name: au.Name, AvatarURL: pickAvatar(au.AvatarURLs)}
	}

	// A media entry with a blank source URL counts as no image at all.
	if len(r.Embedded.FeaturedMedia) > 0 {
		m := r.Embedded.FeaturedMedia[0]
		if m.SourceURL != "" {
			a.FeaturedImage = &Image{URL: m.SourceURL, Alt: m.AltText}
		}
	}

	for _, group := range r.Embedded.Terms {
		for _, t := range group {
			ref := TermRef{ID: t.ID, Name: cleanText(t.Name), Slug: t.Slug}
			switch t.Taxonomy {
			case "category":
				a.Categories = append(a.Categories, ref)
			case "post_tag":
				a.Tags = append(a.Tags, ref)
			}
		}
	}
	return a
}

// pickAvatar prefers the 96px avatar WordPress always generates, then falls
// back to any size.
func pickAvatar(urls map[string]string) string {
	if u, ok := urls["96"]; ok {
		return u
	}
	for _, u := range urls {
		return u
	}
	return ""
}
