// Package domain contains core business entities and rules.
package domain

import "time"

// DateFormat is the calendar date layout used by post front matter.
const DateFormat = "2006-01-02"

// FrontMatter is the structured metadata block extracted from the head
// of a post document. All four fields are required; extraction fails if
// any is absent.
type FrontMatter struct {
	// Title is the post title, with quoting characters stripped.
	Title string

	// Date is the publication date as written in the source document.
	// It must parse under DateFormat.
	Date string

	// Tags are the categories declared for the post.
	Tags []string

	// Blurb is a short raw-markdown excerpt shown on the listing page.
	Blurb string
}

// PublishedAt parses the front-matter date into a time.Time.
func (f FrontMatter) PublishedAt() (time.Time, error) {
	t, err := time.Parse(DateFormat, f.Date)
	if err != nil {
		return time.Time{}, NewDateParseError(f.Date, err)
	}

	return t, nil
}

// PostSummary is one entry on the blog listing page.
type PostSummary struct {
	// Date is the publication date string from the front matter.
	Date string

	// Title is the post title.
	Title string

	// Slug is the URL identifier, the source filename minus ".md".
	Slug string

	// BlurbHTML is the rendered HTML of the front-matter blurb.
	BlurbHTML string

	// Tags are the post's declared tags.
	Tags []string
}

// PostDetail is the rendered form of a single requested post.
type PostDetail struct {
	// Title is the post title from the front matter.
	Title string

	// BodyHTML is the rendered HTML of the document body that follows
	// the front-matter block.
	BodyHTML string
}
