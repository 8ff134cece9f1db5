// Package markdown implements the post content pipeline: front-matter
// extraction and markdown-to-HTML rendering.
package markdown

import (
	"bytes"

	"github.com/adrg/frontmatter"

	"github.com/sphericalkat/website/internal/domain"
)

// RequiredFields lists the front-matter keys every post must declare.
// Extraction fails if any of them is absent from the metadata block.
var RequiredFields = []string{"title", "tags", "date", "blurb"}

// fields uses pointers so an absent key is distinguishable from a key
// declared with a zero value.
type fields struct {
	Title *string   `yaml:"title"`
	Tags  *[]string `yaml:"tags"`
	Date  *string   `yaml:"date"`
	Blurb *string   `yaml:"blurb"`
}

// ExtractFrontMatter parses the leading metadata block of a document and
// returns the structured front matter plus the markdown body that
// follows it. The block is YAML delimited by "---" lines. All of
// RequiredFields must be present; a missing field yields a
// domain.ExtractionError rather than a partially populated result.
//
// Extraction is purely structural. It does not validate the date as a
// calendar date and it does not strip quoting characters from values;
// both are caller responsibilities.
func ExtractFrontMatter(name string, source []byte) (domain.FrontMatter, []byte, error) {
	var meta fields

	body, err := frontmatter.MustParse(bytes.NewReader(source), &meta)
	if err != nil {
		return domain.FrontMatter{}, nil, domain.NewExtractionError(name, err)
	}

	if missing := missingField(meta); missing != "" {
		return domain.FrontMatter{}, nil, domain.NewMissingFieldError(name, missing)
	}

	fm := domain.FrontMatter{
		Title: *meta.Title,
		Date:  *meta.Date,
		Tags:  append([]string(nil), (*meta.Tags)...),
		Blurb: *meta.Blurb,
	}

	return fm, body, nil
}

func missingField(meta fields) string {
	switch {
	case meta.Title == nil:
		return "title"
	case meta.Tags == nil:
		return "tags"
	case meta.Date == nil:
		return "date"
	case meta.Blurb == nil:
		return "blurb"
	default:
		return ""
	}
}
