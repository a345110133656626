package news

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonWordChars  = regexp.MustCompile(`[^\w-]+`)
	hyphenRun     = regexp.MustCompile(`--+`)
)

// fallbackSlug is used when a title has no retainable characters at all
// (for example an all-emoji title).
const fallbackSlug = "berita"

// Slugify turns a display title into a URL-safe base slug: lowercase,
// whitespace runs become a single hyphen, everything that is not a word
// character or hyphen is dropped, hyphen runs collapse, edges are trimmed.
// The result may be empty.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonWordChars.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}
