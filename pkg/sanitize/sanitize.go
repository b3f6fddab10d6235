// Package sanitize neutralizes markup and normalizes whitespace in
// user-supplied text before it is stored or echoed back.
//
// HTML is a denylist filter and not a substitute for output encoding.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultCommentLength     = 1000
	DefaultProductNameLength = 255
	DefaultSearchLength      = 100
)

var (
	blockTags = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`),
		regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe\s*>`),
		regexp.MustCompile(`(?is)<object\b[^>]*>.*?</object\s*>`),
		regexp.MustCompile(`(?is)<embed\b[^>]*>.*?</embed\s*>`),
	}
	strayTags     = regexp.MustCompile(`(?i)</?\s*(script|iframe|object|embed)\b[^>]*>`)
	eventHandlers = regexp.MustCompile(`(?i)\s+on[a-z]+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	badSchemes    = regexp.MustCompile(`(?i)\b(javascript|vbscript|data)\s*:`)
	anyTag        = regexp.MustCompile(`<[^>]*>`)
	spaces        = regexp.MustCompile(`[ \t\f\v\r]+`)
	blankLines    = regexp.MustCompile(`\n{3,}`)
	allSpace      = regexp.MustCompile(`\s+`)
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// HTML removes script-capable tags, inline event handlers and dangerous URL
// schemes. Other markup is left untouched.
func HTML(s string) string {
	// Removing an inner tag can join its neighbours into a new one, so the
	// passes repeat until nothing matches. Every pass only deletes text,
	// which bounds the loop by len(s).
	for {
		next := htmlPass(s)
		if next == s {
			return s
		}
		s = next
	}
}

func htmlPass(s string) string {
	for _, re := range blockTags {
		s = re.ReplaceAllString(s, "")
	}
	s = strayTags.ReplaceAllString(s, "")
	s = eventHandlers.ReplaceAllString(s, "")
	s = badSchemes.ReplaceAllString(s, "")
	return s
}

// Text HTML-escapes & < > " ' and /.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return textEscaper.Replace(s)
}

// Comment strips control characters and dangerous markup, collapses runs of
// spaces (keeping at most one blank line) and truncates to maxLen runes.
func Comment(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultCommentLength
	}
	s = stripControl(s, true)
	s = HTML(s)
	s = spaces.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " \n", "\n")
	s = strings.ReplaceAll(s, "\n ", "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)
	return truncate(s, maxLen)
}

// ProductName reduces s to a single line of plain text of at most maxLen runes.
func ProductName(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultProductNameLength
	}
	return truncate(singleLine(s), maxLen)
}

// SearchQuery is ProductName plus removal of % and ; characters.
func SearchQuery(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSearchLength
	}
	s = strings.NewReplacer("%", "", ";", "").Replace(s)
	return truncate(singleLine(s), maxLen)
}

// Trimmed applies HTML and trims surrounding whitespace.
func Trimmed(s string) string {
	return strings.TrimSpace(HTML(s))
}

func singleLine(s string) string {
	s = stripControl(s, false)
	s = HTML(s)
	s = anyTag.ReplaceAllString(s, "")
	s = allSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func stripControl(s string, keepNewlines bool) string {
	if s == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' && keepNewlines:
			return r
		case r == '\n' || r == '\t' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:maxLen]))
}
