package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen     = regexp.MustCompile(`-{2,}`)
)

// From converts an article title into an ASCII URL slug ("Malé Guide" -> "male-guide").
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Normalize cleans a client-supplied slug, falling back to the title when the
// supplied value has no usable characters.
func Normalize(supplied, title string) string {
	if s := From(supplied); s != "" {
		return s
	}
	return From(title)
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
