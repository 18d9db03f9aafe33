package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// User names, goguma names, and posts are plain text; strip all markup.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize removes any HTML from user supplied text. The policy
// entity-escapes what it keeps, so the result is unescaped again to store
// plain text as typed ("Tom & Jerry" stays "Tom & Jerry").
func Sanitize(input string) string {
	return html.UnescapeString(sanitizer.Sanitize(input))
}
