// Package htmlsanitize strips unsafe HTML from user-authored rich text.
//
// CFR narrative fields (what happened, challenges, next plans, manager
// feedback) and objective descriptions accept formatted text from the
// client editor; this is the single choke point that makes that text safe
// to render.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowTables()
	p.AllowAttrs("class").OnElements("table", "tr", "td", "th", "ul", "ol", "li", "p", "span")
	p.AllowElements("u", "s", "sub", "sup", "mark")
	return p
}

// Sanitize returns the input with all disallowed tags and attributes
// removed. Plain text passes through unchanged.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
