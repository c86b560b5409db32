package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// Content keeps safe user-generated markup and strips scripts, handlers
// and other active content.
func Content(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}

// Text strips all markup.
func Text(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
