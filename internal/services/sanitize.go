package services

import "github.com/microcosm-cc/bluemonday"

// richText is the sanitization policy for HTML produced by the admin editor.
// Applied on every create/update so stored markup is always safe to render.
var richText = bluemonday.UGCPolicy()

func sanitizeHTML(s string) string {
	return richText.Sanitize(s)
}
