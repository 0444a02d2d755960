package sites

import (
	"regexp"
	"strings"
)

/*
	Slug helpers
	------------
	- Responsible ONLY for:
	  • generating slugs
	  • building public URLs
	- No access logic here
*/

var (
	whitespace = regexp.MustCompile(`\s+`)
	nonSlug    = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash  = regexp.MustCompile(`-+`)
)

// MakeSlug generates a URL-safe slug from a site name.
// Example: "My First Site" -> "my-first-site"
func MakeSlug(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = whitespace.ReplaceAllString(base, "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "site"
	}
	return base
}

// BuildPublicURL builds the public path a published site is served from.
// Example: "my-first-site" -> "/sites/published/my-first-site"
func BuildPublicURL(slug string) string {
	return "/sites/published/" + slug
}
