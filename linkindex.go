package wpstatic

import (
	"net/url"
	"strings"
)

// LinkIndex maps normalized canonical post URLs to local slugs. It is built
// once per run and read-only during localization.
type LinkIndex map[string]string

// NormalizeURL strips the query string, fragment, and trailing path slash
// from a URL so that equivalent post links compare equal. Scheme and host
// are left untouched. Unparseable input is returned unchanged.
func NormalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// BuildLinkIndex indexes every post's normalized canonical link. Records
// with an empty link or slug are skipped. If two posts normalize to the
// same link, the later one in fetch order wins.
func BuildLinkIndex(posts []PostRecord) LinkIndex {
	idx := make(LinkIndex, len(posts))
	for _, p := range posts {
		link := NormalizeURL(p.Link)
		if link != "" && p.Slug != "" {
			idx[link] = p.Slug
		}
	}
	return idx
}

// Resolve maps a hyperlink target to an indexed slug. An exact match on the
// normalized URL always wins; failing that, the target's path is scanned for
// any indexed slug appearing as a complete path segment. Targets matching
// neither are external and reported as no match.
//
// The segment scan is a heuristic: a slug that equals a path segment of an
// unrelated URL will match. It is kept in this one place so it can be tuned
// without touching callers.
func (idx LinkIndex) Resolve(href string) (string, bool) {
	norm := NormalizeURL(href)
	if slug, ok := idx[norm]; ok {
		return slug, true
	}

	u, err := url.Parse(norm)
	if err != nil {
		return "", false
	}
	padded := "/" + strings.Trim(u.Path, "/") + "/"
	for _, slug := range idx {
		if strings.Contains(padded, "/"+slug+"/") {
			return slug, true
		}
	}
	return "", false
}
