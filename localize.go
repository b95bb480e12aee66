package wpstatic

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// imgSourceAttrs is the ordered list of attributes checked for an image's
// effective source: the direct src first, then lazy-load fallbacks, then
// the original-file fallback.
var imgSourceAttrs = []string{
	"src",
	"data-src",
	"data-lazy-src",
	"data-full-url",
	"data-orig-file",
}

// imgStripAttrs are removed from every localized image so nothing keeps
// pointing at remote variants or stale sizing hints.
var imgStripAttrs = []string{
	"srcset",
	"sizes",
	"decoding",
	"loading",
	"data-src",
	"data-lazy-src",
	"data-full-url",
	"data-orig-file",
}

// MediaResolver maps a remote image URL to the reference a post page should
// embed. Implementations must fail soft and return the input on error.
type MediaResolver interface {
	Localize(ctx context.Context, rawURL, slug string) string
}

// ContentLocalizer rewrites one post's rendered markup for the static site:
// it strips non-content widgets, localizes image sources through the
// MediaResolver, and rewrites internal post links against the LinkIndex.
type ContentLocalizer struct {
	index     LinkIndex
	media     MediaResolver
	selectors []string
}

// NewContentLocalizer creates a ContentLocalizer. selectors is the widget
// denylist; subtrees matching any of them are dropped from the output.
func NewContentLocalizer(index LinkIndex, media MediaResolver, selectors []string) *ContentLocalizer {
	return &ContentLocalizer{index: index, media: media, selectors: selectors}
}

// Localize returns the localized content fragment for a post. The parser is
// lenient with real-world CMS markup; malformed or missing attributes on
// individual elements are treated as absent, never as errors. If the
// fragment cannot be parsed at all, the input comes back unchanged.
func (l *ContentLocalizer) Localize(ctx context.Context, rawHTML, slug string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}

	for _, sel := range l.selectors {
		doc.Find(sel).Remove()
	}

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := ""
		for _, attr := range imgSourceAttrs {
			if v, ok := img.Attr(attr); ok && v != "" {
				src = v
				break
			}
		}
		if src == "" {
			return
		}
		img.SetAttr("src", l.media.Localize(ctx, src, slug))
		for _, attr := range imgStripAttrs {
			img.RemoveAttr(attr)
		}
	})

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if href == "" {
			return
		}
		if target, ok := l.index.Resolve(href); ok {
			a.SetAttr("href", "./"+target+".html")
		}
	})

	// Only the body's children go into the page; the parser's synthetic
	// html/head wrappers stay out.
	fragment, err := doc.Find("body").Html()
	if err != nil {
		return rawHTML
	}
	return fragment
}
