package wpstatic

import (
	"encoding/xml"
	"io"
	"time"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes a sitemap covering the blog index and every post page.
func WriteSitemap(w io.Writer, cfg Config, posts []PostRecord) error {
	urls := []sitemapURL{
		{Loc: pageURL(cfg.URL, "blog.html")},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     pageURL(cfg.URL, "blog/"+p.Slug+".html"),
			LastMod: lastMod(p.Date),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}

// lastMod reduces an API timestamp to the W3C date sitemaps expect.
func lastMod(iso string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
