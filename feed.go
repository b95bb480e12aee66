package wpstatic

import (
	"encoding/xml"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const excerptLength = 240

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// WriteFeed writes an RSS 2.0 feed for the exported site. Item links point
// at the static post pages under the canonical site URL.
func WriteFeed(w io.Writer, cfg Config, posts []PostRecord) error {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, p.Date); err == nil {
				pubDate = t.Format(time.RFC1123Z)
				break
			}
		}
		postURL := pageURL(cfg.URL, "blog/"+p.Slug+".html")
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: Excerpt(p.Content, excerptLength),
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        cfg.URL,
			Description: cfg.Description,
			Items:       items,
		},
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(feed)
}

// pageURL joins a page path onto the canonical site URL without the
// trailing slash BuildURL adds, since static pages are .html files.
func pageURL(base, page string) string {
	return strings.TrimRight(base, "/") + "/" + page
}

// Excerpt reduces rendered markup to a plain-text summary of at most max
// runes for use in feed descriptions.
func Excerpt(rawHTML string, max int) string {
	text := rawHTML
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML)); err == nil {
		text = doc.Text()
	}
	text = collapseWhitespace(text)
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimRight(string(runes[:max]), " ") + "…"
}
