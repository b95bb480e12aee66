package wpstatic

import (
	"log"
	"net/http"
	"time"
)

// Config holds all configuration for a migration run.
type Config struct {
	APIURL string // Required: WordPress posts endpoint, e.g. https://example.org/wp-json/wp/v2/posts

	Name        string // Site name used in page titles and the header logo (default "Blog")
	URL         string // Canonical site URL for the feed and sitemap (default "http://localhost:3000")
	Description string // Site description for the RSS channel
	Author      string // Author name for the footer copyright line

	OutputDir  string    // Root of the generated site (default "site")
	StylesPath string    // Stylesheet path relative to the site root (default "styles.css")
	NavLinks   []NavLink // Header navigation (default Learn + Blog)

	// WidgetSelectors are CSS selectors whose subtrees are removed from post
	// content before localization. Defaults to the known Jetpack/sharing blocks.
	WidgetSelectors []string

	// MaxImageWidth, when non-zero, downscales downloaded JPEGs wider than
	// this to it. Zero keeps every image as an exact byte copy.
	MaxImageWidth int

	PerPage        int           // API page size (default 100)
	PageDelay      time.Duration // Pause between page and image requests (default 200ms)
	RequestTimeout time.Duration // Per-request HTTP timeout (default 30s)
}

// DefaultWidgetSelectors matches the share/subscribe widgets WordPress
// injects into rendered content. These are chrome, not content.
var DefaultWidgetSelectors = []string{
	".sharedaddy",
	".sd-sharing-enabled",
	".jp-relatedposts",
	".wp-block-jetpack-subscriptions",
	".wp-block-jetpack-contact-form",
}

func (c *Config) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.OutputDir == "" {
		c.OutputDir = "site"
	}
	if c.StylesPath == "" {
		c.StylesPath = "styles.css"
	}
	if c.NavLinks == nil {
		c.NavLinks = []NavLink{
			{Label: "Learn", Href: "learn.html"},
			{Label: "Blog", Href: "blog.html"},
		}
	}
	if c.WidgetSelectors == nil {
		c.WidgetSelectors = DefaultWidgetSelectors
	}
	if c.PerPage == 0 {
		c.PerPage = 100
	}
	if c.PageDelay == 0 {
		c.PageDelay = 200 * time.Millisecond
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 30 * time.Second
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithHTTPClient replaces the HTTP client used for page and image fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(a *App) {
		a.client = client
	}
}

// WithLogger replaces the progress logger (default stderr).
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}
