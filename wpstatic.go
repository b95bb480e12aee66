// Package wpstatic migrates a WordPress blog into a static HTML site.
// It fetches every post from the site's REST API, downloads embedded
// images into a local tree, rewrites internal links to the generated
// pages, and renders one HTML document per post plus a blog index.
//
// Runs are idempotent: pages are always overwritten, images already on
// disk are never re-fetched, and no state exists outside the output tree.
package wpstatic

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
)

// ErrNoPosts is returned by Run when the remote source yields no posts at
// all. Nothing has been written when this is returned.
var ErrNoPosts = errors.New("wpstatic: no posts found")

// App is the migration driver. It wires together the source, the link
// index, the media and content localizers, and the renderer.
type App struct {
	Config Config
	Source *Source

	client *http.Client
	pacer  *Pacer
	logger *log.Logger
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.client == nil {
		a.client = &http.Client{Timeout: cfg.RequestTimeout}
	}
	// One pacer covers page and image requests alike so the remote host
	// never sees back-to-back calls.
	a.pacer = NewPacer(cfg.PageDelay)
	a.Source = NewSource(cfg.APIURL, cfg.PerPage, a.client, a.pacer)

	return a
}

// Run executes the full migration: fetch, index, localize, render, write.
// Posts are processed strictly sequentially, newest first.
func (a *App) Run(ctx context.Context) error {
	cfg := a.Config
	if cfg.APIURL == "" {
		return fmt.Errorf("wpstatic: APIURL is required")
	}

	a.logger.Printf("fetching posts from %s", cfg.APIURL)
	posts, err := a.Source.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("wpstatic: fetch posts: %w", err)
	}
	if len(posts) == 0 {
		return ErrNoPosts
	}

	index := BuildLinkIndex(posts)

	blogDir := filepath.Join(cfg.OutputDir, "blog")
	imagesDir := filepath.Join(cfg.OutputDir, "images", "blog")
	for _, dir := range []string{blogDir, imagesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("wpstatic: create %s: %w", dir, err)
		}
	}

	media := NewMediaLocalizer(imagesDir, cfg.MaxImageWidth, a.client, a.pacer, a.logger)
	localizer := NewContentLocalizer(index, media, cfg.WidgetSelectors)
	renderer := NewRenderer(cfg)

	a.logger.Printf("generating %d post pages", len(posts))
	for _, p := range posts {
		content := localizer.Localize(ctx, p.Content, p.Slug)
		title := p.Title
		if title == "" {
			title = "Untitled"
		}
		page := renderer.PostPage(title, FormatDate(p.Date), content)
		out := filepath.Join(blogDir, p.Slug+".html")
		if err := writeComponent(ctx, out, page); err != nil {
			return fmt.Errorf("wpstatic: write post %s: %w", p.Slug, err)
		}
	}

	a.logger.Printf("generating blog index")
	if err := writeComponent(ctx, filepath.Join(cfg.OutputDir, "blog.html"), renderer.IndexPage(posts)); err != nil {
		return fmt.Errorf("wpstatic: write index: %w", err)
	}

	if err := writeXML(filepath.Join(cfg.OutputDir, "feed.xml"), func(f *os.File) error {
		return WriteFeed(f, cfg, posts)
	}); err != nil {
		return fmt.Errorf("wpstatic: write feed: %w", err)
	}
	if err := writeXML(filepath.Join(cfg.OutputDir, "sitemap.xml"), func(f *os.File) error {
		return WriteSitemap(f, cfg, posts)
	}); err != nil {
		return fmt.Errorf("wpstatic: write sitemap: %w", err)
	}

	a.logger.Printf("done: %d posts in %s", len(posts), cfg.OutputDir)
	return nil
}

func writeComponent(ctx context.Context, path string, cmp templ.Component) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cmp.Render(ctx, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeXML(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
