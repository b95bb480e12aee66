package wpstatic

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// pathDepth selects how far below the site root a page lives. It is the
// only thing that differs between the fixed chrome of the index page and a
// post page.
type pathDepth int

const (
	depthRoot pathDepth = iota // blog.html at the site root
	depthPost                  // blog/<slug>.html, one level deep
)

func (d pathDepth) prefix() string {
	if d == depthPost {
		return "../"
	}
	return ""
}

// Renderer produces complete HTML documents for post pages and the blog
// index. It is pure: output depends only on the site config captured at
// construction and the arguments, so identical input renders identical bytes.
type Renderer struct {
	cfg Config
}

// NewRenderer creates a Renderer for the given site config.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// PostPage returns the full document for one post. Title and content are
// rendered markup from the source and embedded as-is.
func (r *Renderer) PostPage(title, date, content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		r.writePostPage(&buf, title, date, content)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// IndexPage returns the blog index document listing every post, newest
// first, with links into blog/<slug>.html.
func (r *Renderer) IndexPage(posts []PostRecord) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		r.writeIndexPage(&buf, posts)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func (r *Renderer) writePostPage(buf *bytes.Buffer, title, date, content string) {
	r.writeHead(buf, title+" - "+r.cfg.Name, depthPost)
	r.writeHeader(buf, depthPost)
	buf.WriteString(`    <section class="hero">
        <div class="container">
            <h2 class="hero-title">` + title + `</h2>
            <p class="hero-subtitle">` + date + `</p>
            <div class="underline"></div>
        </div>
    </section>
    <main class="main-content">
        <div class="container">
            <article class="post-card">
                <div class="post-content">` + content + `</div>
            </article>
        </div>
    </main>
`)
	r.writeFooter(buf)
}

func (r *Renderer) writeIndexPage(buf *bytes.Buffer, posts []PostRecord) {
	r.writeHead(buf, "Blog - "+r.cfg.Name, depthRoot)
	r.writeHeader(buf, depthRoot)
	buf.WriteString(`    <section class="hero">
        <div class="container">
            <h2 class="hero-title">Blog</h2>
            <div class="underline"></div>
        </div>
    </section>
    <main class="main-content">
        <div class="container">
            <section class="blog-index">
                <ul class="post-list">
`)
	for _, p := range posts {
		title := p.Title
		if title == "" {
			title = "Untitled"
		}
		buf.WriteString(`                    <li class="post-list-item"><a href="blog/` + p.Slug + `.html">` + title + `</a><span class="post-date">` + FormatDate(p.Date) + `</span></li>
`)
	}
	buf.WriteString(`                </ul>
            </section>
        </div>
    </main>
`)
	r.writeFooter(buf)
}

func (r *Renderer) writeHead(buf *bytes.Buffer, pageTitle string, depth pathDepth) {
	buf.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <title>` + pageTitle + `</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <link rel="stylesheet" href="` + depth.prefix() + r.cfg.StylesPath + `">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Playfair+Display:wght@400;500;600;700&family=Lora:wght@400;500;600&display=swap" rel="stylesheet">
</head>
<body>
`)
}

func (r *Renderer) writeHeader(buf *bytes.Buffer, depth pathDepth) {
	buf.WriteString(`    <header class="header">
        <div class="container">
            <h1 class="logo"><a href="` + depth.prefix() + `index.html">` + strings.ToUpper(r.cfg.Name) + `</a></h1>
            <nav class="nav">
`)
	for _, link := range r.cfg.NavLinks {
		if strings.HasPrefix(link.Href, "http://") || strings.HasPrefix(link.Href, "https://") {
			buf.WriteString(`                <a href="` + link.Href + `" target="_blank">` + link.Label + `</a>
`)
			continue
		}
		buf.WriteString(`                <a href="` + depth.prefix() + link.Href + `">` + link.Label + `</a>
`)
	}
	buf.WriteString(`            </nav>
        </div>
    </header>
`)
}

func (r *Renderer) writeFooter(buf *bytes.Buffer) {
	owner := r.cfg.Author
	if owner == "" {
		owner = r.cfg.Name
	}
	buf.WriteString(`    <footer class="footer">
        <div class="container">
            <p>&copy; ` + owner + `. All rights reserved.</p>
        </div>
    </footer>
</body>
</html>
`)
}
