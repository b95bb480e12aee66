package wpstatic

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderToString(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func testRenderer() *Renderer {
	cfg := Config{Name: "Katie Kormanik", Author: "Katie Kormanik"}
	cfg.setDefaults()
	return NewRenderer(cfg)
}

func TestPostPageDeterministic(t *testing.T) {
	r := testRenderer()
	first := renderToString(t, r.PostPage("Hello World", "January 05, 2024", "<p>body</p>"))
	second := renderToString(t, r.PostPage("Hello World", "January 05, 2024", "<p>body</p>"))

	if first != second {
		t.Errorf("identical input rendered different bytes")
	}
}

func TestPostPageStructure(t *testing.T) {
	r := testRenderer()
	got := renderToString(t, r.PostPage("Hello World", "January 05, 2024", "<p>body</p>"))

	checks := []string{
		"<title>Hello World - Katie Kormanik</title>",
		`<h2 class="hero-title">Hello World</h2>`,
		`<p class="hero-subtitle">January 05, 2024</p>`,
		`<div class="post-content"><p>body</p></div>`,
		`<link rel="stylesheet" href="../styles.css">`,
		`<a href="../index.html">KATIE KORMANIK</a>`,
		`<a href="../blog.html">Blog</a>`,
		"fonts.googleapis.com/css2?family=Playfair+Display",
		"&copy; Katie Kormanik. All rights reserved.",
	}
	for _, want := range checks {
		if !strings.Contains(got, want) {
			t.Errorf("post page missing %q", want)
		}
	}
}

func TestIndexPageStructure(t *testing.T) {
	r := testRenderer()
	posts := []PostRecord{
		{Slug: "hello-world", Title: "Hello World", Date: "2024-01-05T12:00:00"},
		{Slug: "untitled-post", Title: "", Date: "2023-12-01T08:30:00"},
	}
	got := renderToString(t, r.IndexPage(posts))

	checks := []string{
		"<title>Blog - Katie Kormanik</title>",
		`<a href="blog/hello-world.html">Hello World</a>`,
		`<span class="post-date">January 05, 2024</span>`,
		`<a href="blog/untitled-post.html">Untitled</a>`,
		`<link rel="stylesheet" href="styles.css">`,
		`<a href="index.html">KATIE KORMANIK</a>`,
	}
	for _, want := range checks {
		if !strings.Contains(got, want) {
			t.Errorf("index page missing %q", want)
		}
	}
	if strings.Contains(got, `href="../`) {
		t.Errorf("root-level index should not climb out of the site root")
	}
}

func TestHeaderExternalNavOpensNewTab(t *testing.T) {
	cfg := Config{
		Name: "Blog",
		NavLinks: []NavLink{
			{Label: "About", Href: "https://www.linkedin.com/in/someone/"},
		},
	}
	cfg.setDefaults()
	got := renderToString(t, NewRenderer(cfg).PostPage("T", "D", ""))

	if !strings.Contains(got, `<a href="https://www.linkedin.com/in/someone/" target="_blank">About</a>`) {
		t.Errorf("external nav link not rendered with target=_blank: %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2024-01-05T12:00:00", "January 05, 2024"},
		{"2024-01-05T12:00:00Z", "January 05, 2024"},
		{"2023-12-25T00:00:00+02:00", "December 25, 2023"},
		{"not a date", "not a date"},
		{"", ""},
	}
	for _, tt := range tests {
		got := FormatDate(tt.input)
		if got != tt.expected {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
