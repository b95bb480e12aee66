package wpstatic

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/image/draw"
)

const (
	jpegQuality = 80

	// Some hosts refuse image requests without a browser User-Agent.
	downloadUserAgent = "Mozilla/5.0"

	// Post pages live at blog/<slug>.html, so localized image references
	// climb one level before descending into the per-post directory.
	imageRelPrefix = "../images/blog"
)

var reUnsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename replaces every run of characters outside
// [A-Za-z0-9._-] with a single hyphen and trims leading/trailing hyphens.
func SanitizeFilename(name string) string {
	return strings.Trim(reUnsafeFilename.ReplaceAllString(name, "-"), "-")
}

// MediaLocalizer downloads remote images into a per-post directory tree and
// rewrites references to relative local paths. Files already on disk are
// never re-fetched, so repeated runs only download what is missing.
type MediaLocalizer struct {
	client    *http.Client
	pacer     *Pacer
	logger    *log.Logger
	imagesDir string // on-disk images root, e.g. <out>/images/blog
	maxWidth  int    // 0 disables downscaling
}

// NewMediaLocalizer creates a MediaLocalizer writing under imagesDir.
func NewMediaLocalizer(imagesDir string, maxWidth int, client *http.Client, pacer *Pacer, logger *log.Logger) *MediaLocalizer {
	return &MediaLocalizer{
		client:    client,
		pacer:     pacer,
		logger:    logger,
		imagesDir: imagesDir,
		maxWidth:  maxWidth,
	}
}

// Localize ensures a local copy of rawURL exists for the given post slug and
// returns the relative path a post page should reference. Every failure is
// soft: the original URL comes back unchanged and the run continues.
func (m *MediaLocalizer) Localize(ctx context.Context, rawURL, slug string) string {
	if rawURL == "" {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	filename := SanitizeFilename(path.Base(u.Path))
	if filename == "" || filename == "." {
		filename = fmt.Sprintf("img-%d.jpg", time.Now().UnixMilli())
	}

	dir := filepath.Join(m.imagesDir, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logf("create image dir %s: %v", dir, err)
		return rawURL
	}

	local := filepath.Join(dir, filename)
	if _, err := os.Stat(local); err == nil {
		return path.Join(imageRelPrefix, slug, filename)
	}

	data, err := m.download(ctx, rawURL)
	if err != nil {
		m.logf("download %s: %v", rawURL, err)
		return rawURL
	}
	if m.maxWidth > 0 {
		data = downscaleJPEG(data, m.maxWidth)
	}
	if err := os.WriteFile(local, data, 0o644); err != nil {
		m.logf("write %s: %v", local, err)
		return rawURL
	}
	return path.Join(imageRelPrefix, slug, filename)
}

func (m *MediaLocalizer) download(ctx context.Context, rawURL string) ([]byte, error) {
	m.pacer.Wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", downloadUserAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (m *MediaLocalizer) logf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
	}
}

// downscaleJPEG resizes a JPEG wider than maxWidth down to it, preserving
// aspect ratio. Non-JPEG data and anything that fails to decode or encode
// passes through untouched, keeping filenames and bytes stable.
func downscaleJPEG(data []byte, maxWidth int) []byte {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil || format != "jpeg" {
		return data
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth {
		return data
	}

	newH := h * maxWidth / w
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return data
	}
	return buf.Bytes()
}
