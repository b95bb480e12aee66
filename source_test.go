package wpstatic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postJSON(id int64, slug, date string) wpPost {
	return wpPost{
		ID:      id,
		Slug:    slug,
		Link:    "https://example.org/" + slug + "/",
		Title:   wpRendered{Rendered: "Post " + slug},
		Date:    date,
		Content: wpRendered{Rendered: "<p>content</p>"},
	}
}

func servePages(t *testing.T, pages map[string][]wpPost, tail int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		batch, ok := pages[page]
		if !ok {
			w.WriteHeader(tail)
			return
		}
		json.NewEncoder(w).Encode(batch)
	}))
}

func TestFetchAllPaginatesUntilShortPage(t *testing.T) {
	pages := map[string][]wpPost{
		"1": {postJSON(1, "a", "2024-01-01T00:00:00"), postJSON(2, "b", "2024-03-01T00:00:00")},
		"2": {postJSON(3, "c", "2024-02-01T00:00:00")},
	}
	srv := servePages(t, pages, http.StatusBadRequest)
	defer srv.Close()

	s := NewSource(srv.URL, 2, srv.Client(), NewPacer(0))
	posts, err := s.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	// Newest first.
	want := []string{"b", "c", "a"}
	for i, slug := range want {
		if posts[i].Slug != slug {
			t.Errorf("posts[%d].Slug = %q, want %q", i, posts[i].Slug, slug)
		}
	}
	if posts[0].Title != "Post b" || posts[0].Content != "<p>content</p>" {
		t.Errorf("rendered fields not unwrapped: %+v", posts[0])
	}
}

func TestFetchAllStopsOnNotFound(t *testing.T) {
	pages := map[string][]wpPost{
		"1": {postJSON(1, "a", "2024-01-01T00:00:00"), postJSON(2, "b", "2024-02-01T00:00:00")},
	}
	srv := servePages(t, pages, http.StatusNotFound)
	defer srv.Close()

	s := NewSource(srv.URL, 2, srv.Client(), NewPacer(0))
	posts, err := s.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("got %d posts, want 2", len(posts))
	}
}

func TestFetchAllEmptySource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]")
	}))
	defer srv.Close()

	s := NewSource(srv.URL, 100, srv.Client(), NewPacer(0))
	posts, err := s.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d posts, want 0", len(posts))
	}
}

func TestFetchAllServerErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewSource(srv.URL, 100, srv.Client(), NewPacer(0))
	if _, err := s.FetchAll(context.Background()); err == nil {
		t.Fatalf("expected error on 500 response")
	}
}

func TestFetchAllNonArrayBodyEndsPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":"rest_post_invalid_page_number"}`)
	}))
	defer srv.Close()

	s := NewSource(srv.URL, 100, srv.Client(), NewPacer(0))
	posts, err := s.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d posts, want 0", len(posts))
	}
}
