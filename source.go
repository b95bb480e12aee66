package wpstatic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

// postFields trims the API response to the fields the migration reads.
const postFields = "id,slug,link,title.rendered,date,content.rendered"

// Source fetches posts from a WordPress REST API, one page at a time.
type Source struct {
	apiURL  string
	perPage int
	client  *http.Client
	pacer   *Pacer
}

// NewSource creates a Source for the given posts endpoint.
func NewSource(apiURL string, perPage int, client *http.Client, pacer *Pacer) *Source {
	return &Source{apiURL: apiURL, perPage: perPage, client: client, pacer: pacer}
}

// wpRendered unwraps WordPress's {"rendered": "..."} envelopes.
type wpRendered struct {
	Rendered string `json:"rendered"`
}

type wpPost struct {
	ID      int64      `json:"id"`
	Slug    string     `json:"slug"`
	Link    string     `json:"link"`
	Title   wpRendered `json:"title"`
	Date    string     `json:"date"`
	Content wpRendered `json:"content"`
}

// FetchAll pages through the API until it is exhausted and returns every
// post, newest first. Pagination ends on HTTP 400/404 (WordPress's
// past-the-end responses), a short page, or a body that is not a post
// array; any other non-2xx status is an error.
func (s *Source) FetchAll(ctx context.Context) ([]PostRecord, error) {
	var posts []PostRecord
	for page := 1; ; page++ {
		if page > 1 {
			s.pacer.Wait()
		}
		batch, done, err := s.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		posts = append(posts, batch...)
		if done {
			break
		}
	}

	// ISO timestamps sort correctly as strings.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts, nil
}

func (s *Source) fetchPage(ctx context.Context, page int) ([]PostRecord, bool, error) {
	reqURL := fmt.Sprintf("%s?per_page=%d&page=%d&_embed=1&_fields=%s", s.apiURL, s.perPage, page, postFields)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, true, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("fetch page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		return nil, true, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, true, fmt.Errorf("fetch page %d: unexpected status %s", page, resp.Status)
	}

	var raw []wpPost
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		// Not a post array; treat like an empty page.
		return nil, true, nil
	}
	if len(raw) == 0 {
		return nil, true, nil
	}

	batch := make([]PostRecord, 0, len(raw))
	for _, p := range raw {
		batch = append(batch, PostRecord{
			ID:      p.ID,
			Slug:    p.Slug,
			Link:    p.Link,
			Title:   p.Title.Rendered,
			Date:    p.Date,
			Content: p.Content.Rendered,
		})
	}
	return batch, len(raw) < s.perPage, nil
}
