package wpstatic

// PostRecord is one post as fetched from the WordPress API. The fields are
// immutable once fetched; Title and Content hold rendered HTML markup.
type PostRecord struct {
	ID      int64
	Slug    string
	Link    string
	Title   string
	Date    string // ISO timestamp as reported by the API
	Content string
}

// NavLink is one header navigation entry. Relative targets are resolved
// against the page's depth at render time; absolute URLs open in a new tab.
type NavLink struct {
	Label string
	Href  string
}
