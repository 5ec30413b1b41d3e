package usecase

import (
	"redgal/internal/domain/gallery"
)

// PageRequest describes one listing page fetch. Gen ties the eventual
// result back to the pager state that issued it, so results from a
// listing the user has already left are discarded.
type PageRequest struct {
	Key   gallery.Listing
	Count int
	After string
	Gen   int
}

// Pager accumulates listing pages and enforces single-flight fetching:
// at most one page request is outstanding at a time, and no further
// requests are issued after an error or after the listing is exhausted.
type Pager struct {
	key       gallery.Listing
	limit     int
	posts     []gallery.Post
	count     int
	after     string
	gen       int
	loading   bool
	err       error
	exhausted bool
}

// NewPager constructs a Pager for the given listing key.
func NewPager(key gallery.Listing, limit int) *Pager {
	return &Pager{key: key, limit: limit}
}

// Key returns the listing this pager accumulates.
func (p *Pager) Key() gallery.Listing { return p.key }

// Posts returns the accumulated posts in arrival order.
func (p *Pager) Posts() []gallery.Post { return p.posts }

// Loading reports whether a page request is outstanding.
func (p *Pager) Loading() bool { return p.loading }

// Err returns the error that stopped pagination, if any.
func (p *Pager) Err() error { return p.err }

// HasMore reports whether another page can still be requested.
func (p *Pager) HasMore() bool {
	return !p.exhausted && p.err == nil
}

// BeginFetch issues the next page request. It returns false when a
// request is already in flight, a previous fetch failed, or the listing
// is exhausted; callers simply skip the fetch in that case.
func (p *Pager) BeginFetch() (PageRequest, bool) {
	if p.loading || p.err != nil || p.exhausted {
		return PageRequest{}, false
	}
	p.loading = true
	return PageRequest{
		Key:   p.key,
		Count: p.count,
		After: p.after,
		Gen:   p.gen,
	}, true
}

// ApplyResult folds a completed fetch into the pager. Results whose
// generation no longer matches are stale and ignored. It reports
// whether the pager state changed.
func (p *Pager) ApplyResult(req PageRequest, page gallery.Page, err error) bool {
	if req.Gen != p.gen {
		return false
	}
	p.loading = false
	if err != nil {
		p.err = err
		return true
	}
	if req.Count == 0 {
		p.posts = page.Posts
	} else {
		p.posts = append(p.posts, page.Posts...)
	}
	p.count += p.limit
	p.after = page.After
	if page.After == "" {
		p.exhausted = true
	}
	return true
}

// Reset discards all accumulated state and switches to a new listing
// key. In-flight results for the old state become stale.
func (p *Pager) Reset(key gallery.Listing) {
	p.key = key
	p.posts = nil
	p.count = 0
	p.after = ""
	p.gen++
	p.loading = false
	p.err = nil
	p.exhausted = false
}

// Refresh re-fetches the current listing from the start.
func (p *Pager) Refresh() { p.Reset(p.key) }
