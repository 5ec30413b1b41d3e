// Package gallery defines the core entities of the media gallery domain.
package gallery

import "fmt"

// Post is one normalized content item. Immutable once created.
type Post struct {
	Author string
	// Created is the publication time in epoch seconds.
	Created int64
	// Domain is the host of the post's original external link, as declared
	// by the content API. Media resolution dispatches on this value, not on
	// any rewritten playback URL.
	Domain string
	// Embed is the provider-supplied embed URL, empty when absent.
	Embed       string
	NumComments int
	// Permalink is the absolute URL back to the source discussion.
	Permalink string
	Score     int
	// Thumbnail is never empty; the normalizer always falls back to a
	// favicon-derived placeholder.
	Thumbnail string
	Title     string
	// URL is the canonical playable/viewable URL. Empty means there is
	// nothing to display.
	URL string
}

// Listing identifies one content stream: a subreddit plus the server-side
// sort order and, for time-windowed sorts, the period.
type Listing struct {
	Subreddit string
	Sort      string
	Period    string
}

// HasPeriod reports whether the listing's sort takes a time-window filter.
func (l Listing) HasPeriod() bool {
	return (l.Sort == "top" || l.Sort == "controversial") && l.Period != ""
}

func (l Listing) String() string {
	if l.HasPeriod() {
		return fmt.Sprintf("/r/%s (%s of %s)", l.Subreddit, l.Sort, l.Period)
	}
	return fmt.Sprintf("/r/%s (%s)", l.Subreddit, l.Sort)
}

// Page is one fetched page of a listing.
type Page struct {
	Posts []Post
	// After is the opaque continuation cursor, empty when the listing is
	// exhausted.
	After string
}
