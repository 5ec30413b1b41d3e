// Package usecase contains application-level services.
package usecase

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"redgal/internal/domain/gallery"
)

// ListingFetcher abstracts fetching one page of a subreddit listing.
type ListingFetcher interface {
	FetchListing(ctx context.Context, key gallery.Listing, limit, count int, after string) (gallery.Page, error)
}

// BrowseService coordinates listing fetches against the Reddit API.
type BrowseService struct {
	Fetcher ListingFetcher
	Limit   int
	Log     *log.Logger
}

// NewBrowseService constructs a BrowseService.
func NewBrowseService(fetcher ListingFetcher, limit int, logger *log.Logger) BrowseService {
	return BrowseService{
		Fetcher: fetcher,
		Limit:   limit,
		Log:     logger,
	}
}

// FetchPage executes a page request produced by a Pager.
func (s BrowseService) FetchPage(ctx context.Context, req PageRequest) (gallery.Page, error) {
	page, err := s.Fetcher.FetchListing(ctx, req.Key, s.Limit, req.Count, req.After)
	if err != nil {
		if s.Log != nil {
			s.Log.WithError(err).WithField("listing", req.Key.String()).Warn("page fetch failed")
		}
		return gallery.Page{}, fmt.Errorf("fetch %s: %w", req.Key.String(), err)
	}
	return page, nil
}

// ParseListing interprets user input as a listing key, accepting either a
// bare subreddit name or a "/r/name" style path.
func ParseListing(input, sort, period string) (gallery.Listing, error) {
	trimmed := strings.TrimSpace(input)
	trimmed = strings.TrimPrefix(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "r/")
	trimmed = strings.Trim(trimmed, "/")
	if trimmed == "" {
		return gallery.Listing{}, fmt.Errorf("subreddit name is empty")
	}
	if strings.ContainsAny(trimmed, " \t\r\n") {
		return gallery.Listing{}, fmt.Errorf("subreddit name contains whitespace")
	}
	return gallery.Listing{Subreddit: trimmed, Sort: sort, Period: period}, nil
}
