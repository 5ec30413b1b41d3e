// Package reddit adapts the Reddit listing API to the gallery domain.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"redgal/internal/domain/gallery"
)

// DefaultBaseURL is the public listing endpoint.
const DefaultBaseURL = "https://www.reddit.com"

const defaultUserAgent = "redgal/1.0"

// Client fetches listing pages over the public JSON API. No authentication
// is used or supported.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Log        *log.Logger
}

// NewClient constructs a Client against baseURL, falling back to
// DefaultBaseURL when empty.
func NewClient(baseURL string, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = log.New()
	}
	return &Client{
		BaseURL:    baseURL,
		UserAgent:  defaultUserAgent,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Log:        logger,
	}
}

// FetchListing retrieves and normalizes one page of a listing. The cursor
// and count are passed through verbatim; an empty cursor starts from the
// beginning.
func (c *Client) FetchListing(ctx context.Context, key gallery.Listing, limit, count int, after string) (gallery.Page, error) {
	endpoint := fmt.Sprintf("%s/r/%s/%s/.json", c.BaseURL, key.Subreddit, key.Sort)

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("count", strconv.Itoa(count))
	q.Set("after", after)
	if key.HasPeriod() {
		q.Set("t", key.Period)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return gallery.Page{}, fmt.Errorf("build listing request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return gallery.Page{}, fmt.Errorf("fetch listing: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return gallery.Page{}, fmt.Errorf("fetch listing: unexpected status %d", resp.StatusCode)
	}

	var l listing
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		return gallery.Page{}, fmt.Errorf("decode listing: %w", err)
	}

	page := normalizePage(l)
	c.Log.WithFields(log.Fields{
		"listing":  key.String(),
		"received": len(l.Data.Children),
		"posts":    len(page.Posts),
		"after":    page.After,
	}).Debug("fetched listing page")

	return page, nil
}
