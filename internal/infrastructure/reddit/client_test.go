package reddit

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redgal/internal/domain/gallery"
)

func testLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

const listingBody = `{
	"data": {
		"after": "t3_next",
		"children": [
			{"data": {"title": "a post", "url": "https://i.redd.it/a.png", "domain": "i.redd.it", "author": "alice", "score": 12, "num_comments": 3, "permalink": "/r/pics/comments/1/a/", "created_utc": 1700000000}},
			{"data": {"title": "a self post", "is_self": true}}
		]
	}
}`

func TestFetchListing(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	key := gallery.Listing{Subreddit: "pics", Sort: "top", Period: "week"}
	page, err := client.FetchListing(context.Background(), key, 25, 50, "t3_prev")
	require.NoError(t, err)

	assert.Equal(t, "/r/pics/top/.json", gotPath)
	assert.Equal(t, []string{"25"}, gotQuery["limit"])
	assert.Equal(t, []string{"50"}, gotQuery["count"])
	assert.Equal(t, []string{"t3_prev"}, gotQuery["after"])
	assert.Equal(t, []string{"week"}, gotQuery["t"])

	require.Len(t, page.Posts, 1)
	assert.Equal(t, "a post", page.Posts[0].Title)
	assert.Equal(t, "alice", page.Posts[0].Author)
	assert.Equal(t, int64(1700000000), page.Posts[0].Created)
	assert.Equal(t, "t3_next", page.After)
}

func TestFetchListingOmitsPeriodForUnwindowedSorts(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"data": {"after": null, "children": []}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	key := gallery.Listing{Subreddit: "all", Sort: "new", Period: "week"}
	page, err := client.FetchListing(context.Background(), key, 25, 0, "")
	require.NoError(t, err)

	assert.NotContains(t, gotQuery, "t")
	assert.Empty(t, page.Posts)
	assert.Empty(t, page.After)
}

func TestFetchListingUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"data": {"after": null, "children": []}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	_, err := client.FetchListing(context.Background(), gallery.Listing{Subreddit: "all", Sort: "new"}, 25, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "redgal/1.0", gotUA)
}

func TestFetchListingStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	_, err := client.FetchListing(context.Background(), gallery.Listing{Subreddit: "all", Sort: "new"}, 25, 0, "")
	assert.Error(t, err)
}

func TestFetchListingDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	_, err := client.FetchListing(context.Background(), gallery.Listing{Subreddit: "all", Sort: "new"}, 25, 0, "")
	assert.Error(t, err)
}
