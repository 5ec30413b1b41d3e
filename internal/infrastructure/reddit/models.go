package reddit

// listing is the envelope the listing endpoint wraps every page in.
type listing struct {
	Data struct {
		After    string  `json:"after"`
		Children []child `json:"children"`
	} `json:"data"`
}

type child struct {
	Data childData `json:"data"`
}

// childData covers the subset of post fields the gallery consumes. The API
// sends far more; everything else is ignored on decode.
type childData struct {
	Author           string                   `json:"author"`
	CreatedUTC       float64                  `json:"created_utc"`
	Domain           string                   `json:"domain"`
	IsSelf           bool                     `json:"is_self"`
	IsVideo          bool                     `json:"is_video"`
	IsGallery        bool                     `json:"is_gallery"`
	URL              string                   `json:"url"`
	Thumbnail        string                   `json:"thumbnail"`
	NumComments      int                      `json:"num_comments"`
	Score            int                      `json:"score"`
	Permalink        string                   `json:"permalink"`
	Title            string                   `json:"title"`
	SecureMediaEmbed *mediaEmbed              `json:"secure_media_embed"`
	Media            *mediaContainer          `json:"media"`
	MediaMetadata    map[string]mediaMetadata `json:"media_metadata"`
}

type mediaEmbed struct {
	MediaDomainURL string `json:"media_domain_url"`
}

type mediaContainer struct {
	RedditVideo *redditVideo `json:"reddit_video"`
}

type redditVideo struct {
	HLSURL           string `json:"hls_url"`
	FallbackURL      string `json:"fallback_url"`
	ScrubberMediaURL string `json:"scrubber_media_url"`
}

type mediaMetadata struct {
	MimeType string `json:"m"`
}
