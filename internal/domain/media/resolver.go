// Package media decides how a post's external link is rendered: as an
// inline image, a native or adaptive video player, a provider embed, or not
// at all. Dispatch is keyed on the post's original-link domain.
package media

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"redgal/internal/domain/gallery"
)

// Renderer identifies the surface a resolved post should be shown with.
type Renderer int

const (
	// RendererNone means there is nothing to display for the post.
	RendererNone Renderer = iota
	// RendererImage is a plain inline image.
	RendererImage
	// RendererVideo is a native progressive video player.
	RendererVideo
	// RendererStream is an adaptive (HLS) stream player.
	RendererStream
	// RendererEmbed is a provider-hosted iframe.
	RendererEmbed
	// RendererTweet is a tweet card keyed by tweet id.
	RendererTweet
)

func (r Renderer) String() string {
	switch r {
	case RendererImage:
		return "image"
	case RendererVideo:
		return "video"
	case RendererStream:
		return "stream"
	case RendererEmbed:
		return "embed"
	case RendererTweet:
		return "tweet"
	default:
		return "none"
	}
}

// Resolution pairs a renderer with the target it should display.
type Resolution struct {
	Renderer Renderer
	// Src is the image/video/embed URL. Empty for RendererNone and
	// RendererTweet.
	Src string
	// TweetID is set only for RendererTweet.
	TweetID string
}

// Config carries the provider-specific values embeds are built with.
type Config struct {
	// EmbedParent is the parent domain Twitch requires on its embed URLs.
	EmbedParent string
	// NitterHost serves tweet embeds for links that carry no provider embed.
	NitterHost string
}

// Resolver maps posts to resolutions through an ordered rule table.
// The first matching rule wins; posts matching no rule fall through to the
// generic image/thumbnail cascade and finally to RendererNone. Unrecognized
// domains are never an error.
type Resolver struct {
	rules []rule
}

type rule struct {
	match   func(p gallery.Post, u *url.URL) bool
	resolve func(p gallery.Post, u *url.URL) Resolution
}

// NewResolver builds a resolver with the rule table bound to cfg.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{rules: buildRules(cfg)}
}

// Resolve picks the renderer for p. It never fails: posts with an empty or
// unparsable URL degrade through the thumbnail fallback to RendererNone.
func (r *Resolver) Resolve(p gallery.Post) Resolution {
	if p.URL == "" {
		return Resolution{Renderer: RendererNone}
	}
	u, err := url.Parse(p.URL)
	if err != nil {
		return genericResolution(p, "")
	}
	for _, rule := range r.rules {
		if rule.match(p, u) {
			return rule.resolve(p, u)
		}
	}
	return genericResolution(p, u.Path)
}

var (
	twitterProfilePattern = regexp.MustCompile(`^/\w+/?$`)
	tweetMediaSuffix      = regexp.MustCompile(`/(photo|video)/[0-9]$`)
	tweetRetweetsSuffix   = regexp.MustCompile(`/retweets/with_comments$`)
)

func buildRules(cfg Config) []rule {
	return []rule{
		{
			// Direct mp4 links play natively regardless of domain.
			match: func(p gallery.Post, _ *url.URL) bool {
				return strings.HasSuffix(p.URL, ".mp4")
			},
			resolve: func(p gallery.Post, _ *url.URL) Resolution {
				return Resolution{Renderer: RendererVideo, Src: p.URL}
			},
		},
		{
			match: domainIs("giphy.com"),
			resolve: func(_ gallery.Post, u *url.URL) Resolution {
				id := strings.TrimPrefix(u.Path, "/gifs/")
				id = strings.TrimPrefix(id, "/")
				id = strings.Replace(id, "reaction-", "", 1)
				return Resolution{Renderer: RendererEmbed, Src: "https://giphy.com/embed/" + id}
			},
		},
		{
			match: domainIs("v.redd.it"),
			resolve: func(p gallery.Post, _ *url.URL) Resolution {
				return Resolution{Renderer: RendererStream, Src: p.URL}
			},
		},
		{
			match: domainIs("streamable.com"),
			resolve: func(_ gallery.Post, u *url.URL) Resolution {
				return Resolution{Renderer: RendererEmbed, Src: "https://streamable.com/e/" + lastSegment(u.Path) + "?autoplay=1"}
			},
		},
		{
			match: domainIs("gfycat.com"),
			resolve: func(_ gallery.Post, u *url.URL) Resolution {
				return Resolution{Renderer: RendererEmbed, Src: "https://gfycat.com/ifr/" + lastSegment(u.Path)}
			},
		},
		{
			match: domainIs("clips.twitch.tv"),
			resolve: func(_ gallery.Post, u *url.URL) Resolution {
				return Resolution{Renderer: RendererEmbed, Src: twitchClipEmbed(strings.TrimPrefix(u.Path, "/"), cfg.EmbedParent)}
			},
		},
		{
			// Clip pages on the main site: /{channel}/clip/{id}.
			match: func(p gallery.Post, u *url.URL) bool {
				return domainIn(p, "www.twitch.tv", "twitch.tv") && pathSegment(u.Path, 2) == "clip"
			},
			resolve: func(_ gallery.Post, u *url.URL) Resolution {
				return Resolution{Renderer: RendererEmbed, Src: twitchClipEmbed(pathSegment(u.Path, 3), cfg.EmbedParent)}
			},
		},
		{
			// VOD links with a start offset: /videos/{id}?t=1h2m3s.
			match: func(p gallery.Post, u *url.URL) bool {
				return domainIn(p, "www.twitch.tv", "twitch.tv") &&
					pathSegment(u.Path, 1) == "videos" &&
					u.Query().Get("t") != ""
			},
			resolve: func(_ gallery.Post, u *url.URL) Resolution {
				src := fmt.Sprintf("https://player.twitch.tv/?video=%s&parent=%s&autoplay=true&time=%s",
					pathSegment(u.Path, 2), cfg.EmbedParent, u.Query().Get("t"))
				return Resolution{Renderer: RendererEmbed, Src: src}
			},
		},
		{
			match: domainIs("redgifs.com"),
			resolve: func(_ gallery.Post, u *url.URL) Resolution {
				return Resolution{Renderer: RendererEmbed, Src: "https://redgifs.com/ifr/" + lastSegment(u.Path)}
			},
		},
		{
			match: func(p gallery.Post, _ *url.URL) bool {
				return domainIn(p, "vocaroo.com", "voca.ro")
			},
			resolve: func(_ gallery.Post, u *url.URL) Resolution {
				return Resolution{Renderer: RendererEmbed, Src: "https://vocaroo.com/embed/" + strings.TrimPrefix(u.Path, "/") + "?autoplay=1"}
			},
		},
		{
			match: domainIs("youtu.be"),
			resolve: func(_ gallery.Post, u *url.URL) Resolution {
				return Resolution{
					Renderer: RendererEmbed,
					Src:      youtubeEmbed(strings.TrimPrefix(u.Path, "/"), ParseStart(u.Query().Get("t"))),
				}
			},
		},
		{
			match: func(p gallery.Post, u *url.URL) bool {
				return domainIn(p, "youtube.com", "www.youtube.com", "m.youtube.com") &&
					(u.Query().Get("v") != "" ||
						strings.Contains(u.Path, "/shorts/") ||
						strings.Contains(u.Path, "/live/"))
			},
			resolve: func(p gallery.Post, u *url.URL) Resolution {
				start := ParseStart(u.Query().Get("t"))
				if v := u.Query().Get("v"); v != "" {
					return Resolution{Renderer: RendererEmbed, Src: youtubeEmbed(v, start)}
				}
				if strings.Contains(u.Path, "/shorts/") {
					// Shorts cannot be embedded; show the static preview frame.
					return Resolution{Renderer: RendererImage, Src: "https://i.ytimg.com/vi/" + pathSegment(u.Path, 2) + "/hqdefault.jpg"}
				}
				return Resolution{Renderer: RendererEmbed, Src: youtubeEmbed(pathSegment(u.Path, 2), start)}
			},
		},
		{
			match: func(p gallery.Post, _ *url.URL) bool {
				return domainIn(p, "twitter.com", "m.twitter.com", "mobile.twitter.com", "x.com")
			},
			resolve: func(p gallery.Post, u *url.URL) Resolution {
				if p.Embed != "" {
					return Resolution{Renderer: RendererEmbed, Src: p.Embed}
				}
				if twitterProfilePattern.MatchString(u.Path) {
					// Bare profile links carry no content to show.
					return Resolution{Renderer: RendererNone}
				}
				if strings.Contains(u.Path, "/status/") {
					return Resolution{Renderer: RendererTweet, TweetID: pathSegment(u.Path, 3)}
				}
				path := tweetMediaSuffix.ReplaceAllString(u.Path, "")
				path = tweetRetweetsSuffix.ReplaceAllString(path, "")
				return Resolution{Renderer: RendererEmbed, Src: "https://" + cfg.NitterHost + path + "/embed"}
			},
		},
		{
			// Bare imgur page links resolve to the direct image.
			match: func(p gallery.Post, u *url.URL) bool {
				trimmed := strings.TrimPrefix(u.Path, "/")
				return p.Domain == "imgur.com" &&
					trimmed != "" && !strings.Contains(trimmed, "/") &&
					!gallery.IsImageURL(u.Path)
			},
			resolve: func(p gallery.Post, _ *url.URL) Resolution {
				return Resolution{Renderer: RendererImage, Src: p.URL + ".jpg"}
			},
		},
		{
			match: func(p gallery.Post, u *url.URL) bool {
				return p.Domain == "i.imgur.com" && strings.HasSuffix(u.Path, ".gifv")
			},
			resolve: func(p gallery.Post, _ *url.URL) Resolution {
				return Resolution{Renderer: RendererVideo, Src: strings.Replace(p.URL, ".gifv", ".mp4", 1)}
			},
		},
		{
			match: func(p gallery.Post, u *url.URL) bool {
				// Meme pages look like /i/{id}; bare links with no id fall
				// through to the generic cascade.
				return p.Domain == "imgflip.com" && len(u.Path) > 3 && !gallery.IsImageURL(u.Path)
			},
			resolve: func(_ gallery.Post, u *url.URL) Resolution {
				// The direct image lives on i.imgflip.com.
				return Resolution{Renderer: RendererImage, Src: "https://i.imgflip.com/" + u.Path[3:] + ".jpg"}
			},
		},
	}
}

// genericResolution is the tail of the cascade shared by unrecognized
// domains and unparsable URLs: the post's own image, then its thumbnail,
// then nothing.
func genericResolution(p gallery.Post, path string) Resolution {
	if path != "" && gallery.IsImageURL(path) {
		return Resolution{Renderer: RendererImage, Src: p.URL}
	}
	if gallery.IsImageURL(p.Thumbnail) {
		return Resolution{Renderer: RendererImage, Src: p.Thumbnail}
	}
	return Resolution{Renderer: RendererNone}
}

func domainIs(domain string) func(gallery.Post, *url.URL) bool {
	return func(p gallery.Post, _ *url.URL) bool { return p.Domain == domain }
}

func domainIn(p gallery.Post, domains ...string) bool {
	for _, d := range domains {
		if p.Domain == d {
			return true
		}
	}
	return false
}

// pathSegment returns the i-th slash-separated segment of path, counting
// the leading empty segment as 0, so "/a/b"[1] == "a".
func pathSegment(path string, i int) string {
	parts := strings.Split(path, "/")
	if i < 0 || i >= len(parts) {
		return ""
	}
	return parts[i]
}

func lastSegment(path string) string {
	parts := strings.Split(strings.TrimSuffix(path, "/"), "/")
	return parts[len(parts)-1]
}

func twitchClipEmbed(clip, parent string) string {
	return fmt.Sprintf("https://clips.twitch.tv/embed?clip=%s&parent=%s&autoplay=true", clip, parent)
}

func youtubeEmbed(id string, start int) string {
	src := "https://www.youtube-nocookie.com/embed/" + id +
		"?modestbranding=1&rel=0&iv_load_policy=3&cc_load_policy=1&autoplay=0"
	if start > 0 {
		src += fmt.Sprintf("&start=%d", start)
	}
	return src
}
