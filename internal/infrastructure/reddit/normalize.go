package reddit

import (
	"html"
	"sort"
	"strings"

	"github.com/samber/lo"

	"redgal/internal/domain/gallery"
)

const (
	permalinkBase = "https://old.reddit.com"
	imageHost     = "https://i.redd.it"
)

// normalizePage maps one raw listing page into the domain. Self posts carry
// no media and are dropped outright.
func normalizePage(l listing) gallery.Page {
	linkPosts := lo.Filter(l.Data.Children, func(c child, _ int) bool {
		return !c.Data.IsSelf
	})
	return gallery.Page{
		Posts: lo.Map(linkPosts, func(c child, _ int) gallery.Post {
			return normalizePost(c.Data)
		}),
		After: l.Data.After,
	}
}

func normalizePost(d childData) gallery.Post {
	return gallery.Post{
		Author:      d.Author,
		Created:     int64(d.CreatedUTC),
		Domain:      d.Domain,
		Embed:       embedURL(d),
		NumComments: d.NumComments,
		Permalink:   permalinkBase + d.Permalink,
		Score:       d.Score,
		Thumbnail:   thumbnailURL(d),
		Title:       html.UnescapeString(d.Title),
		URL:         playableURL(d),
	}
}

// playableURL picks the canonical playable URL: hosted video first, then the
// first gallery image, then the post's own link with entities decoded.
func playableURL(d childData) string {
	if v := videoURL(d); v != "" {
		return v
	}
	if images := galleryImages(d); len(images) > 0 {
		return images[0]
	}
	return html.UnescapeString(d.URL)
}

func videoURL(d childData) string {
	if !d.IsVideo || d.Media == nil || d.Media.RedditVideo == nil {
		return ""
	}
	if d.Media.RedditVideo.HLSURL != "" {
		return d.Media.RedditVideo.HLSURL
	}
	return d.Media.RedditVideo.FallbackURL
}

// thumbnailURL never returns an empty string; the final fallback derives a
// favicon URL from the link's domain.
func thumbnailURL(d childData) string {
	if d.IsVideo && d.Media != nil && d.Media.RedditVideo != nil && d.Media.RedditVideo.ScrubberMediaURL != "" {
		return d.Media.RedditVideo.ScrubberMediaURL
	}
	if gallery.IsURL(d.Thumbnail) {
		return d.Thumbnail
	}
	if gallery.IsImageURL(d.URL) {
		return d.URL
	}
	if images := galleryImages(d); len(images) > 0 {
		// Deliberately the opposite end of the gallery from playableURL, so
		// the cell preview differs from the opened image.
		return images[len(images)-1]
	}
	if strings.Contains(d.URL, "youtube.com/shorts/") {
		parts := strings.Split(d.URL, "/")
		return "https://i.ytimg.com/vi/" + parts[len(parts)-1] + "/hqdefault.jpg"
	}
	return "http://" + d.Domain + "/favicon.ico"
}

// galleryImages resolves gallery metadata entries to direct image URLs.
// Entries with an unrecognized MIME type are dropped. Metadata arrives as a
// JSON object, so ids are sorted for a stable order.
func galleryImages(d childData) []string {
	if !d.IsGallery || len(d.MediaMetadata) == 0 {
		return nil
	}
	ids := lo.Keys(d.MediaMetadata)
	sort.Strings(ids)

	images := make([]string, 0, len(ids))
	for _, id := range ids {
		if ext := imageExtension(d.MediaMetadata[id].MimeType); ext != "" {
			images = append(images, imageHost+"/"+id+"."+ext)
		}
	}
	return images
}

func imageExtension(mimeType string) string {
	switch mimeType {
	case "image/png":
		return "png"
	case "image/jpg", "image/jpeg":
		return "jpg"
	case "image/gif":
		return "gif"
	default:
		return ""
	}
}

func embedURL(d childData) string {
	if d.SecureMediaEmbed == nil {
		return ""
	}
	return d.SecureMediaEmbed.MediaDomainURL
}
