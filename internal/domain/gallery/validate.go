package gallery

import (
	"net/url"
	"strings"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp", ".tiff", ".bmp", ".ico"}

var videoExtensions = []string{".mp4", ".webm", ".mkv"}

// IsURL reports whether raw parses as an absolute http or https URL.
func IsURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsImageURL reports whether s looks like an image URL. The match is a
// case-insensitive substring check over the whole string, so an extension
// inside a query string also counts. Upstream URLs routinely hide the real
// extension behind query parameters, which is why the check stays loose.
func IsImageURL(s string) bool {
	return matchesAny(s, imageExtensions)
}

// IsVideoURL reports whether s looks like a video URL, under the same loose
// rule as IsImageURL.
func IsVideoURL(s string) bool {
	return matchesAny(s, videoExtensions)
}

func matchesAny(s string, extensions []string) bool {
	lowered := strings.ToLower(s)
	for _, ext := range extensions {
		if strings.Contains(lowered, ext) {
			return true
		}
	}
	return false
}
