package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"redgal/internal/domain/gallery"
	"redgal/internal/domain/media"
	"redgal/internal/presentation/tui/presenter"
)

const viewerSectionDivider = "----------------------------------------"

func buildViewerContent(post gallery.Post, res media.Resolution) string {
	return buildViewerContentForWidth(post, res, 0)
}

func buildViewerContentForWidth(post gallery.Post, res media.Resolution, wrapWidth int) string {
	title := strings.TrimSpace(post.Title)
	if title == "" {
		title = "(untitled)"
	}

	meta := fmt.Sprintf("▲ %s · %d comments · u/%s · %s",
		presenter.FormatScore(post.Score), post.NumComments, post.Author, formatCreated(post.Created))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(viewerSectionDivider)
	b.WriteString("\n")
	b.WriteString(meta)
	b.WriteString("\n\n")
	b.WriteString(mediaSection(post, res))
	b.WriteString("\n")
	b.WriteString(viewerSectionDivider)
	b.WriteString("\n")
	b.WriteString("Discussion: " + post.Permalink)

	content := b.String()
	if wrapWidth > 0 {
		content = ansi.Wrap(content, wrapWidth, "")
	}
	return content
}

func mediaSection(post gallery.Post, res media.Resolution) string {
	switch res.Renderer {
	case media.RendererNone:
		if post.URL == "" {
			return "(no media)"
		}
		return fmt.Sprintf("(no playable media)\nLink: %s\nThumbnail: %s", post.URL, post.Thumbnail)
	case media.RendererTweet:
		return fmt.Sprintf("[tweet %s]\n%s", res.TweetID, post.URL)
	default:
		return fmt.Sprintf("[%s]\n%s", res.Renderer, res.Src)
	}
}

func formatCreated(created int64) string {
	if created <= 0 {
		return "unknown time"
	}
	return time.Unix(created, 0).Format("2006-01-02 15:04")
}
