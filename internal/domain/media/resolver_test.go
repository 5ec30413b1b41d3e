package media

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"redgal/internal/domain/gallery"
)

func testResolver() *Resolver {
	return NewResolver(Config{EmbedParent: "gallery.example", NitterHost: "nitter.example"})
}

func post(domain, rawURL string) gallery.Post {
	return gallery.Post{Domain: domain, URL: rawURL}
}

func TestResolveDirectMP4(t *testing.T) {
	res := testResolver().Resolve(post("files.example.com", "https://files.example.com/clip.mp4"))
	assert.Equal(t, RendererVideo, res.Renderer)
	assert.Equal(t, "https://files.example.com/clip.mp4", res.Src)
}

func TestResolveGiphy(t *testing.T) {
	res := testResolver().Resolve(post("giphy.com", "https://giphy.com/gifs/reaction-happy-cat-x1y2z3"))
	assert.Equal(t, RendererEmbed, res.Renderer)
	assert.Equal(t, "https://giphy.com/embed/happy-cat-x1y2z3", res.Src)
}

func TestResolveRedditVideo(t *testing.T) {
	res := testResolver().Resolve(post("v.redd.it", "https://v.redd.it/abc/HLSPlaylist.m3u8"))
	assert.Equal(t, RendererStream, res.Renderer)
	assert.Equal(t, "https://v.redd.it/abc/HLSPlaylist.m3u8", res.Src)
}

func TestResolveStreamable(t *testing.T) {
	res := testResolver().Resolve(post("streamable.com", "https://streamable.com/moo123"))
	assert.Equal(t, RendererEmbed, res.Renderer)
	assert.Equal(t, "https://streamable.com/e/moo123?autoplay=1", res.Src)
}

func TestResolveGfycat(t *testing.T) {
	res := testResolver().Resolve(post("gfycat.com", "https://gfycat.com/merrydecisiveduck"))
	assert.Equal(t, "https://gfycat.com/ifr/merrydecisiveduck", res.Src)
}

func TestResolveRedgifs(t *testing.T) {
	res := testResolver().Resolve(post("redgifs.com", "https://redgifs.com/watch/somename"))
	assert.Equal(t, "https://redgifs.com/ifr/somename", res.Src)
}

func TestResolveVocaroo(t *testing.T) {
	res := testResolver().Resolve(post("voca.ro", "https://voca.ro/1abcdef"))
	assert.Equal(t, "https://vocaroo.com/embed/1abcdef?autoplay=1", res.Src)
}

func TestResolveTwitchClipHost(t *testing.T) {
	res := testResolver().Resolve(post("clips.twitch.tv", "https://clips.twitch.tv/FunnyClipName"))
	assert.Equal(t, RendererEmbed, res.Renderer)
	assert.Equal(t, "https://clips.twitch.tv/embed?clip=FunnyClipName&parent=gallery.example&autoplay=true", res.Src)
}

func TestResolveTwitchClipPage(t *testing.T) {
	res := testResolver().Resolve(post("www.twitch.tv", "https://www.twitch.tv/somechannel/clip/FunnyClipName"))
	assert.Equal(t, "https://clips.twitch.tv/embed?clip=FunnyClipName&parent=gallery.example&autoplay=true", res.Src)
}

func TestResolveTwitchVideoWithOffset(t *testing.T) {
	res := testResolver().Resolve(post("www.twitch.tv", "https://www.twitch.tv/videos/123456?t=1h2m3s"))
	assert.Equal(t, RendererEmbed, res.Renderer)
	assert.Equal(t, "https://player.twitch.tv/?video=123456&parent=gallery.example&autoplay=true&time=1h2m3s", res.Src)
}

func TestResolveTwitchVideoWithoutOffsetFallsThrough(t *testing.T) {
	res := testResolver().Resolve(post("www.twitch.tv", "https://www.twitch.tv/videos/123456"))
	assert.Equal(t, RendererNone, res.Renderer)
}

func TestResolveYoutubeShortLink(t *testing.T) {
	res := testResolver().Resolve(post("youtu.be", "https://youtu.be/abc123?t=90s"))
	assert.Equal(t, RendererEmbed, res.Renderer)
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/abc123?modestbranding=1&rel=0&iv_load_policy=3&cc_load_policy=1&autoplay=0&start=90", res.Src)
}

func TestResolveYoutubeWatch(t *testing.T) {
	res := testResolver().Resolve(post("www.youtube.com", "https://www.youtube.com/watch?v=abc123"))
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/abc123?modestbranding=1&rel=0&iv_load_policy=3&cc_load_policy=1&autoplay=0", res.Src)
}

func TestResolveYoutubeShorts(t *testing.T) {
	res := testResolver().Resolve(post("youtube.com", "https://youtube.com/shorts/xyz789"))
	assert.Equal(t, RendererImage, res.Renderer)
	assert.Equal(t, "https://i.ytimg.com/vi/xyz789/hqdefault.jpg", res.Src)
}

func TestResolveYoutubeLive(t *testing.T) {
	res := testResolver().Resolve(post("m.youtube.com", "https://m.youtube.com/live/liv456"))
	assert.Equal(t, RendererEmbed, res.Renderer)
	assert.Contains(t, res.Src, "/embed/liv456?")
}

func TestResolveYoutubeOtherPathFallsThrough(t *testing.T) {
	// Channel pages carry no playable media; the generic cascade applies.
	res := testResolver().Resolve(post("www.youtube.com", "https://www.youtube.com/@somechannel"))
	assert.Equal(t, RendererNone, res.Renderer)
}

func TestResolveTwitterProviderEmbed(t *testing.T) {
	p := post("twitter.com", "https://twitter.com/user/status/42")
	p.Embed = "https://embed.example/tweet-42"
	res := testResolver().Resolve(p)
	assert.Equal(t, RendererEmbed, res.Renderer)
	assert.Equal(t, "https://embed.example/tweet-42", res.Src)
}

func TestResolveTwitterProfileRendersNothing(t *testing.T) {
	res := testResolver().Resolve(post("twitter.com", "https://twitter.com/someuser"))
	assert.Equal(t, RendererNone, res.Renderer)
}

func TestResolveTweetStatus(t *testing.T) {
	res := testResolver().Resolve(post("x.com", "https://x.com/someuser/status/112233"))
	assert.Equal(t, RendererTweet, res.Renderer)
	assert.Equal(t, "112233", res.TweetID)
}

func TestResolveTweetFallbackStripsMediaSuffix(t *testing.T) {
	p := post("mobile.twitter.com", "https://mobile.twitter.com/someuser/timeline/photo/1")
	res := testResolver().Resolve(p)
	assert.Equal(t, RendererEmbed, res.Renderer)
	assert.Equal(t, "https://nitter.example/someuser/timeline/embed", res.Src)
}

func TestResolveImgurPageLink(t *testing.T) {
	res := testResolver().Resolve(post("imgur.com", "https://imgur.com/xyz"))
	assert.Equal(t, RendererImage, res.Renderer)
	assert.Equal(t, "https://imgur.com/xyz.jpg", res.Src)
}

func TestResolveImgurAlbumFallsThrough(t *testing.T) {
	p := post("imgur.com", "https://imgur.com/a/abc123")
	res := testResolver().Resolve(p)
	assert.Equal(t, RendererNone, res.Renderer)
}

func TestResolveImgurGifv(t *testing.T) {
	res := testResolver().Resolve(post("i.imgur.com", "https://i.imgur.com/abc.gifv"))
	assert.Equal(t, RendererVideo, res.Renderer)
	assert.Equal(t, "https://i.imgur.com/abc.mp4", res.Src)
}

func TestResolveImgflip(t *testing.T) {
	res := testResolver().Resolve(post("imgflip.com", "https://imgflip.com/i/meme42"))
	assert.Equal(t, RendererImage, res.Renderer)
	assert.Equal(t, "https://i.imgflip.com/meme42.jpg", res.Src)
}

func TestResolveImgflipBareLinkFallsThrough(t *testing.T) {
	p := post("imgflip.com", "https://imgflip.com/")
	p.Thumbnail = "https://cdn.example.com/preview.jpg"
	res := testResolver().Resolve(p)
	assert.Equal(t, RendererImage, res.Renderer)
	assert.Equal(t, "https://cdn.example.com/preview.jpg", res.Src)
}

func TestResolveGenericImagePath(t *testing.T) {
	res := testResolver().Resolve(post("i.redd.it", "https://i.redd.it/photo.png"))
	assert.Equal(t, RendererImage, res.Renderer)
	assert.Equal(t, "https://i.redd.it/photo.png", res.Src)
}

func TestResolveThumbnailFallback(t *testing.T) {
	p := post("blog.example.com", "https://blog.example.com/article")
	p.Thumbnail = "https://cdn.example.com/preview.jpg"
	res := testResolver().Resolve(p)
	assert.Equal(t, RendererImage, res.Renderer)
	assert.Equal(t, "https://cdn.example.com/preview.jpg", res.Src)
}

func TestResolveNothing(t *testing.T) {
	p := post("blog.example.com", "https://blog.example.com/article")
	p.Thumbnail = "http://blog.example.com/favicon.zzz"
	res := testResolver().Resolve(p)
	assert.Equal(t, RendererNone, res.Renderer)
	assert.Empty(t, res.Src)
}

func TestResolveEmptyURL(t *testing.T) {
	res := testResolver().Resolve(gallery.Post{Domain: "x", Thumbnail: "https://a.b/c.jpg"})
	assert.Equal(t, RendererNone, res.Renderer)
}
