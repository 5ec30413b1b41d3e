// Package settings defines application-level configuration data.
package settings

import "redgal/internal/domain/gallery"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up            string `yaml:"up" kong:"help='Up key',default='k'"`
	Down          string `yaml:"down" kong:"help='Down key',default='j'"`
	Left          string `yaml:"left" kong:"help='Left/Back key',default='h'"`
	Right         string `yaml:"right" kong:"help='Right/Enter key',default='l'"`
	UpPage        string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage      string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Top           string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom        string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Open          string `yaml:"open" kong:"help='Open key',default='enter'"`
	Back          string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit          string `yaml:"quit" kong:"help='Quit key',default='q'"`
	NextPost      string `yaml:"next_post" kong:"help='Next post key (viewer)',default='right,.'"`
	PrevPost      string `yaml:"prev_post" kong:"help='Previous post key (viewer)',default='left,comma'"`
	AddListing    string `yaml:"add_listing" kong:"help='Add subreddit key',default='a'"`
	RemoveListing string `yaml:"remove_listing" kong:"help='Remove subreddit key',default='x'"`
	OpenBrowser   string `yaml:"open_browser" kong:"help='Open in browser key',default='o'"`
	LoadMore      string `yaml:"load_more" kong:"help='Load more posts key',default='m'"`
	Refresh       string `yaml:"refresh" kong:"help='Refresh key',default='r'"`
	CycleSort     string `yaml:"cycle_sort" kong:"help='Cycle sort order key',default='s'"`
	CyclePeriod   string `yaml:"cycle_period" kong:"help='Cycle time period key',default='p'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	PostMeta string `yaml:"post_meta" kong:"help='Post metadata color',default='244'"`
}

// APIConfig defines the Reddit API settings.
type APIConfig struct {
	BaseURL   string `yaml:"base_url" kong:"help='Reddit API base URL',default='https://www.reddit.com'"`
	PageLimit int    `yaml:"page_limit" kong:"help='Posts per listing page',default='25'"`
	UserAgent string `yaml:"user_agent" kong:"help='HTTP User-Agent header'"`
}

// EmbedConfig defines settings for third-party media embeds.
type EmbedConfig struct {
	Parent     string `yaml:"parent" kong:"help='Parent hostname for Twitch embeds',default='localhost'"`
	NitterHost string `yaml:"nitter_host" kong:"help='Nitter instance for tweet embeds',default='nitter.net'"`
}

// Settings represents the application configuration.
type Settings struct {
	Subreddits    []string     `yaml:"subreddits" kong:"help='Subreddit names',default='pics'"`
	DefaultSort   string       `yaml:"default_sort" kong:"help='Default sort order (hot/new/top/rising/controversial)',default='hot'"`
	DefaultPeriod string       `yaml:"default_period" kong:"help='Default time period for top/controversial (hour/day/week/month/year/all)',default='week'"`
	KeyMap        KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme         ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	API           APIConfig    `yaml:"api" kong:"embed,prefix='api.'"`
	Embed         EmbedConfig  `yaml:"embed" kong:"embed,prefix='embed.'"`
	LogFile       string       `yaml:"log_file" kong:"help='Debug log file path'"`
}

// Listings returns one listing key per configured subreddit, using the
// default sort and period.
func (s Settings) Listings() []gallery.Listing {
	result := make([]gallery.Listing, 0, len(s.Subreddits))
	for _, name := range s.Subreddits {
		result = append(result, gallery.Listing{
			Subreddit: name,
			Sort:      s.DefaultSort,
			Period:    s.DefaultPeriod,
		})
	}
	return result
}
