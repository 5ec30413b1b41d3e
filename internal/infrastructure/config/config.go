// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"redgal/internal/application/settings"
)

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(home, ".config", "redgal", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{Settings: cfg, configPath: configPath}

	var options []kong.Option

	// Only add configuration loader if file exists
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}

	_, err = parser.Parse([]string{})
	if err != nil {
		return nil, err
	}

	store.Settings = cfg
	store.Settings.Subreddits = normalizeSubreddits(store.Settings.Subreddits)
	if store.Settings.API.UserAgent == "" {
		store.Settings.API.UserAgent = "redgal/1.0"
	}
	if store.Settings.API.PageLimit <= 0 {
		store.Settings.API.PageLimit = 25
	}

	// Save defaults if new file
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

func normalizeSubreddits(names []string) []string {
	if len(names) == 0 {
		return names
	}
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		for item := range strings.FieldsSeq(name) {
			item = strings.TrimPrefix(item, "r/")
			item = strings.Trim(item, "/")
			if item != "" {
				normalized = append(normalized, item)
			}
		}
	}
	return normalized
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		// Try various naming conventions
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			// Check direct match
			if v, ok := values[name]; ok {
				return v, nil
			}

			// Check nested dot-notation
			parts := strings.Split(name, ".")
			if len(parts) > 1 {
				curr := values
				for i, part := range parts {
					if i == len(parts)-1 {
						if v, ok := curr[part]; ok {
							return v, nil
						}
					} else {
						if nextMap, ok := curr[part].(map[string]any); ok {
							curr = nextMap
						} else {
							break
						}
					}
				}
			}
		}
		return nil, nil
	}
	return f, nil
}

// List returns the currently configured subreddit names.
func (s *Store) List() ([]string, error) {
	names := make([]string, len(s.Settings.Subreddits))
	copy(names, s.Settings.Subreddits)
	return names, nil
}

// Add appends a new subreddit and saves the configuration.
func (s *Store) Add(name string) error {
	s.Settings.Subreddits = append(s.Settings.Subreddits, name)
	return s.Save()
}

// Remove deletes a subreddit by index and saves the configuration.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.Settings.Subreddits) {
		return fmt.Errorf("invalid subreddit index: %d", index)
	}
	s.Settings.Subreddits = append(s.Settings.Subreddits[:index], s.Settings.Subreddits[index+1:]...)
	return s.Save()
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}
