package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "redgal_test")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	configPath := filepath.Join(tmpDir, "config.yaml")
	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(store.Settings.Subreddits) == 0 {
		t.Error("Expected default subreddits, got empty")
	}
	if store.Settings.Subreddits[0] != "pics" {
		t.Errorf("Expected default subreddit, got %s", store.Settings.Subreddits[0])
	}

	if store.Settings.DefaultSort != "hot" {
		t.Errorf("Expected default sort 'hot', got %q", store.Settings.DefaultSort)
	}
	if store.Settings.DefaultPeriod != "week" {
		t.Errorf("Expected default period 'week', got %q", store.Settings.DefaultPeriod)
	}
	if store.Settings.Theme.PostMeta != "244" {
		t.Errorf("Expected default Theme.PostMeta '244', got '%s'", store.Settings.Theme.PostMeta)
	}
	if store.Settings.KeyMap.NextPost != "right,." {
		t.Errorf("Expected default KeyMap.NextPost 'right,.', got %q", store.Settings.KeyMap.NextPost)
	}
	if store.Settings.KeyMap.PrevPost != "left,comma" {
		t.Errorf("Expected default KeyMap.PrevPost 'left,comma', got %q", store.Settings.KeyMap.PrevPost)
	}
	if store.Settings.KeyMap.OpenBrowser != "o" {
		t.Errorf("Expected default KeyMap.OpenBrowser 'o', got %q", store.Settings.KeyMap.OpenBrowser)
	}
	if store.Settings.API.BaseURL != "https://www.reddit.com" {
		t.Errorf("Expected default API.BaseURL, got %q", store.Settings.API.BaseURL)
	}
	if store.Settings.API.PageLimit != 25 {
		t.Errorf("Expected default API.PageLimit 25, got %d", store.Settings.API.PageLimit)
	}
	if store.Settings.API.UserAgent == "" {
		t.Error("Expected default API.UserAgent to be filled in")
	}
	if store.Settings.Embed.NitterHost != "nitter.net" {
		t.Errorf("Expected default Embed.NitterHost 'nitter.net', got %q", store.Settings.Embed.NitterHost)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file not created")
	}
}

func TestLoad_Corrupt(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "redgal_test_corrupt")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	configPath := filepath.Join(tmpDir, "config.yaml")
	_ = os.WriteFile(configPath, []byte("invalid_yaml: ["), 0600)

	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected error for corrupt config read, got nil")
	}
}

func TestStore_AddRemoveSubreddit(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "redgal_test_persist")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	configPath := filepath.Join(tmpDir, "config.yaml")
	store, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}

	// Test Add
	err = store.Add("aww")
	if err != nil {
		t.Errorf("Add failed: %v", err)
	}

	if len(store.Settings.Subreddits) != 2 {
		t.Errorf("Expected 2 subreddits, got %d", len(store.Settings.Subreddits))
	}
	if store.Settings.Subreddits[1] != "aww" {
		t.Errorf("Expected 'aww', got %s", store.Settings.Subreddits[1])
	}

	// Verify persistence by reloading
	store2, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(store2.Settings.Subreddits) != 2 {
		t.Errorf("Persistence failed, expected 2 subreddits, got %d", len(store2.Settings.Subreddits))
	}

	// Test Remove
	err = store.Remove(0) // Remove default
	if err != nil {
		t.Errorf("Remove failed: %v", err)
	}

	if len(store.Settings.Subreddits) != 1 {
		t.Errorf("Expected 1 subreddit, got %d", len(store.Settings.Subreddits))
	}
	if store.Settings.Subreddits[0] != "aww" {
		t.Errorf("Expected 'aww' remaining, got %s", store.Settings.Subreddits[0])
	}

	// Test Remove Invalid
	err = store.Remove(99)
	if err == nil {
		t.Error("Expected error for invalid index")
	}
}

func TestLoad_NormalizesSubreddits(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "redgal_test_normalize")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `subreddits:
  - " pics "
  - "r/golang"
  - |
      aww
      EarthPorn
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []string{"pics", "golang", "aww", "EarthPorn"}

	if len(store.Settings.Subreddits) != len(want) {
		t.Fatalf("Expected %d subreddits, got %d", len(want), len(store.Settings.Subreddits))
	}
	for i, got := range store.Settings.Subreddits {
		if got != want[i] {
			t.Fatalf("Expected subreddit %d to be %q, got %q", i, want[i], got)
		}
	}
}
