package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// configFileName lives inside .git so it never shows up in the worktree
const configFileName = ".treekit_config"

// SubtreeEntry records the upstream for one subtree prefix
type SubtreeEntry struct {
	Repository string `json:"repository"`
	Ref        string `json:"ref"`
	Squash     bool   `json:"squash,omitempty"`
}

// RepoConfig represents the repository configuration
type RepoConfig struct {
	// Subtrees maps a prefix path to its recorded upstream
	Subtrees map[string]SubtreeEntry `json:"subtrees,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configFileName)
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// Save writes the repository configuration
func (c *RepoConfig) Save(repoRoot string) error {
	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// RecordSubtree records (or refreshes) the upstream for a prefix
func RecordSubtree(repoRoot, prefix string, entry SubtreeEntry) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	if config.Subtrees == nil {
		config.Subtrees = make(map[string]SubtreeEntry)
	}
	config.Subtrees[prefix] = entry

	return config.Save(repoRoot)
}

// LookupSubtree returns the recorded upstream for a prefix, if any
func LookupSubtree(repoRoot, prefix string) (SubtreeEntry, bool) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return SubtreeEntry{}, false
	}

	entry, ok := config.Subtrees[prefix]
	return entry, ok
}

// ListSubtrees returns all recorded prefixes in sorted order
func ListSubtrees(repoRoot string) ([]string, map[string]SubtreeEntry, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return nil, nil, err
	}

	prefixes := make([]string, 0, len(config.Subtrees))
	for prefix := range config.Subtrees {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	return prefixes, config.Subtrees, nil
}
