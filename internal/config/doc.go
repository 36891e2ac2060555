// Package config manages treekit configuration and state persistence.
//
// It handles:
//   - Repository-specific configuration stored inside .git/
//   - Remembered subtree upstreams (repository, ref, squash preference)
package config
