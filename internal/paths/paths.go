// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
)

// DBFileName is the default database file name.
const DBFileName = "poststates.db"

// ResolveDBPath resolves the database file path from user input.
// It normalizes the input, accepting a file path, a data directory, or a
// project directory.
//
// Input normalization:
//   - "" -> "" (run without a database)
//   - "/path/to/site.db" -> "/path/to/site.db"
//   - "/path/to/.poststates" -> "/path/to/.poststates/poststates.db"
//   - "/path/to/project" -> "/path/to/project/.poststates/poststates.db"
func ResolveDBPath(path string) string {
	if path == "" {
		return ""
	}
	path = filepath.Clean(path)

	// An existing file, or anything named like a database file, is used as-is.
	if filepath.Ext(path) == ".db" {
		return path
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path
	}

	// A data directory gets the default file name appended directly.
	if filepath.Base(path) == ".poststates" {
		return filepath.Join(path, DBFileName)
	}

	// Otherwise treat it as a project directory.
	return filepath.Join(path, ".poststates", DBFileName)
}

// ConfigSearchPaths returns config file locations in lookup order: the
// project-local config first, then the user config directory.
func ConfigSearchPaths() []string {
	paths := []string{filepath.Join(".poststates", "config.yaml")}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "poststates", "config.yaml"))
	}
	return paths
}
