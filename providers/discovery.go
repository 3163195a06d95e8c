package providers

import (
	"os"
	"path/filepath"
)

// DiscoverTOMLFile locates a coordinate manifest file the way
// config.Builder's WithFileDiscovery locates its config file: an
// explicit environment variable wins, then XDG_CONFIG_HOME/appName, then
// XDG_CONFIG_DIRS (or the system defaults), then the current directory.
// Returns "", false if no candidate exists on disk.
func DiscoverTOMLFile(appName, envVar string) (string, bool) {
	if envVar != "" {
		if path := os.Getenv(envVar); path != "" {
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}

	var searchPaths []string
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		searchPaths = append(searchPaths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		searchPaths = append(searchPaths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			searchPaths = append(searchPaths, filepath.Join(dir, appName))
		}
	} else {
		searchPaths = append(searchPaths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, cwd)
	}

	for _, dir := range searchPaths {
		path := filepath.Join(dir, appName+".toml")
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
