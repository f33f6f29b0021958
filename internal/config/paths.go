package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, Application), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, Application), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", Application), nil
		}
		return "", errors.New("HOME not set")
	}
}

// FileName returns the config file name for a format.
func FileName(format string) string {
	ext := "json"
	switch format {
	case "yaml", "yml":
		ext = "yaml"
	case "toml":
		ext = "toml"
	}
	return Application + "." + ext
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// CandidatePaths builds candidate config paths per format, highest priority first.
// A user-supplied path comes first and is routed to the loader matching its extension.
// The working directory is searched before the user config directory.
func CandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	dirs := make([]string, 0, 2)
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	for _, dir := range dirs {
		add(&jsonPaths, filepath.Join(dir, Application+".json"))
		add(&yamlPaths, filepath.Join(dir, Application+".yaml"))
		add(&yamlPaths, filepath.Join(dir, Application+".yml"))
		add(&tomlPaths, filepath.Join(dir, Application+".toml"))
	}
	return
}
