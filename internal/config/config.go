// Package config layers defaults, an optional TOML file and environment
// variables into the settings both binaries share.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"filetidy/internal/domain"
)

type Config struct {
	ExiftoolBinary string
	Extensions     []string
	KeepBackup     bool
	Verbose        bool
}

type fileConfig struct {
	Exifdate struct {
		Binary     string   `toml:"binary"`
		Extensions []string `toml:"extensions"`
		KeepBackup *bool    `toml:"keep_backup"`
	} `toml:"exifdate"`
}

// Load reads the optional config file and applies FILETIDY_* environment
// overrides. A missing file yields plain defaults; a malformed one is an
// error.
func Load() (Config, error) {
	return load(defaultPath())
}

func load(path string) (Config, error) {
	cfg := Config{
		ExiftoolBinary: "exiftool",
		Extensions:     domain.JpegExtensions,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// no config file is fine
		case err != nil:
			return Config{}, err
		default:
			var parsed fileConfig
			if err := toml.Unmarshal(data, &parsed); err != nil {
				return Config{}, err
			}
			if parsed.Exifdate.Binary != "" {
				cfg.ExiftoolBinary = parsed.Exifdate.Binary
			}
			if len(parsed.Exifdate.Extensions) > 0 {
				cfg.Extensions = normalizeExtensions(parsed.Exifdate.Extensions)
			}
			if parsed.Exifdate.KeepBackup != nil {
				cfg.KeepBackup = *parsed.Exifdate.KeepBackup
			}
		}
	}

	if binary := envOrEmpty("FILETIDY_EXIFTOOL"); binary != "" {
		cfg.ExiftoolBinary = binary
	}
	if envTruthy("FILETIDY_VERBOSE") {
		cfg.Verbose = true
	}
	if envTruthy("FILETIDY_KEEP_BACKUP") {
		cfg.KeepBackup = true
	}

	return cfg, nil
}

func defaultPath() string {
	if dir := envOrEmpty("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "filetidy", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "filetidy", "config.toml")
}

func normalizeExtensions(extensions []string) []string {
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(strings.ToLower(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
