package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/olivvybee/emojitools/domain"
)

const defaultRasterSize = 256

// Config is the top-level configuration for emojitools.
type Config struct {
	Release ReleaseConfig `yaml:"release"`
	Raster  RasterConfig  `yaml:"raster"`
}

// ReleaseConfig holds settings for the release-notes pipeline.
type ReleaseConfig struct {
	Owner          string `yaml:"owner"`           // Repository owner on the hosting service
	Repo           string `yaml:"repo"`            // Repository name
	Token          string `yaml:"token"`           // Inline, ${ENV_VAR}, or file path
	ExcludedAuthor string `yaml:"excluded_author"` // Maintainer login left out of the contributor list
	AssetExtension string `yaml:"asset_extension"` // Vector asset file extension
}

// RasterConfig holds settings for the rasterize pipeline.
type RasterConfig struct {
	OutputDir  string `yaml:"output_dir"`  // Root of the mirrored raster tree
	IgnoreFile string `yaml:"ignore_file"` // One directory name per line
	Size       int    `yaml:"size"`        // Default output width in pixels
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Release: ReleaseConfig{
			Owner:          "olivvybee",
			Repo:           "emojis",
			Token:          "${GITHUB_TOKEN}",
			ExcludedAuthor: "olivvybee",
			AssetExtension: ".svg",
		},
		Raster: RasterConfig{
			OutputDir:  "png",
			IgnoreFile: ".pngignore",
			Size:       defaultRasterSize,
		},
	}
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads the configuration file at path, applying it over the defaults
// and resolving the token value. When path is empty the standard locations
// are searched; a missing file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		found, err := findConfigFile()
		if err != nil {
			cfg.Release.Token = resolveToken(cfg.Release.Token)
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	cfg.Release.Token = resolveToken(cfg.Release.Token)

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// ValidateRelease checks the settings the release-notes pipeline needs.
// Called before any network or filesystem work starts.
func (c *Config) ValidateRelease() error {
	if c.Release.Token == "" {
		return fmt.Errorf(
			"%w: set GITHUB_TOKEN or the release.token config value",
			domain.ErrMissingToken,
		)
	}
	return nil
}

// findConfigFile searches for a configuration file in standard locations.
func findConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{"."}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".emojitools.yaml",
		".emojitools.yml",
		"emojitools.yaml",
		"emojitools.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})

	if resolved == raw || !strings.Contains(raw, "${") {
		// Inline value: may be a path to a token file.
		if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
			data, readErr := os.ReadFile(resolved)
			if readErr != nil {
				logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
				return resolved
			}
			return strings.TrimSpace(string(data))
		}
	}

	return resolved
}

// validate checks for structurally required configuration values. Token
// presence is checked separately, only by the command that needs it.
func validate(cfg *Config) error {
	if cfg.Release.Owner == "" || cfg.Release.Repo == "" {
		return errors.New("release.owner and release.repo are required")
	}
	if !strings.HasPrefix(cfg.Release.AssetExtension, ".") {
		return fmt.Errorf(
			"release.asset_extension must start with a dot, got %q",
			cfg.Release.AssetExtension,
		)
	}
	if cfg.Raster.OutputDir == "" {
		return errors.New("raster.output_dir is required")
	}
	if cfg.Raster.Size <= 0 {
		return fmt.Errorf("raster.size must be positive, got %d", cfg.Raster.Size)
	}
	return nil
}
