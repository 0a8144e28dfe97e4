package config

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultProfile is used when no profile is configured.
const DefaultProfile = "default"

// Settings are the resolved runtime settings.
type Settings struct {
	Home    string // root data directory, e.g. ~/.fitapp
	Profile string // slugified profile name
	NoColor bool
}

// ProfileDir returns the directory holding the profile's storage keys.
func (s Settings) ProfileDir() string {
	return filepath.Join(s.Home, s.Profile)
}

// Overrides carries flag values; empty fields are ignored.
type Overrides struct {
	Home    string
	Profile string
	NoColor bool
}

// Load resolves settings with precedence flags > FITAPP_* environment
// (optionally seeded from a .env file in envDir) > <home>/config.yaml > defaults.
func Load(homeDir, envDir string, o Overrides) (Settings, error) {
	if envDir != "" {
		// A missing .env is normal; anything else is reported.
		if err := godotenv.Load(filepath.Join(envDir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, err
		}
	}

	v := viper.New()
	v.SetEnvPrefix("FITAPP")
	v.AutomaticEnv()
	v.SetDefault("home", filepath.Join(homeDir, ".fitapp"))
	v.SetDefault("profile", DefaultProfile)
	v.SetDefault("no_color", false)

	home := o.Home
	if home == "" {
		home = v.GetString("home")
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, err
		}
	}

	s := Settings{
		Home:    home,
		Profile: v.GetString("profile"),
		NoColor: v.GetBool("no_color") || o.NoColor,
	}
	if o.Profile != "" {
		s.Profile = o.Profile
	}
	s.Profile = Slugify(s.Profile)
	if s.Profile == "" {
		s.Profile = DefaultProfile
	}
	return s, nil
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases name, replaces runs of non-alphanumeric characters with
// a hyphen and trims leading and trailing hyphens.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
