package store

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the local settings the client needs: where the keyed store
// lives, where the portal is, and how eagerly to autosave and refresh.
type Config interface {
	BasePath() string
	PortalURL() string
	RefreshInterval() time.Duration
	AutosaveDelay() time.Duration
}

// LoadConfig reads .desk config (yaml implicit) with DESK_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.desk.db")
	viper.SetDefault("portal", "http://localhost:8000")
	viper.SetDefault("refresh", "30s")
	viper.SetDefault("autosave", "1s")
	viper.SetConfigName(".desk")
	viper.SetEnvPrefix("DESK")
	viper.AutomaticEnv()

	if override := os.Getenv("DESK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:     path,
		Portal:   viper.GetString("portal"),
		Refresh:  durationOrDefault(viper.GetString("refresh"), 30*time.Second),
		Autosave: durationOrDefault(viper.GetString("autosave"), time.Second),
	}, nil
}

func durationOrDefault(v string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

type fileConfig struct {
	Path     string        `json:"path"`
	Portal   string        `json:"portal"`
	Refresh  time.Duration `json:"refresh"`
	Autosave time.Duration `json:"autosave"`
}

func (f *fileConfig) BasePath() string               { return f.Path }
func (f *fileConfig) PortalURL() string              { return f.Portal }
func (f *fileConfig) RefreshInterval() time.Duration { return f.Refresh }
func (f *fileConfig) AutosaveDelay() time.Duration   { return f.Autosave }
