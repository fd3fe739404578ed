// Package config holds the countdown targets and display settings.
//
// The defaults are compiled in. A YAML file and COUNTDOWN_* environment
// variables may override them; neither has to exist.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/countdown/pkg/timeutil"

	"github.com/spf13/viper"
)

const (
	// Home: December 17, 2027 at 3:00 PM CST (UTC-6)
	DefaultHomeTarget = "2027-12-17T15:00:00-06:00"
	// CR-V 2028: November 1, 2028 at 12:00 PM CST (UTC-6)
	DefaultFixedTarget = "2028-11-01T12:00:00-06:00"

	defaultInterval = time.Second
)

// TabSpec describes one tab of the dashboard.
type TabSpec struct {
	Key   string
	Title string
}

// DefaultTabs is the built-in tab set. The first entry starts active.
var DefaultTabs = []TabSpec{
	{Key: "home", Title: "Home"},
	{Key: "crv", Title: "CR-V 2028"},
	{Key: "about", Title: "About"},
}

// Config is the resolved runtime configuration.
type Config struct {
	HomeTarget  time.Time
	FixedTarget time.Time
	Interval    time.Duration
	Tabs        []TabSpec
	LogFile     string
	ConfigPath  string
}

// Default returns the compiled-in configuration.
func Default() Config {
	home, _ := timeutil.ParseTarget(DefaultHomeTarget)
	fixed, _ := timeutil.ParseTarget(DefaultFixedTarget)
	return Config{
		HomeTarget:  home,
		FixedTarget: fixed,
		Interval:    defaultInterval,
		Tabs:        append([]TabSpec(nil), DefaultTabs...),
	}
}

// DefaultPath returns ~/.config/countdown/config.yml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "countdown", "config.yml")
}

// Load resolves the configuration from defaults, the optional file at
// path (DefaultPath when empty) and the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COUNTDOWN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("home-target", DefaultHomeTarget)
	v.SetDefault("fixed-target", DefaultFixedTarget)
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("log-file", "")

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Default()
	cfg.ConfigPath = v.ConfigFileUsed()

	var err error
	if cfg.HomeTarget, err = timeutil.ParseTarget(v.GetString("home-target")); err != nil {
		return Config{}, fmt.Errorf("home-target: %w", err)
	}
	if cfg.FixedTarget, err = timeutil.ParseTarget(v.GetString("fixed-target")); err != nil {
		return Config{}, fmt.Errorf("fixed-target: %w", err)
	}

	cfg.Interval = v.GetDuration("interval")
	if cfg.Interval <= 0 {
		return Config{}, fmt.Errorf("invalid interval: %v", cfg.Interval)
	}

	cfg.LogFile = v.GetString("log-file")
	return cfg, nil
}
