package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Option keys, shared by flags, environment and config file
const (
	OptAPIURL   = "api-url"
	OptTimeout  = "timeout"
	OptDebounce = "debounce"
	OptLogLevel = "log-level"
	OptLanguage = "language"
)

// Option defaults
const (
	DefaultAPIURL   = "https://dummyjson.com/recipes"
	DefaultTimeout  = 12 * time.Second
	DefaultDebounce = 300 * time.Millisecond
	DefaultLogLevel = "info"
)

// Environment and file locations
const (
	EnvPrefix      = "RECIPEBOOK"
	ConfigDirName  = "recipebook"
	ConfigFileName = "config"
	ConfigFileType = "yaml"
)

// Options are the runtime options resolved at startup. Precedence is
// flag > environment (RECIPEBOOK_*) > config file > default.
type Options struct {
	APIURL   string
	Timeout  time.Duration
	Debounce time.Duration
	LogLevel slog.Level
	Language string
}

// NewViper returns a viper instance with defaults, environment binding and
// the user config file search path registered
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(OptAPIURL, DefaultAPIURL)
	v.SetDefault(OptTimeout, DefaultTimeout)
	v.SetDefault(OptDebounce, DefaultDebounce)
	v.SetDefault(OptLogLevel, DefaultLogLevel)
	v.SetDefault(OptLanguage, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, ConfigDirName))
	}
	return v
}

// ReadConfigFile loads the config file if one exists. A missing file is not
// an error; a malformed one is.
func ReadConfigFile(v *viper.Viper, explicitPath string) error {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// LoadOptions resolves and validates Options from v
func LoadOptions(v *viper.Viper) (Options, error) {
	opts := Options{
		APIURL:   strings.TrimRight(strings.TrimSpace(v.GetString(OptAPIURL)), "/"),
		Timeout:  v.GetDuration(OptTimeout),
		Debounce: v.GetDuration(OptDebounce),
		Language: strings.TrimSpace(v.GetString(OptLanguage)),
	}

	if opts.APIURL == "" {
		opts.APIURL = DefaultAPIURL
	}
	u, err := url.Parse(opts.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Options{}, fmt.Errorf("%s: %q must be an http(s) URL", OptAPIURL, opts.APIURL)
	}
	if opts.Timeout <= 0 {
		return Options{}, fmt.Errorf("%s: must be positive, got %s", OptTimeout, opts.Timeout)
	}
	if opts.Debounce <= 0 {
		return Options{}, fmt.Errorf("%s: must be positive, got %s", OptDebounce, opts.Debounce)
	}

	level, err := ParseLogLevel(v.GetString(OptLogLevel))
	if err != nil {
		return Options{}, err
	}
	opts.LogLevel = level
	return opts, nil
}

// ParseLogLevel maps debug/info/warn/error to a slog level
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%s: %q is invalid (valid values: debug, info, warn, error)", OptLogLevel, s)
	}
	return level, nil
}

// NewLogger builds the process logger at the configured level
func NewLogger(opts Options) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.LogLevel}))
}
