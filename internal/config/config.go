// Package config loads application settings from an optional osmeac.yaml,
// OSMEAC_ environment variables and built-in defaults, and reads custom
// field-path tables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverFile      = "file"
	DriverSQLite    = "sqlite"
	DriverSQLServer = "sqlserver"
	DriverMongo     = "mongo"
)

// Config holds all configuration for the application.
type Config struct {
	Store   StoreConfig
	Share   ShareConfig
	Log     LogConfig
	Preview PreviewConfig
}

// StoreConfig selects and locates the record store.
type StoreConfig struct {
	Driver   string // file, sqlite, sqlserver, mongo
	DSN      string // connection string for sql and mongo drivers
	Dir      string // directory for the file driver and the default sqlite file
	Database string // mongo database name
}

// ShareConfig holds share link settings.
type ShareConfig struct {
	BaseURL    string
	MaxVersion int // highest QR version the encoder may pick
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
	Output string
}

// PreviewConfig holds editor preview settings.
type PreviewConfig struct {
	Debounce time.Duration
}

// Load builds the configuration. Priority (highest to lowest):
// 1. Environment variables with OSMEAC_ prefix (e.g. OSMEAC_STORE_DRIVER)
// 2. The config file: path when given, otherwise osmeac.yaml found in the
//    working directory or the user config directory
// 3. Built-in defaults
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file '%s': %w", path, err)
		}
	} else {
		v.SetConfigName("osmeac")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "osmeac"))
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("OSMEAC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Store: StoreConfig{
			Driver:   strings.ToLower(v.GetString("store.driver")),
			DSN:      v.GetString("store.dsn"),
			Dir:      v.GetString("store.dir"),
			Database: v.GetString("store.database"),
		},
		Share: ShareConfig{
			BaseURL: v.GetString("share.base_url"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	if mv := v.GetString("share.max_version"); mv != "" {
		n, err := strconv.Atoi(mv)
		if err != nil {
			return nil, fmt.Errorf("invalid share.max_version %q: %w", mv, err)
		}
		cfg.Share.MaxVersion = n
	}

	debounce := v.GetString("preview.debounce")
	if debounce != "" {
		d, err := time.ParseDuration(debounce)
		if err != nil {
			return nil, fmt.Errorf("invalid preview.debounce %q: %w", debounce, err)
		}
		cfg.Preview.Debounce = d
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultDir is where the file store and the default sqlite database live.
func DefaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "osmeac")
	}
	return ".osmeac"
}

func applyDefaults(cfg *Config) {
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DriverFile
	}
	if cfg.Store.Dir == "" {
		cfg.Store.Dir = DefaultDir()
	}
	if cfg.Store.Driver == DriverSQLite && cfg.Store.DSN == "" {
		cfg.Store.DSN = filepath.Join(cfg.Store.Dir, "osmeac.db")
	}
	if cfg.Store.Database == "" {
		cfg.Store.Database = "osmeac"
	}
	if cfg.Share.BaseURL == "" {
		cfg.Share.BaseURL = "https://osmeac.app/"
	}
	if cfg.Share.MaxVersion == 0 {
		cfg.Share.MaxVersion = 25
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stderr"
	}
	if cfg.Preview.Debounce == 0 {
		cfg.Preview.Debounce = 150 * time.Millisecond
	}
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverFile, DriverSQLite:
	case DriverSQLServer, DriverMongo:
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store.driver %q (want file, sqlite, sqlserver or mongo)", c.Store.Driver)
	}

	u, err := url.Parse(c.Share.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("share.base_url %q must be an absolute URL", c.Share.BaseURL)
	}
	if c.Share.MaxVersion < 1 || c.Share.MaxVersion > 40 {
		return fmt.Errorf("share.max_version must be between 1 and 40, got %d", c.Share.MaxVersion)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log.format %q", c.Log.Format)
	}
	if c.Preview.Debounce < 0 {
		return fmt.Errorf("preview.debounce must not be negative")
	}
	return nil
}
