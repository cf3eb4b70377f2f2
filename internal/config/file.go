package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the TOML layout. Durations are written as Go duration strings.
type fileConfig struct {
	Server struct {
		Addr string `toml:"addr"`
	} `toml:"server"`
	Database struct {
		URL             string `toml:"url"`
		MaxIdleConns    int    `toml:"max_idle_conns"`
		MaxOpenConns    int    `toml:"max_open_conns"`
		ConnMaxLifetime string `toml:"conn_max_lifetime"`
		ConnMaxIdleTime string `toml:"conn_max_idle_time"`
		UseMock         *bool  `toml:"use_mock"`
	} `toml:"database"`
	Logging struct {
		Level string `toml:"level"`
	} `toml:"logging"`
	Session struct {
		Lifetime     string `toml:"lifetime"`
		CookieName   string `toml:"cookie_name"`
		CookieDomain string `toml:"cookie_domain"`
		CookieSecure *bool  `toml:"cookie_secure"`
	} `toml:"session"`
	Search struct {
		Locale string `toml:"locale"`
	} `toml:"search"`
}

// LoadFile reads a TOML file and layers it over Default. An empty path returns Default.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	expanded, err := expandPath(path)
	if err != nil {
		return Config{}, fmt.Errorf("expand config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", expanded, err)
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", expanded, err)
	}

	file.apply(&cfg)
	return cfg, nil
}

func (f fileConfig) apply(cfg *Config) {
	cfg.Server.Addr = firstNonEmpty(f.Server.Addr, cfg.Server.Addr)

	cfg.Database.URL = firstNonEmpty(f.Database.URL, cfg.Database.URL)
	if f.Database.MaxIdleConns > 0 {
		cfg.Database.MaxIdleConns = f.Database.MaxIdleConns
	}
	if f.Database.MaxOpenConns > 0 {
		cfg.Database.MaxOpenConns = f.Database.MaxOpenConns
	}
	cfg.Database.ConnMaxLifetime = parseDurationWithDefault(f.Database.ConnMaxLifetime, cfg.Database.ConnMaxLifetime)
	cfg.Database.ConnMaxIdleTime = parseDurationWithDefault(f.Database.ConnMaxIdleTime, cfg.Database.ConnMaxIdleTime)
	if f.Database.UseMock != nil {
		cfg.Database.UseMock = *f.Database.UseMock
	}

	cfg.Logging.Level = firstNonEmpty(f.Logging.Level, cfg.Logging.Level)

	cfg.Auth.Session.Lifetime = parseDurationWithDefault(f.Session.Lifetime, cfg.Auth.Session.Lifetime)
	cfg.Auth.Session.CookieName = firstNonEmpty(f.Session.CookieName, cfg.Auth.Session.CookieName)
	cfg.Auth.Session.CookieDomain = firstNonEmpty(f.Session.CookieDomain, cfg.Auth.Session.CookieDomain)
	if f.Session.CookieSecure != nil {
		cfg.Auth.Session.CookieSecure = *f.Session.CookieSecure
	}

	cfg.Search.Locale = firstNonEmpty(f.Search.Locale, cfg.Search.Locale)
}

func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
