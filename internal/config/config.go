// Package config loads server and CLI configuration from TOML files.
//
// Configuration is optional everywhere: every field has a working default,
// and a missing config file yields the defaults unchanged. The default file
// location follows the XDG base directory spec
// (~/.config/framesketch/config.toml).
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/framesketch/framesketch/pkg/errors"
)

const appName = "framesketch"

// Config is the top-level configuration.
type Config struct {
	Server   Server   `toml:"server"`
	Cache    Cache    `toml:"cache"`
	Redis    Redis    `toml:"redis"`
	Mongo    Mongo    `toml:"mongo"`
	Enhancer Enhancer `toml:"enhancer"`
}

// Server configures the HTTP API.
type Server struct {
	Listen string `toml:"listen"`
}

// Cache selects and tunes the cache backend.
type Cache struct {
	// Backend is one of "memory", "file", "redis", or "none".
	Backend string `toml:"backend"`
	// Dir is the file backend's directory; empty uses the XDG cache dir.
	Dir string `toml:"dir"`
	// Capacity bounds the memory backend's entry count.
	Capacity int `toml:"capacity"`
}

// Redis configures the redis cache backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Mongo configures the persistent store. An empty URI selects the in-memory
// store.
type Mongo struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Enhancer configures the diffusion sidecar. An empty URL disables
// enhancement.
type Enhancer struct {
	URL string `toml:"url"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Server:   Server{Listen: ":8080"},
		Cache:    Cache{Backend: "memory", Capacity: 100},
		Redis:    Redis{Addr: "localhost:6379"},
		Mongo:    Mongo{Database: appName},
		Enhancer: Enhancer{},
	}
}

// DefaultPath returns the XDG location of the config file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// CacheDir returns the XDG cache directory for the file backend.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, appName)
}

// Load reads the config file at path, applying it over the defaults.
// An empty path uses DefaultPath; a missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInternal, err, "reading config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInternal, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case "memory", "file", "redis", "none":
	default:
		return errors.New(errors.ErrCodeInternal, "unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}
