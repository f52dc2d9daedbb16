package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. BIRDWATCH_STORAGE_PATH
const EnvPrefix = "BIRDWATCH"

// Load loads and merges configuration from global, project and environment sources
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	return LoadFrom(home, cwd)
}

// LoadFrom merges defaults, home/.birdwatch/config.yaml,
// cwd/.birdwatch/config.yaml and BIRDWATCH_* variables, later sources winning.
// Empty home or cwd skips that file.
func LoadFrom(home, cwd string) (*Config, error) {
	cfg := DefaultConfig()

	if home != "" {
		globalPath := filepath.Join(home, ".birdwatch", "config.yaml")
		if err := loadFile(globalPath, cfg); err != nil && !os.IsNotExist(err) {
			log.Printf("warning: ignoring global config %s: %v", globalPath, err)
		}
	}

	if cwd != "" {
		projectPath := filepath.Join(cwd, ".birdwatch", "config.yaml")
		if err := loadFile(projectPath, cfg); err != nil && !os.IsNotExist(err) {
			log.Printf("warning: ignoring project config %s: %v", projectPath, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

func applyEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	overrides := map[string]*string{
		"storage.backend":     &cfg.Storage.Backend,
		"storage.path":        &cfg.Storage.Path,
		"storage.sqlite_path": &cfg.Storage.SQLitePath,
		"export.dir":          &cfg.Export.Dir,
		"serve.addr":          &cfg.Serve.Addr,
	}
	for key, field := range overrides {
		if v.IsSet(key) {
			*field = v.GetString(key)
		}
	}
}

// Validate checks that the configuration can be used
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("invalid storage backend '%s': must be '%s' or '%s'", c.Storage.Backend, BackendJSON, BackendSQLite)
	}

	if c.StorePath() == "" {
		return fmt.Errorf("storage path for backend '%s' is empty", c.Storage.Backend)
	}
	return nil
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".birdwatch", "config.yaml")
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".birdwatch", "config.yaml")
}
