package config

// Config represents the full birdwatch configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Where and how the sighting log is stored
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// CSV export settings
	Export ExportConfig `yaml:"export" mapstructure:"export"`

	// Read-only web view
	Serve ServeConfig `yaml:"serve" mapstructure:"serve"`
}

// StorageConfig selects the store backend and its location
type StorageConfig struct {
	Backend    string `yaml:"backend" mapstructure:"backend"` // "json" or "sqlite"
	Path       string `yaml:"path" mapstructure:"path"`
	SQLitePath string `yaml:"sqlite_path" mapstructure:"sqlite_path"`
}

// ExportConfig configures CSV export
type ExportConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ServeConfig configures the web view
type ServeConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// StorePath returns the file used by the configured backend
func (c *Config) StorePath() string {
	if c.Storage.Backend == BackendSQLite {
		return c.Storage.SQLitePath
	}
	return c.Storage.Path
}
