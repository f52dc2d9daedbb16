package config

import (
	"os"
)

// Storage backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Storage: StorageConfig{
			Backend:    BackendJSON,
			Path:       "sightings.json",
			SQLitePath: "sightings.db",
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

// WriteDefault writes the default global configuration to a file
func WriteDefault(path string) error {
	content := `# birdwatch Global Configuration
version: "1"

# Sighting log storage
storage:
  backend: json  # "json" (single file) or "sqlite"
  path: sightings.json
  sqlite_path: sightings.db

# CSV export
export:
  # Directory for exports written without --filename
  dir: .

# Read-only web view (birdwatch serve)
serve:
  addr: ":8080"
`
	return os.WriteFile(path, []byte(content), 0644)
}

// WriteProjectDefault writes the default project configuration to a file
func WriteProjectDefault(path string) error {
	content := `# birdwatch Project Configuration
version: "1"

# Override global settings as needed
# storage:
#   backend: json
#   path: sightings.json
# export:
#   dir: exports
`
	return os.WriteFile(path, []byte(content), 0644)
}
