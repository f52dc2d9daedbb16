package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/birdwatch/birdwatch/internal/config"
	"github.com/birdwatch/birdwatch/internal/sightings"
)

var (
	verbose   bool
	storePath string
	rootCmd   *cobra.Command
)

func init() {
	log.SetPrefix("birdwatch: ")
	log.SetFlags(0)

	rootCmd = &cobra.Command{
		Use:   "birdwatch",
		Short: "birdwatch - log and manage bird sightings",
		Long: `birdwatch keeps a personal log of bird sightings.

Log new sightings, list them (optionally filtered by species and location),
and export the whole log to a CSV file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the sightings store (overrides config)")
}

// Execute runs the root command
func Execute(version string) error {
	// Add subcommands here to ensure proper initialization order
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(helloCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// debugf logs only when --verbose is set
func debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// loadConfig loads the merged config and applies the --store flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if storePath != "" {
		if cfg.Storage.Backend == config.BackendSQLite {
			cfg.Storage.SQLitePath = storePath
		} else {
			cfg.Storage.Path = storePath
		}
	}
	return cfg, nil
}

// openCatalog builds a catalog from the merged config.
// The returned close func must be called when done.
func openCatalog() (*sightings.Catalog, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return newCatalog(cfg)
}

func newCatalog(cfg *config.Config) (*sightings.Catalog, func() error, error) {
	var store sightings.Store
	closeFn := func() error { return nil }

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		s, err := sightings.OpenSQLiteStore(cfg.StorePath())
		if err != nil {
			return nil, nil, err
		}
		store, closeFn = s, s.Close
	default:
		store = sightings.NewJSONStore(cfg.StorePath())
	}
	debugf("using %s store at %s", cfg.Storage.Backend, cfg.StorePath())

	cat := sightings.NewCatalog(store)
	cat.ExportDir = cfg.Export.Dir
	return cat, closeFn, nil
}
