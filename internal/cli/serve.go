package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/birdwatch/birdwatch/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only view of the sighting log over HTTP",
	Long: `Serve a read-only JSON and CSV view of the sighting log.

Endpoints:
  GET /api/sightings?species=&location=   filtered listing
  GET /api/export.csv                     CSV export download
  GET /healthz                            liveness check`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	cat, closeFn, err := newCatalog(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	log.Printf("serving %s on %s", cfg.StorePath(), addr)
	return web.NewServer(cat).Run(addr)
}
