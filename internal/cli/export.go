package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/birdwatch/birdwatch/internal/sightings"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all bird sightings to a CSV file",
	Long: `Export all bird sightings to a CSV file.

Without --filename the file is named bird_sightings_YYYYMMDD_HHMMSS.csv and
written to the configured export directory.`,
	Example: `  birdwatch export
  birdwatch export --filename my_sightings.csv`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("filename", "", "Name of the CSV file to create")
}

func runExport(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("filename")

	cat, closeFn, err := openCatalog()
	if err != nil {
		return err
	}
	defer closeFn()

	return exportSightings(cmd.OutOrStdout(), cat, filename)
}

// exportSightings reports write failures instead of returning them; only
// load failures end the command with an error.
func exportSightings(out io.Writer, cat *sightings.Catalog, filename string) error {
	res, err := cat.Export(filename)

	var exportErr *sightings.ExportError
	if errors.As(err, &exportErr) {
		fmt.Fprintf(out, "Error exporting sightings: %v\n", exportErr.Err)
		return nil
	}
	if err != nil {
		return err
	}

	if res.Count == 0 {
		fmt.Fprintln(out, "No sightings to export.")
		return nil
	}

	fmt.Fprintf(out, "Successfully exported %d sightings to %s\n", res.Count, res.Filename)
	return nil
}
