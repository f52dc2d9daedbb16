package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/birdwatch/birdwatch/internal/sightings"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged bird sightings",
	Long: `List logged bird sightings in the order they were logged.

Filters match the whole species or location name, ignoring case.
When both are given a sighting must match both.`,
	Example: `  birdwatch list
  birdwatch list --species "American Robin"
  birdwatch list --species "American Robin" --location "Central Park"`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("species", "", "Filter results by species name")
	listCmd.Flags().String("location", "", "Filter results by location")
}

func runList(cmd *cobra.Command, args []string) error {
	species, _ := cmd.Flags().GetString("species")
	location, _ := cmd.Flags().GetString("location")

	cat, closeFn, err := openCatalog()
	if err != nil {
		return err
	}
	defer closeFn()

	return listSightings(cmd.OutOrStdout(), cat, sightings.Filter{Species: species, Location: location})
}

func listSightings(out io.Writer, cat *sightings.Catalog, f sightings.Filter) error {
	listing, err := cat.List(f)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, listing.Message())
	for _, line := range listing.Lines() {
		fmt.Fprintln(out, line)
	}
	return nil
}
