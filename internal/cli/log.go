package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birdwatch/birdwatch/internal/sightings"
)

var logCmd = &cobra.Command{
	Use:   "log SPECIES",
	Short: "Log a new bird sighting",
	Long: `Log a new bird sighting.

Location and notes are prompted for when their flags are not given.
Logging the same species at the same place again adds a new entry.`,
	Example: `  birdwatch log "American Robin" --location "Central Park" --count 2 --notes "Singing in tree"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runLog,
}

func init() {
	logCmd.Flags().String("location", "", "Location of the sighting")
	logCmd.Flags().Int("count", sightings.DefaultCount, "Number of individuals seen")
	logCmd.Flags().String("notes", "", "Additional notes about the sighting")
}

func runLog(cmd *cobra.Command, args []string) error {
	location, _ := cmd.Flags().GetString("location")
	count, _ := cmd.Flags().GetInt("count")
	notes, _ := cmd.Flags().GetString("notes")

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	if !cmd.Flags().Changed("location") {
		v, err := prompt(in, out, "Location", true)
		if err != nil {
			return err
		}
		location = v
	}

	if !cmd.Flags().Changed("notes") {
		v, err := prompt(in, out, "Notes (optional)", false)
		if err != nil {
			return err
		}
		notes = v
	}

	cat, closeFn, err := openCatalog()
	if err != nil {
		return err
	}
	defer closeFn()

	return logSighting(out, cat, sightings.LogRequest{
		Species:  args[0],
		Location: location,
		Notes:    notes,
		Count:    &count,
	})
}

func logSighting(out io.Writer, cat *sightings.Catalog, req sightings.LogRequest) error {
	s, err := cat.Log(req)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Sighting logged: %s\n", s)
	return nil
}

// prompt reads one line for label. Required prompts repeat until a
// non-empty answer is given.
func prompt(in *bufio.Reader, out io.Writer, label string, required bool) (string, error) {
	for {
		fmt.Fprintf(out, "%s: ", label)

		line, err := in.ReadString('\n')
		value := strings.TrimRight(line, "\r\n")
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}

		if value != "" || !required {
			return value, nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("missing value for %s", strings.ToLower(label))
		}
	}
}
