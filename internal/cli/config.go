package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/birdwatch/birdwatch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage birdwatch configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show merged configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file paths",
	Run:   runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file.

Without flags: creates .birdwatch/config.yaml in the current directory.
With --global: creates ~/.birdwatch/config.yaml.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().Bool("global", false, "Write the global config")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return showConfig(cmd.OutOrStdout(), cfg)
}

func showConfig(out io.Writer, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Fprintln(out, "# Merged configuration (defaults + global + project + env)")
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Global:  %s\n", config.GlobalConfigPath())
	fmt.Fprintf(out, "Project: %s\n", config.ProjectConfigPath())
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	global, _ := cmd.Flags().GetBool("global")
	force, _ := cmd.Flags().GetBool("force")

	path := config.ProjectConfigPath()
	write := config.WriteProjectDefault
	if global {
		path = config.GlobalConfigPath()
		write = config.WriteDefault
	}

	if err := initConfig(path, write, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func initConfig(path string, write func(string) error, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := write(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
