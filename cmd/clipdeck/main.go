package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/clipdeck/clipdeck-terminal/internal/demo"
	"github.com/clipdeck/clipdeck-terminal/pkg/backend/memory"
	"github.com/clipdeck/clipdeck-terminal/pkg/files"
	"github.com/clipdeck/clipdeck-terminal/pkg/models"
	"github.com/clipdeck/clipdeck-terminal/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var demoItems int

var rootCmd = &cobra.Command{
	Use:   "clipdeck",
	Short: "Terminal UI for browsing clipboard history",
	Long:  `Clipdeck is a terminal UI for a clipboard history: a virtualized, searchable list of text, html, image, vector and color clips, organized into groups. Without a capture daemon attached it runs against a built-in demo backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := files.ReadSettings()
		if err != nil {
			// No config file is the common case; run with defaults.
			settings = models.DefaultSettings()
		}
		if demoItems > 0 {
			settings.Demo.Items = demoItems
		}

		store := memory.New(settings)
		demo.Seed(store, settings)

		app := tui.NewApp(store, settings)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long:  `Creates the clipdeck settings file with its default values so they can be edited.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := files.SettingsPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to resolve the config directory: %v\n", err)
			os.Exit(1)
		}
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Settings already exist at %s\n", path)
			return
		}
		if err := files.WriteSettings(models.DefaultSettings()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to write settings: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Wrote default settings to %s\n", path)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Clipdeck",
	Long:  `Display the current version of the Clipdeck CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Clipdeck version %s\n", version)
	},
}

func init() {
	rootCmd.Flags().IntVar(&demoItems, "demo-items", 0, "number of demo history entries to seed (overrides settings)")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
