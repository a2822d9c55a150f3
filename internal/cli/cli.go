// Package cli implements the marrow command-line interface.
//
// This package provides commands for validating skeletal graph files,
// collapsing below-tolerance edges, and rendering graphs as medial axis
// diagrams. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - check: Validate a graph file's topology and report statistics
//   - collapse: Remove edges shorter than the snap tolerance
//   - render: Generate SVG, PNG, or DOT diagrams of the medial axis
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/printforge/marrow/pkg/buildinfo"
)

// appName is the application name used for config lookup and display.
const appName = "marrow"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "Marrow inspects and repairs skeletal trapezoidation graphs",
		Long:         `Marrow is a CLI tool for working with the half-edge skeletal graphs produced by medial axis trapezoidation: validating their topology, collapsing degenerate edges, and rendering them for inspection.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a marrow.toml config file")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.collapseCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}
