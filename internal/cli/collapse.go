package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/printforge/marrow/pkg/meshio"
)

// collapseCommand creates the collapse command for removing tiny edges.
func (c *CLI) collapseCommand() *cobra.Command {
	var (
		snapDist int64
		output   string
	)

	cmd := &cobra.Command{
		Use:   "collapse [graph.json]",
		Short: "Collapse edges shorter than the snap tolerance",
		Long: `Collapse edges shorter than the snap tolerance.

Trapezoidation leaves near-zero-length edges where boundary features almost
coincide. The collapse command merges their endpoints, repairs the
surrounding cell loops, and writes the cleaned graph back out. Running it
again on its own output is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("snap-dist") {
				snapDist = c.Config.SnapDist
			}
			return c.runCollapse(args[0], output, snapDist)
		},
	}

	cmd.Flags().Int64Var(&snapDist, "snap-dist", DefaultConfig().SnapDist, "collapse tolerance in microns")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite the input)")

	return cmd
}

func (c *CLI) runCollapse(input, output string, snapDist int64) error {
	g, err := meshio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	nodes, edges := g.NodeCount(), g.EdgeCount()
	c.Logger.Debug("loaded graph", "nodes", nodes, "edges", edges, "snap_dist", snapDist)

	p := newProgress(c.Logger)
	g.CollapseSmallEdges(snapDist)
	removed := (edges - g.EdgeCount()) / 2
	p.done(fmt.Sprintf("Collapsed %d edges", removed))

	if err := g.Validate(); err != nil {
		return fmt.Errorf("collapse left an inconsistent graph: %w", err)
	}

	if output == "" {
		output = input
	}
	if err := meshio.ExportJSON(g, output); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	if removed == 0 {
		printInfo("No edges below %dµm", snapDist)
	} else {
		printSuccess("Removed %d edges, %d nodes", removed, nodes-g.NodeCount())
	}
	printStats(g.NodeCount(), g.EdgeCount())
	printFile(output)
	return nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s, fallback string) []string {
	if s == "" {
		return []string{fallback}
	}
	return strings.Split(s, ",")
}
