package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/printforge/marrow/pkg/meshio"
	"github.com/printforge/marrow/pkg/skeletal"
)

// checkCommand creates the check command for validating graph files.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [graph.json]",
		Short: "Validate a skeletal graph file",
		Long: `Validate a skeletal graph file.

The check command loads a graph and verifies its half-edge topology: twin
symmetry, cell loop links, endpoint consistency, and distance fields. On
success it prints summary statistics about the skeleton.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0])
		},
	}
	return cmd
}

func (c *CLI) runCheck(input string) error {
	g, err := meshio.ImportJSON(input)
	if err != nil {
		printError("Graph is invalid")
		return fmt.Errorf("check %s: %w", input, err)
	}

	printSuccess("Graph is valid")
	printStats(g.NodeCount(), g.EdgeCount())

	central, maxima, junctions := 0, 0, 0
	for _, e := range g.Edges() {
		if e.IsCentral() {
			central++
		}
	}
	for _, n := range g.Nodes() {
		if n.IsLocalMaximum(false) {
			maxima++
		}
		if n.IsMultiIntersection() {
			junctions++
		}
	}

	printKeyValue("central", fmt.Sprintf("%d half-edges", central))
	printKeyValue("local maxima", fmt.Sprintf("%d", maxima))
	printKeyValue("junctions", fmt.Sprintf("%d", junctions))

	if short := countShort(g, c.Config.SnapDist); short > 0 {
		printWarning("%d edges below the %dµm snap tolerance; run 'marrow collapse'", short, c.Config.SnapDist)
	}
	return nil
}

// countShort counts collapsible skeleton edges below the tolerance.
func countShort(g *skeletal.Graph, snapDist int64) int {
	short := 0
	for _, e := range g.Edges() {
		if e.From != e.To && e.Role == skeletal.RoleSkeleton && e.Length() < snapDist {
			short++
		}
	}
	return short / 2
}
