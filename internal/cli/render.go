package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/printforge/marrow/pkg/meshio"
	"github.com/printforge/marrow/pkg/render/medial"
)

var renderFormats = []string{"svg", "png", "dot"}

// renderCommand creates the render command for medial axis diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		detailed   bool
		scale      float64
	)

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a skeletal graph as a medial axis diagram",
		Long: `Render a skeletal graph as a medial axis diagram.

Node positions are pinned to their micron coordinates, so the diagram is a
true-scale picture of the skeleton. Skeleton edges are solid, ribs dashed,
support edges dotted, and central edges highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("detailed") {
				detailed = c.Config.Detailed
			}
			formats := parseFormats(formatsStr, c.Config.Format)
			for _, f := range formats {
				if !slices.Contains(renderFormats, f) {
					return fmt.Errorf("unknown format %q (want one of %s)",
						f, strings.Join(renderFormats, ", "))
				}
			}
			return c.runRender(args[0], output, formats, medial.Options{
				Detailed: detailed,
				Scale:    scale,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with their boundary distance")
	cmd.Flags().Float64Var(&scale, "scale", 0, "microns-to-inches scale (default 0.001)")

	return cmd
}

func (c *CLI) runRender(input, output string, formats []string, opts medial.Options) error {
	g, err := meshio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	dot := medial.ToDOT(g, opts)
	base := outputBase(input, output)

	p := newProgress(c.Logger)
	for _, format := range formats {
		var data []byte
		switch format {
		case "dot":
			data = []byte(dot)
		case "svg":
			data, err = medial.RenderSVG(dot)
		case "png":
			data, err = medial.RenderPNG(dot)
		}
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}

		path := base + "." + format
		if output != "" && len(formats) == 1 {
			path = output
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	p.done(fmt.Sprintf("Rendered %d file(s)", len(formats)))

	return nil
}

// outputBase derives the extensionless output base path.
func outputBase(input, output string) string {
	base := input
	if output != "" {
		base = output
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}
