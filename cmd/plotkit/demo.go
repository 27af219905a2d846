package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/goplot/plotkit"
	"github.com/goplot/plotkit/backend"
)

// newDemoCommand creates the demo subcommand.
func newDemoCommand() *cobra.Command {
	var (
		out    string
		name   string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a demo figure to a PNG file",
		Long: `Demo renders a sine and cosine figure through a rendering backend.

Example:
  plotkit demo -o demo.png
  plotkit demo -o demo.png --backend agg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name != "" {
				if err := backend.Use(name); err != nil {
					return err
				}
			} else if err := backend.UseDefault(); err != nil {
				return err
			}
			defer backend.Deactivate()

			c, err := backend.Active().NewCanvas(width, height)
			if err != nil {
				return err
			}

			fig := demoFigure(width, height)
			if err := fig.Render(c); err != nil {
				return err
			}
			if err := c.Pixmap().SavePNG(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, backend %s)\n",
				out, width, height, backend.ActiveName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "demo.png", "output PNG path")
	cmd.Flags().StringVar(&name, "backend", "", "backend to render with (default: best available)")
	cmd.Flags().IntVar(&width, "width", 640, "figure width in pixels")
	cmd.Flags().IntVar(&height, "height", 480, "figure height in pixels")

	return cmd
}

// demoFigure builds a sine/cosine figure over one period.
func demoFigure(width, height int) *plotkit.Figure {
	const n = 200
	x := make([]float64, n)
	sin := make([]float64, n)
	cos := make([]float64, n)
	for i := range n {
		x[i] = float64(i) / (n - 1) * 2 * math.Pi
		sin[i] = math.Sin(x[i])
		cos[i] = math.Cos(x[i])
	}

	fig := plotkit.NewFigure(plotkit.WithSize(width, height))
	ax := fig.AddAxes()
	ax.Plot(x, sin, plotkit.WithLabel("sin"))
	ax.Plot(x, cos, plotkit.WithLabel("cos"))
	ax.SetTitle("sine and cosine")
	ax.SetXLabel("x")
	ax.SetYLabel("y")
	ax.SetGrid(true)
	return fig
}
