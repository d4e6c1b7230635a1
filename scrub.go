package main

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tharindu1999/portfolio/internal/layout"
	"github.com/tharindu1999/portfolio/internal/section"
	"github.com/tharindu1999/portfolio/internal/view"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("14"))
)

// scrubOptions describe the simulated page.
type scrubOptions struct {
	viewport   float64
	step       float64
	heights    []float64
	referenceY float64
}

func newScrubCmd() *cobra.Command {
	opts := scrubOptions{}
	cmd := &cobra.Command{
		Use:   "scrub",
		Short: "Scroll a simulated page and print the animation state at each offset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !finite(opts.step) || opts.step <= 0 {
				return fmt.Errorf("step must be a positive number, got %v", opts.step)
			}
			if !finite(opts.viewport) || opts.viewport <= 0 {
				return fmt.Errorf("viewport must be a positive number, got %v", opts.viewport)
			}
			ids := section.All()
			if len(opts.heights) != len(ids) {
				return fmt.Errorf("need %d section heights, got %d", len(ids), len(opts.heights))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), scrub(cmd.Context(), opts))
			return nil
		},
	}
	cmd.Flags().Float64Var(&opts.viewport, "viewport", 1000, "viewport height in px")
	cmd.Flags().Float64Var(&opts.step, "step", 250, "scroll distance between rows in px")
	cmd.Flags().Float64SliceVar(&opts.heights, "heights", []float64{1000, 800, 900, 1400, 600, 500, 800},
		"section heights in document order")
	cmd.Flags().Float64Var(&opts.referenceY, "reference-y", section.DefaultReferenceY, "active section reference line in px")
	return cmd
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// scrub renders one table row per scroll step, one frame per step.
func scrub(ctx context.Context, opts scrubOptions) string {
	blocks := make([]layout.Block, 0, len(opts.heights))
	for i, id := range section.All() {
		blocks = append(blocks, layout.Block{ID: string(id), Height: opts.heights[i]})
	}
	page := layout.NewPage(opts.viewport, blocks...)
	browser := view.NewHeadless(page)

	var last view.Frame
	v := view.New(browser, view.RendererFunc(func(f view.Frame) { last = f }), view.WithReferenceY(opts.referenceY))
	defer v.Mount(ctx)()
	browser.Tick()

	f2 := func(x float64) string { return strconv.FormatFloat(x, 'f', 3, 64) }
	var rows [][]string
	for y := 0.0; ; y += opts.step {
		browser.Scroll(y)
		browser.Tick()
		rows = append(rows, []string{
			strconv.FormatFloat(page.ScrollY(), 'f', 0, 64),
			f2(last.Scroll.Global),
			f2(last.Scroll.Section),
			f2(last.Motion.Hero.Opacity),
			f2(last.Motion.Hero.TranslateY),
			f2(last.Motion.Stars.Opacity),
			f2(last.Motion.Stars.Scale),
			f2(last.ProgressBar),
			string(last.Active),
		})
		if y >= page.MaxScroll() {
			break
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("scrollY", "global", "hero", "opacity", "lift", "stars", "scale", "bar", "active").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 8:
				return activeStyle
			}
			return cellStyle
		}).
		String()
}
