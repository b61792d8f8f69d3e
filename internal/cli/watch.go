package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/catgraph/pkg/force"
	"github.com/matzehuels/catgraph/pkg/graph"
	"github.com/matzehuels/catgraph/pkg/pipeline"
	"github.com/matzehuels/catgraph/pkg/render/nodelink"
)

// watchCommand creates the watch command, a live terminal preview of the simulation.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		output string
		delay  time.Duration
		every  int
		src    sourceFlags
		lf     layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "watch [products.json|products.toml]",
		Short: "Watch the layout settle in the terminal",
		Long: `Run the simulation and draw each snapshot in the terminal.

Nodes are plotted on a character grid scaled to the window and colored by
category. Press q to quit. With -o the final layout is written to a file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			opts := cfg.Options()
			lf.apply(cmd, &opts)
			if every > 0 {
				opts.Config.SnapshotEvery = every
			}

			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return c.runWatch(cmd.Context(), input, src, opts, delay, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the final layout to this file")
	cmd.Flags().DurationVar(&delay, "delay", 150*time.Millisecond, "pause after each snapshot")
	cmd.Flags().IntVar(&every, "every", 0, "iterations between snapshots (default from config)")
	src.register(cmd)
	lf.register(cmd)

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, input string, src sourceFlags, opts pipeline.Options, delay time.Duration, output string) error {
	products, _, err := c.loadProducts(ctx, input, src)
	if err != nil {
		return err
	}
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newWatchModel(opts.Config, cancel)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())

	// Log records would tear the alt screen, so opts keeps its discard logger.
	opts.Snapshot = func(iteration int, nodes []*force.Node) {
		p.Send(snapshotMsg{iteration: iteration, points: pointsOf(nodes)})
		select {
		case <-ctx.Done():
		case <-time.After(delay):
		}
	}

	// Watch runs bypass the runner cache; the pipeline is called directly.
	go func() {
		l, err := pipeline.GenerateLayout(ctx, products, opts)
		p.Send(doneMsg{layout: l, err: err})
	}()

	final, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("watch: %w", err)
	}
	wm, ok := final.(watchModel)
	if !ok || !wm.done {
		return nil
	}
	if wm.err != nil {
		return wm.err
	}
	if output != "" {
		if err := graph.WriteLayoutFile(wm.layout, output); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Layout complete")
		printFile(output)
	}
	return nil
}

// =============================================================================
// watchModel - bubbletea model for the live preview
// =============================================================================

type point struct {
	x, y     float64
	category string
}

type snapshotMsg struct {
	iteration int
	points    []point
}

type doneMsg struct {
	layout graph.Layout
	err    error
}

type watchModel struct {
	cfg        force.Config
	cancel     context.CancelFunc
	iteration  int
	points     []point
	categories []string
	cols, rows int
	done       bool
	layout     graph.Layout
	err        error
}

func newWatchModel(cfg force.Config, cancel context.CancelFunc) watchModel {
	return watchModel{cfg: cfg, cancel: cancel, cols: 80, rows: 24}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width-2, 10)
		m.rows = max(msg.Height-6, 5)
	case snapshotMsg:
		m.iteration = msg.iteration
		m.points = msg.points
		m.categories = categoriesOf(msg.points)
	case doneMsg:
		m.done = true
		m.err = msg.err
		m.layout = msg.layout
		if msg.err == nil {
			m.iteration = m.cfg.Iterations
			m.points = make([]point, len(msg.layout.Nodes))
			for i, n := range msg.layout.Nodes {
				m.points[i] = point{x: n.X, y: n.Y, category: n.Category}
			}
			m.categories = msg.layout.Categories
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName + " watch"))
	b.WriteString("  ")
	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError + " " + m.err.Error()))
	case m.done:
		b.WriteString(StyleSuccess.Render(iconSuccess + " settled"))
	default:
		b.WriteString(StyleDim.Render(fmt.Sprintf("iteration %d/%d", m.iteration, m.cfg.Iterations)))
	}
	b.WriteString("\n\n")

	for _, line := range plot(m.points, m.cfg, m.cols, m.rows) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(legend(m.categories))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	return b.String()
}

// plot draws points on a cols x rows grid covering the canvas. Later points
// overwrite earlier ones in the same cell.
func plot(points []point, cfg force.Config, cols, rows int) []string {
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, cols)
		for c := range cells[r] {
			cells[r][c] = " "
		}
	}
	for _, p := range points {
		c := cell(p.x, cfg.Width, cols)
		r := cell(p.y, cfg.Height, rows)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(nodelink.CategoryColor(p.category)))
		cells[r][c] = style.Render("●")
	}

	border := StyleDim.Render
	lines := make([]string, 0, rows+2)
	lines = append(lines, border("┌"+strings.Repeat("─", cols)+"┐"))
	for _, row := range cells {
		lines = append(lines, border("│")+strings.Join(row, "")+border("│"))
	}
	lines = append(lines, border("└"+strings.Repeat("─", cols)+"┘"))
	return lines
}

// cell maps a canvas coordinate to a grid index in [0, n).
func cell(v, extent float64, n int) int {
	if extent <= 0 || math.IsNaN(v) {
		return 0
	}
	i := int(v / extent * float64(n))
	return min(max(i, 0), n-1)
}

func pointsOf(nodes []*force.Node) []point {
	pts := make([]point, len(nodes))
	for i, n := range nodes {
		pts[i] = point{x: n.X, y: n.Y, category: n.Category}
	}
	return pts
}

func categoriesOf(points []point) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range points {
		if !seen[p.category] {
			seen[p.category] = true
			cats = append(cats, p.category)
		}
	}
	return cats
}
