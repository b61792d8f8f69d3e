package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/catgraph/pkg/force"
	"github.com/matzehuels/catgraph/pkg/graph"
)

func TestCell(t *testing.T) {
	tests := []struct {
		v, extent float64
		n, want   int
	}{
		{0, 800, 80, 0},
		{400, 800, 80, 40},
		{799.9, 800, 80, 79},
		{800, 800, 80, 79},
		{-5, 800, 80, 0},
		{10, 0, 80, 0},
	}
	for _, tt := range tests {
		if got := cell(tt.v, tt.extent, tt.n); got != tt.want {
			t.Errorf("cell(%g, %g, %d) = %d, want %d", tt.v, tt.extent, tt.n, got, tt.want)
		}
	}
}

func TestPlotPlacesPoints(t *testing.T) {
	cfg := force.DefaultConfig()
	lines := plot([]point{{x: 0, y: 0, category: "Audio"}, {x: 799, y: 599, category: "Rete"}}, cfg, 20, 10)

	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 10 rows plus borders", len(lines))
	}
	if !strings.Contains(lines[1], "●") || !strings.Contains(lines[10], "●") {
		t.Error("corner points not drawn in first and last rows")
	}
	for _, l := range lines[2:10] {
		if strings.Contains(l, "●") {
			t.Error("unexpected point in middle rows")
		}
	}
}

func TestWatchModelUpdates(t *testing.T) {
	cancelled := false
	m := newWatchModel(force.DefaultConfig(), func() { cancelled = true })

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m = next.(watchModel)
	if m.cols != 58 || m.rows != 24 {
		t.Errorf("grid %dx%d, want 58x24", m.cols, m.rows)
	}

	next, _ = m.Update(snapshotMsg{iteration: 30, points: []point{{x: 1, y: 1, category: "Audio"}, {x: 2, y: 2, category: "Rete"}}})
	m = next.(watchModel)
	if m.iteration != 30 || len(m.categories) != 2 {
		t.Errorf("after snapshot: iteration %d, categories %v", m.iteration, m.categories)
	}
	if !strings.Contains(m.View(), "iteration 30/100") {
		t.Error("view missing progress")
	}

	layout := graph.Layout{
		Categories: []string{"Audio"},
		Nodes:      []graph.Node{{ID: "1", Category: "Audio", X: 100, Y: 100}},
	}
	next, _ = m.Update(doneMsg{layout: layout})
	m = next.(watchModel)
	if !m.done || len(m.points) != 1 || m.iteration != 100 {
		t.Errorf("after done: %+v", m)
	}
	if !strings.Contains(m.View(), "settled") {
		t.Error("view missing settled status")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || !cancelled {
		t.Error("q should cancel the run and quit")
	}
}

func TestWatchModelShowsError(t *testing.T) {
	m := newWatchModel(force.DefaultConfig(), nil)
	next, _ := m.Update(doneMsg{err: errors.New("boom")})
	if !strings.Contains(next.(watchModel).View(), "boom") {
		t.Error("error not shown")
	}
}
