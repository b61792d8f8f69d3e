package graph

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/matzehuels/catgraph/pkg/force"
)

func settled(t *testing.T) *force.Result {
	t.Helper()
	items := []force.Item{
		{ID: "1", Name: "Cuffie", Category: "Audio", Weight: 22, Magnitude: 399.99},
		{ID: "2", Name: "Speaker", Category: "Audio", Weight: 40, Magnitude: 129.99},
		{ID: "3", Name: "Router", Category: "Rete", Weight: -5, Magnitude: 149.99},
	}
	res, err := force.Layout(context.Background(), items, force.DefaultConfig(), force.WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestFromResult(t *testing.T) {
	res := settled(t)
	l := FromResult(res)

	if len(l.Nodes) != 3 || len(l.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges", len(l.Nodes), len(l.Edges))
	}
	if l.Seed != 42 || l.Config.Width != 800 {
		t.Errorf("seed/config not carried: %d %v", l.Seed, l.Config.Width)
	}
	for i, n := range l.Nodes {
		src := res.Nodes[i]
		if n.ID != src.ID || n.X != src.X || n.Y != src.Y || n.Magnitude != src.Magnitude {
			t.Errorf("node %d = %+v, want %+v", i, n, *src)
		}
	}
	if l.Nodes[2].Radius != 10 {
		t.Errorf("negative weight radius = %v, want 10", l.Nodes[2].Radius)
	}
	if l.Edges[0] != (Edge{Source: "1", Target: "2"}) {
		t.Errorf("edge = %+v", l.Edges[0])
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	nodes := []Node{{ID: "a"}, {ID: "b"}}
	tests := []struct {
		name   string
		layout Layout
		want   error
	}{
		{"ok", Layout{Nodes: nodes, Edges: []Edge{{"a", "b"}}}, nil},
		{"duplicate", Layout{Nodes: []Node{{ID: "a"}, {ID: "a"}}}, ErrDuplicateNode},
		{"dangling source", Layout{Nodes: nodes, Edges: []Edge{{"x", "b"}}}, ErrDanglingEdge},
		{"dangling target", Layout{Nodes: nodes, Edges: []Edge{{"a", "x"}}}, ErrDanglingEdge},
		{"self loop", Layout{Nodes: nodes, Edges: []Edge{{"a", "a"}}}, ErrSelfLoop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if tt.want == nil && err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetNodePosition(t *testing.T) {
	l := FromResult(settled(t))

	if err := l.SetNodePosition("2", 5, 6); err != nil {
		t.Fatal(err)
	}
	src, dst, ok := l.Endpoints(l.Edges[0])
	if !ok {
		t.Fatal("Endpoints() not resolved")
	}
	if dst.X != 5 || dst.Y != 6 {
		t.Errorf("target at (%v,%v), want (5,6)", dst.X, dst.Y)
	}
	if src.ID != "1" {
		t.Errorf("source = %s", src.ID)
	}

	if err := l.SetNodePosition("nope", 0, 0); !errors.Is(err, force.ErrUnknownNode) {
		t.Errorf("unknown node: %v", err)
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	l := FromResult(settled(t))
	l.ID = "run-1"
	path := filepath.Join(t.TempDir(), "layout.json")

	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if got.ID != "run-1" || len(got.Nodes) != 3 || got.Nodes[1].X != l.Nodes[1].X {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Config != l.Config {
		t.Errorf("config = %+v, want %+v", got.Config, l.Config)
	}
}

func TestReadLayoutRejectsInvalid(t *testing.T) {
	data := `{"nodes": [{"id": "a"}], "edges": [{"source": "a", "target": "b"}]}`
	if _, err := ReadLayout(bytes.NewBufferString(data)); !errors.Is(err, ErrDanglingEdge) {
		t.Errorf("ReadLayout() = %v, want ErrDanglingEdge", err)
	}
	if _, err := ReadLayout(bytes.NewBufferString("{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
