package graph_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/catgraph/pkg/graph"
)

func ExampleReadLayout() {
	data := `{
		"nodes": [
			{"id": "1", "category": "Audio", "x": 100, "y": 120},
			{"id": "2", "category": "Audio", "x": 250, "y": 120}
		],
		"edges": [{"source": "1", "target": "2"}]
	}`

	l, err := graph.ReadLayout(strings.NewReader(data))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	for _, e := range l.Edges {
		src, dst, _ := l.Endpoints(e)
		fmt.Printf("%s (%.0f,%.0f) -- %s (%.0f,%.0f)\n", src.ID, src.X, src.Y, dst.ID, dst.X, dst.Y)
	}
	// Output:
	// 1 (100,120) -- 2 (250,120)
}
