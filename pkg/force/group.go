package force

// group is the ordered membership of one group key.
type group struct {
	key   string
	nodes []*Node
}

// groupNodes partitions nodes by key, keeping groups in first-occurrence order
// and members in input order.
func groupNodes(items []Item, nodes []*Node, fn GroupFunc) []group {
	var groups []group
	index := make(map[string]int)
	for i, n := range nodes {
		key := fn(items[i])
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, group{key: key})
		}
		groups[gi].nodes = append(groups[gi].nodes, n)
	}
	return groups
}

// linkGroups connects each group member to the next span members of the same
// group. The result depends only on membership order.
func linkGroups(groups []group, span int) []Edge {
	var edges []Edge
	for _, g := range groups {
		for i := range g.nodes {
			for j := i + 1; j < len(g.nodes) && j <= i+span; j++ {
				edges = append(edges, Edge{Source: g.nodes[i], Target: g.nodes[j]})
			}
		}
	}
	return edges
}

// EdgeCount returns the number of edges a group of size n produces with the
// given span.
func EdgeCount(n, span int) int {
	total := 0
	for i := range n {
		total += min(span, n-1-i)
	}
	return total
}
