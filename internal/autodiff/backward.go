package autodiff

// Backward computes, for every node reachable from v through operand
// edges, the derivative of v's value with respect to that node's value,
// accumulated into the node's grad field.
//
// The graph is walked exactly once. A post-order depth-first traversal
// produces a topological order in which every operand precedes every node
// that consumes it; v's own grad is then seeded to 1 and the order is
// replayed in reverse, so each node's derivative rule runs only after all
// of its consumers have deposited their contributions. The visited set is
// keyed by node identity, so a node shared between branches is ordered
// once and its gradient sums across every path (multivariate chain rule).
//
// Gradients accumulate: a second Backward without ZeroGrad in between
// adds on top of the previous pass. Nodes not reachable from v keep
// whatever grad they already had. Calling Backward on a lone leaf seeds
// its grad to 1 and does nothing else.
func (v *Value) Backward() {
	order := topoSort(v)
	v.grad = 1.0
	for i := len(order) - 1; i >= 0; i-- {
		if node := order[i]; node.backward != nil {
			node.backward()
		}
	}
}

// topoSort returns every node reachable from root, ordered so that each
// operand appears strictly before each node that consumes it. The visited
// set is keyed by pointer identity, never by label or value, so shared
// subexpressions appear exactly once.
func topoSort(root *Value) []*Value {
	order := make([]*Value, 0, 64)
	visited := make(map[*Value]struct{})

	var visit func(*Value)
	visit = func(node *Value) {
		if _, ok := visited[node]; ok {
			return
		}
		visited[node] = struct{}{}
		for _, operand := range node.prev {
			visit(operand)
		}
		order = append(order, node)
	}
	visit(root)

	return order
}
