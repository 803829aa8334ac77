package autodiff

import (
	"fmt"
	"io"
	"strings"
)

// Trace writes an indented rendering of the graph rooted at v to w, one
// node per line with operands nested beneath their consumer. A node
// reachable through more than one path is printed at its first visit
// only; the set of printed nodes is keyed by identity, so two distinct
// nodes holding equal values are never conflated.
func Trace(w io.Writer, v *Value) {
	traceNode(w, v, 0, make(map[*Value]struct{}))
}

func traceNode(w io.Writer, v *Value, depth int, seen map[*Value]struct{}) {
	if _, ok := seen[v]; ok {
		return
	}
	seen[v] = struct{}{}

	fmt.Fprintf(w, "%s%s\n", strings.Repeat("|   ", depth), v)
	for _, operand := range v.prev {
		traceNode(w, operand, depth+1, seen)
	}
}
