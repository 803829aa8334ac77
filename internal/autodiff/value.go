// Package autodiff implements reverse-mode automatic differentiation over
// a dynamically built graph of scalar values.
//
// Applying an operator to one or two existing Values computes the result
// immediately and returns a new Value that records the operation and its
// operands, so the forward pass extends a DAG as the program runs.
// Backward then walks that DAG once in reverse topological order and
// accumulates the derivative of the root with respect to every reachable
// node into the node itself.
//
// Usage:
//
//	a := autodiff.New(2.0)
//	b := autodiff.New(-3.0)
//	c := a.Mul(b)
//
//	c.Backward()
//	fmt.Println(a.Grad()) // dc/da = b = -3
package autodiff

import "fmt"

// Value is a single node in the computation graph: a scalar, its
// accumulated gradient, and a record of the operation that produced it.
//
// The payload (data, op, operands) is immutable after construction. The
// gradient is the one mutable cell; during a backward pass it is only
// ever added to, so a node consumed by several downstream nodes collects
// every contribution instead of keeping the last one. Nodes are shared by
// pointer, never copied, and edges point strictly from output to input,
// which makes the graph acyclic by construction.
type Value struct {
	data     float64
	grad     float64
	label    string
	op       Op
	prev     []*Value
	backward func()
}

// New creates a leaf node holding data, with zero gradient and no
// operands.
func New(data float64) *Value {
	return &Value{data: data, op: OpLeaf}
}

// WithLabel creates a leaf node carrying a human-readable label for trace
// output. The label has no effect on computation.
func WithLabel(data float64, label string) *Value {
	return &Value{data: data, label: label, op: OpLeaf}
}

// Data returns the forward-computed scalar.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the gradient accumulated by the most recent backward
// pass(es): the derivative of the backward root with respect to this
// node.
func (v *Value) Grad() float64 {
	return v.grad
}

// Label returns the node's label, empty unless set at construction.
func (v *Value) Label() string {
	return v.label
}

// Op returns the operation that produced this node.
func (v *Value) Op() Op {
	return v.op
}

// Operands returns a copy of the node's operand list, in the order the
// producing operator received them. Leaves return nil.
func (v *Value) Operands() []*Value {
	if len(v.prev) == 0 {
		return nil
	}
	operands := make([]*Value, len(v.prev))
	copy(operands, v.prev)
	return operands
}

// ZeroGrad resets this node's gradient to zero. It touches this node
// only; callers sweep it over whatever set of nodes they want reset
// (typically the parameters) before the next backward pass.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// AdjustData adds delta to the node's data in place. This is the
// parameter-update hook for training loops. It is meaningful on leaf
// nodes only; calling it on an interior node leaves that node's data
// inconsistent with its operands, which the engine does not detect.
func (v *Value) AdjustData(delta float64) {
	v.data += delta
}

// SetData replaces the node's data in place. Like AdjustData it is
// meant for leaf nodes; checkpoint loading uses it to restore saved
// parameter values.
func (v *Value) SetData(data float64) {
	v.data = data
}

// String renders the node as "[ label | val = X | grad = Y ]", falling
// back to the op name when the node has no label.
func (v *Value) String() string {
	name := v.label
	if name == "" {
		name = v.op.String()
	}
	return fmt.Sprintf("[ %s | val = %v | grad = %v ]", name, v.data, v.grad)
}
