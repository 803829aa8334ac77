package autodiff

// Op identifies the operation that produced a Value.
type Op int

// Operations recorded on graph nodes. Leaves carry OpLeaf; every other
// tag corresponds to one operator constructor.
const (
	OpLeaf Op = iota
	OpAdd
	OpMul
	OpPow
	OpNeg
	OpReLU
	OpExp
	OpTanh
)

// String returns a human-readable name for the operation.
func (op Op) String() string {
	switch op {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpPow:
		return "pow"
	case OpNeg:
		return "neg"
	case OpReLU:
		return "relu"
	case OpExp:
		return "exp"
	case OpTanh:
		return "tanh"
	default:
		return "unknown"
	}
}
