package circuit

import "github.com/consensys/gnark/constraint"

type valueKind uint8

const (
	constantValue valueKind = iota
	assignedValue
)

// value is the two-variant union backing a Scalar: either a field element
// known at construction time, or a handle to circuit cells. Values are
// immutable; arithmetic produces new ones.
type value struct {
	kind     valueKind
	constant constraint.Element
	assigned AssignedScalar
}

func constantOf(c constraint.Element) value {
	return value{kind: constantValue, constant: c}
}

func assignedOf(a AssignedScalar) value {
	return value{kind: assignedValue, assigned: a}
}

func (v value) isConstant() bool {
	return v.kind == constantValue
}
