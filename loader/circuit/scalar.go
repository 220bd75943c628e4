package circuit

import (
	"fmt"

	"github.com/consensys/gnark/constraint"
)

// Scalar is an immutable handle to a scalar value managed by a Loader. Two
// Scalars are equal iff they have the same identity index: equality is
// provenance-based, not numeric. Two independently loaded Scalars holding the
// same value compare unequal.
type Scalar struct {
	loader *Loader
	index  int
	value  value
}

// Loader returns the loader this scalar belongs to.
func (s *Scalar) Loader() *Loader {
	return s.loader
}

// Index returns the identity index.
func (s *Scalar) Index() int {
	return s.index
}

// Equal reports identity equality.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.index == other.index
}

// Constant returns the folded constant value, if this scalar holds one.
func (s *Scalar) Constant() (constraint.Element, bool) {
	if s.value.isConstant() {
		return s.value.constant, true
	}
	return constraint.Element{}, false
}

// Assigned returns the circuit cells backing this scalar. A scalar still
// holding a constant is materialized into the circuit on demand; the
// materialization assigns new cells but leaves the Scalar's own identity and
// value untouched.
func (s *Scalar) Assigned() AssignedScalar {
	if s.value.isConstant() {
		return s.loader.AssignConstantScalar(s.value.constant).Assigned()
	}
	return s.value.assigned
}

// Add returns s + other as a new Scalar.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return s.loader.add(s, other)
}

// Sub returns s - other as a new Scalar.
func (s *Scalar) Sub(other *Scalar) *Scalar {
	return s.loader.sub(s, other)
}

// Mul returns s * other as a new Scalar.
func (s *Scalar) Mul(other *Scalar) *Scalar {
	return s.loader.mul(s, other)
}

// Neg returns -s as a new Scalar.
func (s *Scalar) Neg() *Scalar {
	return s.loader.neg(s)
}

// Invert returns the inverse of s as a new Scalar. There is no direct division; callers
// compose Invert with Mul.
func (s *Scalar) Invert() *Scalar {
	return s.loader.invert(s)
}

func (s *Scalar) String() string {
	if c, ok := s.Constant(); ok {
		return fmt.Sprintf("Scalar{index: %d, constant: %s}", s.index, s.loader.fld.String(c))
	}
	return fmt.Sprintf("Scalar{index: %d, assigned}", s.index)
}
