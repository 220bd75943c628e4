package circuit

import (
	"math/big"

	"github.com/consensys/gnark/constraint"
)

// AssignedScalar is an opaque handle to a scalar materialized as circuit
// cells. The concrete representation is defined by the scalar chip, which
// type-asserts its own handles, like frontend.Variable in gnark.
type AssignedScalar interface{}

// AssignedPoint is an opaque handle to a curve point materialized as circuit
// cells, defined by the curve chip.
type AssignedPoint interface{}

// Point is a native affine curve point, the chip-defined counterpart of
// AssignedPoint usable as a compile-time constant.
type Point interface{}

// Witness wraps a value that may be unknown during some construction passes
// (e.g. key generation, where only the circuit shape matters).
type Witness[T any] struct {
	value T
	known bool
}

// Known wraps a value known to the prover.
func Known[T any](v T) Witness[T] {
	return Witness[T]{value: v, known: true}
}

// Unknown returns a placeholder witness.
func Unknown[T any]() Witness[T] {
	return Witness[T]{}
}

// Value returns the wrapped value and whether it is known.
func (w Witness[T]) Value() (T, bool) {
	return w.value, w.known
}

// Context tracks cell assignments and row usage during circuit construction.
// It is created by the chip set and exclusively owned by the loader for the
// duration of a construction pass. Offset is only used by row metering.
type Context interface {
	Offset() int
}

// ScalarTerm is a coefficient applied to an assigned scalar.
type ScalarTerm struct {
	Coeff constraint.Element
	Value AssignedScalar
}

// ProductTerm is a coefficient applied to a product of two assigned scalars.
type ProductTerm struct {
	Coeff constraint.Element
	Lhs   AssignedScalar
	Rhs   AssignedScalar
}

// MSMPair is one term of a multi-scalar multiplication.
type MSMPair struct {
	Point  AssignedPoint
	Scalar AssignedScalar
}

// ScalarChip implements scalar field operations inside the circuit.
type ScalarChip interface {
	// AssignConstant assigns a field element known at construction time.
	AssignConstant(ctx Context, constant constraint.Element) (AssignedScalar, error)
	// AssignWitness assigns a possibly-unknown field element.
	AssignWitness(ctx Context, w Witness[constraint.Element]) (AssignedScalar, error)
	// AssertEqual constrains lhs == rhs.
	AssertEqual(ctx Context, lhs, rhs AssignedScalar) error
	// Sub returns lhs - rhs.
	Sub(ctx Context, lhs, rhs AssignedScalar) (AssignedScalar, error)
	// Neg returns -a.
	Neg(ctx Context, a AssignedScalar) (AssignedScalar, error)
	// Invert returns the inverse of a.
	Invert(ctx Context, a AssignedScalar) (AssignedScalar, error)
	// SumWithCoeffAndConst returns constant + Σ coeff·value as one gate.
	SumWithCoeffAndConst(ctx Context, terms []ScalarTerm, constant constraint.Element) (AssignedScalar, error)
	// SumProductsWithCoeffAndConst returns constant + Σ coeff·lhs·rhs as one gate.
	SumProductsWithCoeffAndConst(ctx Context, terms []ProductTerm, constant constraint.Element) (AssignedScalar, error)
}

// EccChip implements curve group operations inside the circuit.
type EccChip interface {
	// ScalarChip returns the scalar chip paired with this curve chip.
	ScalarChip() ScalarChip
	// AssignPoint assigns a possibly-unknown curve point.
	AssignPoint(ctx Context, w Witness[Point]) (AssignedPoint, error)
	// Coordinates returns the affine coordinates of a native point. Fails for
	// the point at infinity, which has no affine representation.
	Coordinates(p Point) (x, y *big.Int, err error)
	// AssertEqual constrains lhs == rhs.
	AssertEqual(ctx Context, lhs, rhs AssignedPoint) error
	// Add returns lhs + rhs.
	Add(ctx Context, lhs, rhs AssignedPoint) (AssignedPoint, error)
	// MultiScalarMultiplication returns Σ scalar·point over the batch as one
	// fused operation.
	MultiScalarMultiplication(ctx Context, pairs []MSMPair) (AssignedPoint, error)
	// Normalize converts an accumulated point to canonical affine form.
	Normalize(ctx Context, p AssignedPoint) (AssignedPoint, error)
}
