// Package loader defines the capability surface a generic verifier algorithm
// uses to combine scalar and curve values. Implementations either perform the
// arithmetic natively or emit constraints into a proof circuit; verifier code
// written against these interfaces runs unchanged in both settings.
package loader

// Term is a coefficient applied to a loaded scalar.
type Term[T, S any] struct {
	Coeff T
	Value S
}

// ProductTerm is a coefficient applied to a product of two loaded scalars.
type ProductTerm[T, S any] struct {
	Coeff T
	Lhs   S
	Rhs   S
}

// ScalarLoader loads and combines scalars. T is the native field element type,
// S the loaded scalar handle.
type ScalarLoader[T, S any] interface {
	// LoadConst loads a compile-time constant.
	LoadConst(value T) S
	// AssertEq constrains lhs and rhs to be equal. On failure the returned
	// error is an *AssertionError carrying the annotation.
	AssertEq(annotation string, lhs, rhs S) error
	// SumWithCoeffAndConst returns constant + Σ coeff·value.
	SumWithCoeffAndConst(terms []Term[T, S], constant T) S
	// SumProductsWithCoeffAndConst returns constant + Σ coeff·lhs·rhs.
	SumProductsWithCoeffAndConst(terms []ProductTerm[T, S], constant T) S
}

// EcPointLoader loads curve points. C is the native point type, P the loaded
// point handle.
type EcPointLoader[C, P any] interface {
	// LoadConstPoint loads a compile-time constant point.
	LoadConstPoint(point C) P
	// AssertPointsEqual constrains lhs and rhs to be equal. On failure the
	// returned error is an *AssertionError carrying the annotation.
	AssertPointsEqual(annotation string, lhs, rhs P) error
}

// Loader is the full capability set a verifier algorithm may depend on.
// The cost metering hooks are diagnostic; implementations not backed by a
// circuit treat them as no-ops.
type Loader[T, S, C, P any] interface {
	ScalarLoader[T, S]
	EcPointLoader[C, P]

	StartCostMetering(label string)
	EndCostMetering()
}
