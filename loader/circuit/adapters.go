package circuit

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/zenithzk/snark-loader/loader"
)

// *Loader implements the generic loader capabilities over its handle types.
// Verifier algorithms consume these; nothing outside this file reaches into
// how values are represented.
var _ loader.Loader[constraint.Element, *Scalar, Point, *EcPoint] = (*Loader)(nil)

// LoadConst wraps a field element as a Constant-valued Scalar. No circuit
// cells are assigned until the scalar is used in a non-foldable operation.
func (l *Loader) LoadConst(value constraint.Element) *Scalar {
	return l.scalarOf(constantOf(value))
}

// AssertEq constrains two scalars to be equal. A chip failure surfaces as an
// *loader.AssertionError carrying the annotation; this is the only outward
// error path of the loader.
func (l *Loader) AssertEq(annotation string, lhs, rhs *Scalar) error {
	if err := l.scalar.AssertEqual(l.ctx, lhs.Assigned(), rhs.Assigned()); err != nil {
		return loader.NewAssertionError(annotation)
	}
	return nil
}

// SumWithCoeffAndConst returns constant + Σ coeff·value as a single gate.
// All operands are materialized; constant folding happens in the operator
// methods, not here.
func (l *Loader) SumWithCoeffAndConst(terms []loader.Term[constraint.Element, *Scalar], constant constraint.Element) *Scalar {
	chipTerms := make([]ScalarTerm, len(terms))
	for i, term := range terms {
		chipTerms[i] = ScalarTerm{Coeff: term.Coeff, Value: term.Value.Assigned()}
	}
	sum, err := l.scalar.SumWithCoeffAndConst(l.ctx, chipTerms, constant)
	if err != nil {
		panic(fmt.Sprintf("sum with coeff and const: %v", err))
	}
	return l.scalarOf(assignedOf(sum))
}

// SumProductsWithCoeffAndConst returns constant + Σ coeff·lhs·rhs as a single
// gate.
func (l *Loader) SumProductsWithCoeffAndConst(terms []loader.ProductTerm[constraint.Element, *Scalar], constant constraint.Element) *Scalar {
	chipTerms := make([]ProductTerm, len(terms))
	for i, term := range terms {
		chipTerms[i] = ProductTerm{Coeff: term.Coeff, Lhs: term.Lhs.Assigned(), Rhs: term.Rhs.Assigned()}
	}
	sum, err := l.scalar.SumProductsWithCoeffAndConst(l.ctx, chipTerms, constant)
	if err != nil {
		panic(fmt.Sprintf("sum products with coeff and const: %v", err))
	}
	return l.scalarOf(assignedOf(sum))
}

// LoadConstPoint assigns a constant curve point, deduplicated per loader.
func (l *Loader) LoadConstPoint(point Point) *EcPoint {
	return l.AssignConstantPoint(point)
}

// AssertPointsEqual constrains two points to be equal, with the same error
// contract as AssertEq.
func (l *Loader) AssertPointsEqual(annotation string, lhs, rhs *EcPoint) error {
	if err := l.ecc.AssertEqual(l.ctx, lhs.Assigned(), rhs.Assigned()); err != nil {
		return loader.NewAssertionError(annotation)
	}
	return nil
}
