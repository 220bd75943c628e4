// Package native implements the loader capabilities with plain bn254
// arithmetic, no circuit attached. Verifier code written against the loader
// interfaces runs here for testing and benchmarking before being pointed at
// the in-circuit loader.
package native

import (
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zenithzk/snark-loader/loader"
)

// Loader is stateless: native scalars and points are their own handles and
// carry no identity. It is safe for concurrent use.
type Loader struct{}

var _ loader.Loader[fr.Element, fr.Element, bn254.G1Affine, bn254.G1Affine] = Loader{}

func New() Loader {
	return Loader{}
}

func (Loader) LoadConst(value fr.Element) fr.Element {
	return value
}

func (Loader) AssertEq(annotation string, lhs, rhs fr.Element) error {
	if !lhs.Equal(&rhs) {
		return loader.NewAssertionError(annotation)
	}
	return nil
}

func (Loader) SumWithCoeffAndConst(terms []loader.Term[fr.Element, fr.Element], constant fr.Element) fr.Element {
	res := constant
	for _, term := range terms {
		var t fr.Element
		t.Mul(&term.Coeff, &term.Value)
		res.Add(&res, &t)
	}
	return res
}

func (Loader) SumProductsWithCoeffAndConst(terms []loader.ProductTerm[fr.Element, fr.Element], constant fr.Element) fr.Element {
	res := constant
	for _, term := range terms {
		var t fr.Element
		t.Mul(&term.Lhs, &term.Rhs)
		t.Mul(&t, &term.Coeff)
		res.Add(&res, &t)
	}
	return res
}

func (Loader) LoadConstPoint(point bn254.G1Affine) bn254.G1Affine {
	return point
}

func (Loader) AssertPointsEqual(annotation string, lhs, rhs bn254.G1Affine) error {
	if !lhs.Equal(&rhs) {
		return loader.NewAssertionError(annotation)
	}
	return nil
}

func (Loader) StartCostMetering(label string) {}

func (Loader) EndCostMetering() {}

// PointScalarPair is one weighted term of a native multi-scalar
// multiplication.
type PointScalarPair struct {
	Scalar fr.Element
	Point  bn254.G1Affine
}

// MultiScalarMultiplication computes Σ scalar·point in one batch. Panics on
// empty input, mirroring the in-circuit contract.
func MultiScalarMultiplication(pairs []PointScalarPair) bn254.G1Affine {
	if len(pairs) == 0 {
		panic("msm: empty pairs")
	}
	bases := make([]bn254.G1Affine, len(pairs))
	scalars := make([]fr.Element, len(pairs))
	for i, pair := range pairs {
		bases[i] = pair.Point
		scalars[i] = pair.Scalar
	}
	var res bn254.G1Affine
	if _, err := res.MultiExp(bases, scalars, ecc.MultiExpConfig{}); err != nil {
		panic(err)
	}
	return res
}
