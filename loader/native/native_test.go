package native_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/zenithzk/snark-loader/loader"
	"github.com/zenithzk/snark-loader/loader/native"
)

func frOf(i uint64) fr.Element {
	var e fr.Element
	e.SetUint64(i)
	return e
}

func randomPoint() bn254.G1Affine {
	_, _, g, _ := bn254.Generators()
	var s fr.Element
	s.SetRandom()
	var p bn254.G1Affine
	p.ScalarMultiplication(&g, s.BigInt(new(big.Int)))
	return p
}

func TestAssertEq(t *testing.T) {
	ld := native.New()

	require.NoError(t, ld.AssertEq("same", frOf(5), frOf(5)))

	err := ld.AssertEq("different", frOf(5), frOf(6))
	var assertionErr *loader.AssertionError
	require.True(t, errors.As(err, &assertionErr))
	require.Equal(t, "different", assertionErr.Annotation)
}

func TestSums(t *testing.T) {
	ld := native.New()

	sum := ld.SumWithCoeffAndConst([]loader.Term[fr.Element, fr.Element]{
		{Coeff: frOf(3), Value: frOf(4)},
		{Coeff: frOf(2), Value: frOf(10)},
	}, frOf(1))
	require.Equal(t, "33", sum.String())

	prod := ld.SumProductsWithCoeffAndConst([]loader.ProductTerm[fr.Element, fr.Element]{
		{Coeff: frOf(2), Lhs: frOf(4), Rhs: frOf(5)},
	}, frOf(3))
	require.Equal(t, "43", prod.String())
}

func TestPoints(t *testing.T) {
	ld := native.New()
	p, q := randomPoint(), randomPoint()

	require.Equal(t, p, ld.LoadConstPoint(p))
	require.NoError(t, ld.AssertPointsEqual("same", p, p))

	err := ld.AssertPointsEqual("different", p, q)
	var assertionErr *loader.AssertionError
	require.True(t, errors.As(err, &assertionErr))
}

func TestMultiScalarMultiplication(t *testing.T) {
	p, q := randomPoint(), randomPoint()

	res := native.MultiScalarMultiplication([]native.PointScalarPair{
		{Scalar: frOf(1), Point: p},
		{Scalar: frOf(2), Point: q},
	})

	var want bn254.G1Affine
	want.Add(&p, &q)
	want.Add(&want, &q)
	require.True(t, want.Equal(&res))

	require.Panics(t, func() { native.MultiScalarMultiplication(nil) })
}

func TestCostMeteringIsNoop(t *testing.T) {
	ld := native.New()
	ld.StartCostMetering("anything")
	ld.EndCostMetering()
}
