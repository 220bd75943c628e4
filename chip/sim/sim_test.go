package sim

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"

	bn254field "github.com/zenithzk/snark-loader/field/bn254"
	"github.com/zenithzk/snark-loader/loader/circuit"
)

var engine = &bn254field.Field{}

// cellString binds the cell value to a local so fr.Element.String is addressable.
func cellString(a circuit.AssignedScalar) string {
	v := ScalarValue(a)
	return v.String()
}

func TestScalarChipArithmetic(t *testing.T) {
	chip := New().ScalarChip()
	ctx := NewContext()

	a, err := chip.AssignConstant(ctx, engine.FromInterface(10))
	require.NoError(t, err)
	b, err := chip.AssignWitness(ctx, circuit.Known(engine.FromInterface(4)))
	require.NoError(t, err)

	diff, err := chip.Sub(ctx, a, b)
	require.NoError(t, err)
	require.Equal(t, "6", cellString(diff))

	neg, err := chip.Neg(ctx, b)
	require.NoError(t, err)
	var want fr.Element
	want.SetUint64(4)
	want.Neg(&want)
	got := ScalarValue(neg)
	require.True(t, want.Equal(&got))

	inv, err := chip.Invert(ctx, b)
	require.NoError(t, err)
	prod, err := chip.SumProductsWithCoeffAndConst(ctx,
		[]circuit.ProductTerm{{Coeff: engine.One(), Lhs: b, Rhs: inv}}, engine.FromInterface(0))
	require.NoError(t, err)
	require.Equal(t, "1", cellString(prod))
}

func TestUnknownWitnessFails(t *testing.T) {
	chip := New()
	ctx := NewContext()

	_, err := chip.ScalarChip().AssignWitness(ctx, circuit.Unknown[constraint.Element]())
	require.Error(t, err)

	_, err = chip.AssignPoint(ctx, circuit.Unknown[circuit.Point]())
	require.Error(t, err)
}

func TestRowAccounting(t *testing.T) {
	chip := New().ScalarChip()
	ctx := NewContext()

	a, _ := chip.AssignConstant(ctx, engine.FromInterface(1))
	require.Equal(t, RowsPerScalarAssign, ctx.Offset())

	_, err := chip.SumWithCoeffAndConst(ctx,
		[]circuit.ScalarTerm{{Coeff: engine.One(), Value: a}}, engine.FromInterface(0))
	require.NoError(t, err)
	require.Equal(t, RowsPerScalarAssign+RowsPerLinearGate, ctx.Offset())
}

func TestCoordinatesOfInfinityFails(t *testing.T) {
	chip := New()
	var inf bn254.G1Affine
	_, _, err := chip.Coordinates(inf)
	require.Error(t, err)

	_, _, g, _ := bn254.Generators()
	x, y, err := chip.Coordinates(g)
	require.NoError(t, err)
	require.NotNil(t, x)
	require.NotNil(t, y)
	require.True(t, x.Cmp(big.NewInt(0)) > 0)
	require.True(t, y.Cmp(big.NewInt(0)) > 0)
}

func TestInvertZeroFails(t *testing.T) {
	chip := New().ScalarChip()
	ctx := NewContext()

	zero, err := chip.AssignConstant(ctx, engine.FromInterface(0))
	require.NoError(t, err)
	_, err = chip.Invert(ctx, zero)
	require.Error(t, err)
}
