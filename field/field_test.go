package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zenithzk/snark-loader/field/babybear"
	"github.com/zenithzk/snark-loader/field/bn254"
)

func TestGetFieldFromOrder(t *testing.T) {
	require.IsType(t, &bn254.Field{}, GetFieldFromOrder(bn254.ScalarField))
	require.IsType(t, &babybear.Field{}, GetFieldFromOrder(babybear.ScalarField))
	require.Panics(t, func() { GetFieldFromOrder(big.NewInt(17)) })
}

func TestArithmeticRoundTrip(t *testing.T) {
	for _, f := range []Field{&bn254.Field{}, &babybear.Field{}} {
		a := f.FromInterface(1234567)
		b := f.FromInterface(89)

		sum := f.Add(a, b)
		require.Equal(t, "1234656", f.String(sum))
		require.Equal(t, f.String(a), f.String(f.Sub(sum, b)))

		prod := f.Mul(a, b)
		inv, ok := f.Inverse(b)
		require.True(t, ok)
		require.Equal(t, f.String(a), f.String(f.Mul(prod, inv)))

		require.Equal(t, f.String(f.FromInterface(0)), f.String(f.Add(a, f.Neg(a))))

		_, ok = f.Inverse(f.FromInterface(0))
		require.False(t, ok)
	}
}
