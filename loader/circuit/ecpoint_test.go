package circuit_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/zenithzk/snark-loader/chip/sim"
	"github.com/zenithzk/snark-loader/loader/circuit"
)

func TestMSMAllOnes(t *testing.T) {
	ld, ctx := newTestLoader()

	points := []bn254.G1Affine{randomPoint(), randomPoint(), randomPoint()}
	pairs := make([]circuit.PointScalarPair, len(points))
	for i, p := range points {
		pairs[i] = circuit.PointScalarPair{
			Scalar: ld.LoadConst(engine.One()),
			Point:  ld.AssignPoint(circuit.Known[circuit.Point](p)),
		}
	}

	before := ctx.Offset()
	res := circuit.MultiScalarMultiplication(pairs)
	// plain additions only; the fused MSM is never invoked
	require.Equal(t, before+2*sim.RowsPerPointAdd+sim.RowsPerNormalize, ctx.Offset())

	var want bn254.G1Affine
	want.Add(&points[0], &points[1])
	want.Add(&want, &points[2])
	got := sim.PointValue(res.Assigned())
	require.True(t, want.Equal(&got))
}

func TestMSMMixed(t *testing.T) {
	ld, _ := newTestLoader()

	p1, pa, pb := randomPoint(), randomPoint(), randomPoint()
	a, b := elem(3), elem(117)

	res := circuit.MultiScalarMultiplication([]circuit.PointScalarPair{
		{Scalar: ld.LoadConst(engine.One()), Point: ld.AssignPoint(circuit.Known[circuit.Point](p1))},
		{Scalar: ld.LoadConst(a), Point: ld.AssignPoint(circuit.Known[circuit.Point](pa))},
		{Scalar: ld.AssignScalar(circuit.Known(b)), Point: ld.AssignPoint(circuit.Known[circuit.Point](pb))},
	})

	var scaledA, scaledB, want bn254.G1Affine
	scaledA.ScalarMultiplication(&pa, big.NewInt(3))
	scaledB.ScalarMultiplication(&pb, big.NewInt(117))
	want.Add(&scaledA, &scaledB)
	want.Add(&want, &p1)

	got := sim.PointValue(res.Assigned())
	require.True(t, want.Equal(&got))
}

func TestMSMOrderIndependent(t *testing.T) {
	ld, _ := newTestLoader()

	pairs := make([]circuit.PointScalarPair, 6)
	for i := range pairs {
		pairs[i] = circuit.PointScalarPair{
			Scalar: ld.LoadConst(elem(uint64(i + 1))),
			Point:  ld.AssignPoint(circuit.Known[circuit.Point](randomPoint())),
		}
	}

	first := sim.PointValue(circuit.MultiScalarMultiplication(pairs).Assigned())

	shuffled := make([]circuit.PointScalarPair, len(pairs))
	copy(shuffled, pairs)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	second := sim.PointValue(circuit.MultiScalarMultiplication(shuffled).Assigned())

	require.True(t, first.Equal(&second))
}

func TestMSMSingleScaledPair(t *testing.T) {
	ld, _ := newTestLoader()

	p := randomPoint()
	res := circuit.MultiScalarMultiplication([]circuit.PointScalarPair{
		{Scalar: ld.LoadConst(elem(5)), Point: ld.AssignPoint(circuit.Known[circuit.Point](p))},
	})

	var want bn254.G1Affine
	want.ScalarMultiplication(&p, big.NewInt(5))
	got := sim.PointValue(res.Assigned())
	require.True(t, want.Equal(&got))
}

func TestMSMEmptyPanics(t *testing.T) {
	require.Panics(t, func() {
		circuit.MultiScalarMultiplication(nil)
	})
}

func TestMSMAgainstNativeMultiExp(t *testing.T) {
	ld, _ := newTestLoader()

	n := 8
	pairs := make([]circuit.PointScalarPair, n)
	bases := make([]bn254.G1Affine, n)
	scalars := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		bases[i] = randomPoint()
		scalars[i].SetRandom()
		pairs[i] = circuit.PointScalarPair{
			Scalar: ld.AssignScalar(circuit.Known(engine.FromInterface(scalars[i]))),
			Point:  ld.AssignPoint(circuit.Known[circuit.Point](bases[i])),
		}
	}

	res := circuit.MultiScalarMultiplication(pairs)

	var want bn254.G1Affine
	_, err := want.MultiExp(bases, scalars, ecc.MultiExpConfig{})
	require.NoError(t, err)
	got := sim.PointValue(res.Assigned())
	require.True(t, want.Equal(&got))
}

func BenchmarkMSMRows(b *testing.B) {
	for _, n := range []int{2, 8, 32} {
		b.Run(fmt.Sprintf("pairs=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				ld, _ := newTestLoader(circuit.WithRowMetering())
				pairs := make([]circuit.PointScalarPair, n)
				for j := range pairs {
					pairs[j] = circuit.PointScalarPair{
						Scalar: ld.LoadConst(elem(uint64(j + 2))),
						Point:  ld.AssignPoint(circuit.Known[circuit.Point](randomPoint())),
					}
				}
				b.StartTimer()

				ld.StartCostMetering("msm")
				_ = circuit.MultiScalarMultiplication(pairs)
				ld.EndCostMetering()
			}
		})
	}
}
