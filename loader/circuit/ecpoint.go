package circuit

import "fmt"

// EcPoint is an immutable handle to an assigned curve point. Like Scalar,
// equality is identity-based.
type EcPoint struct {
	loader   *Loader
	index    int
	assigned AssignedPoint
}

// Loader returns the loader this point belongs to.
func (p *EcPoint) Loader() *Loader {
	return p.loader
}

// Index returns the identity index.
func (p *EcPoint) Index() int {
	return p.index
}

// Equal reports identity equality.
func (p *EcPoint) Equal(other *EcPoint) bool {
	return p.index == other.index
}

// Assigned returns the circuit cells backing this point.
func (p *EcPoint) Assigned() AssignedPoint {
	return p.assigned
}

func (p *EcPoint) String() string {
	return fmt.Sprintf("EcPoint{index: %d}", p.index)
}

// PointScalarPair is one weighted term of a multi-scalar multiplication.
type PointScalarPair struct {
	Scalar *Scalar
	Point  *EcPoint
}

// MultiScalarMultiplication computes Σ scalar·point over the pairs as a
// single EcPoint. Pairs whose scalar is the literal constant one skip the
// fused MSM and are folded in by plain point addition, so base points with
// unit coefficient never waste a circuit scalar multiplication. Panics on
// empty input: there is no identity element to return.
func MultiScalarMultiplication(pairs []PointScalarPair) *EcPoint {
	if len(pairs) == 0 {
		panic("msm: empty pairs")
	}
	ld := pairs[0].Scalar.loader

	var nonScaled []AssignedPoint
	var scaled []MSMPair
	for _, pair := range pairs {
		if c, ok := pair.Scalar.Constant(); ok && ld.fld.IsOne(c) {
			nonScaled = append(nonScaled, pair.Point.Assigned())
		} else {
			scaled = append(scaled, MSMPair{
				Point:  pair.Point.Assigned(),
				Scalar: pair.Scalar.Assigned(),
			})
		}
	}
	ld.log.Debug().Int("scaled", len(scaled)).Int("nonScaled", len(nonScaled)).Msg("msm")

	var acc AssignedPoint
	if len(scaled) > 0 {
		out, err := ld.ecc.MultiScalarMultiplication(ld.ctx, scaled)
		if err != nil {
			panic(fmt.Sprintf("msm: %v", err))
		}
		acc = out
	}
	for _, p := range nonScaled {
		if acc == nil {
			acc = p
			continue
		}
		out, err := ld.ecc.Add(ld.ctx, acc, p)
		if err != nil {
			panic(fmt.Sprintf("msm add: %v", err))
		}
		acc = out
	}

	normalized, err := ld.ecc.Normalize(ld.ctx, acc)
	if err != nil {
		panic(fmt.Sprintf("msm normalize: %v", err))
	}
	return ld.ecPointOf(normalized)
}
