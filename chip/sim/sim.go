// Package sim provides a simulation chip set: it implements the circuit chip
// interfaces with plain gnark-crypto bn254 arithmetic while advancing a
// modeled row counter per operation. It lets loader-based code run and be
// row-metered without a proof system attached.
package sim

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"

	"github.com/zenithzk/snark-loader/loader/circuit"
)

// Modeled rows per chip operation. The absolute numbers are a coarse stand-in
// for a real plonkish chip; only relative magnitudes matter for metering.
const (
	RowsPerScalarAssign = 1
	RowsPerLinearGate   = 1
	RowsPerProductGate  = 1
	RowsPerInvert       = 2
	RowsPerAssertEqual  = 1
	RowsPerPointAssign  = 2
	RowsPerPointAdd     = 6
	RowsPerMSMTerm      = 128
	RowsPerNormalize    = 4
)

var errUnknownWitness = errors.New("sim: unknown witness value")

// Context is the row-tracking circuit context of the simulation chip set.
type Context struct {
	offset int
}

func NewContext() *Context {
	return &Context{}
}

func (c *Context) Offset() int {
	return c.offset
}

func (c *Context) advance(rows int) {
	c.offset += rows
}

// scalarCell and pointCell are the chip's assigned handles.
type scalarCell struct {
	v fr.Element
}

type pointCell struct {
	v bn254.G1Affine
}

// ScalarValue extracts the native value behind an assigned scalar handle.
func ScalarValue(a circuit.AssignedScalar) fr.Element {
	return a.(*scalarCell).v
}

// PointValue extracts the native value behind an assigned point handle.
func PointValue(a circuit.AssignedPoint) bn254.G1Affine {
	return a.(*pointCell).v
}

func toFr(c constraint.Element) fr.Element {
	return *(*fr.Element)(c[:])
}

type scalarChip struct{}

func (chip *scalarChip) AssignConstant(ctx circuit.Context, constant constraint.Element) (circuit.AssignedScalar, error) {
	ctx.(*Context).advance(RowsPerScalarAssign)
	return &scalarCell{v: toFr(constant)}, nil
}

func (chip *scalarChip) AssignWitness(ctx circuit.Context, w circuit.Witness[constraint.Element]) (circuit.AssignedScalar, error) {
	v, known := w.Value()
	if !known {
		return nil, errUnknownWitness
	}
	ctx.(*Context).advance(RowsPerScalarAssign)
	return &scalarCell{v: toFr(v)}, nil
}

func (chip *scalarChip) AssertEqual(ctx circuit.Context, lhs, rhs circuit.AssignedScalar) error {
	ctx.(*Context).advance(RowsPerAssertEqual)
	if !lhs.(*scalarCell).v.Equal(&rhs.(*scalarCell).v) {
		return errors.New("sim: unequal scalars")
	}
	return nil
}

func (chip *scalarChip) Sub(ctx circuit.Context, lhs, rhs circuit.AssignedScalar) (circuit.AssignedScalar, error) {
	ctx.(*Context).advance(RowsPerLinearGate)
	var res fr.Element
	res.Sub(&lhs.(*scalarCell).v, &rhs.(*scalarCell).v)
	return &scalarCell{v: res}, nil
}

func (chip *scalarChip) Neg(ctx circuit.Context, a circuit.AssignedScalar) (circuit.AssignedScalar, error) {
	ctx.(*Context).advance(RowsPerLinearGate)
	var res fr.Element
	res.Neg(&a.(*scalarCell).v)
	return &scalarCell{v: res}, nil
}

func (chip *scalarChip) Invert(ctx circuit.Context, a circuit.AssignedScalar) (circuit.AssignedScalar, error) {
	v := a.(*scalarCell).v
	if v.IsZero() {
		return nil, errors.New("sim: invert of zero")
	}
	ctx.(*Context).advance(RowsPerInvert)
	var res fr.Element
	res.Inverse(&v)
	return &scalarCell{v: res}, nil
}

func (chip *scalarChip) SumWithCoeffAndConst(ctx circuit.Context, terms []circuit.ScalarTerm, constant constraint.Element) (circuit.AssignedScalar, error) {
	ctx.(*Context).advance(RowsPerLinearGate)
	res := toFr(constant)
	for _, term := range terms {
		coeff := toFr(term.Coeff)
		var t fr.Element
		t.Mul(&coeff, &term.Value.(*scalarCell).v)
		res.Add(&res, &t)
	}
	return &scalarCell{v: res}, nil
}

func (chip *scalarChip) SumProductsWithCoeffAndConst(ctx circuit.Context, terms []circuit.ProductTerm, constant constraint.Element) (circuit.AssignedScalar, error) {
	ctx.(*Context).advance(RowsPerProductGate)
	res := toFr(constant)
	for _, term := range terms {
		coeff := toFr(term.Coeff)
		var t fr.Element
		t.Mul(&coeff, &term.Lhs.(*scalarCell).v)
		t.Mul(&t, &term.Rhs.(*scalarCell).v)
		res.Add(&res, &t)
	}
	return &scalarCell{v: res}, nil
}

// Chip is the curve chip of the simulation set over bn254 G1.
type Chip struct {
	scalar scalarChip
}

func New() *Chip {
	return &Chip{}
}

func (chip *Chip) ScalarChip() circuit.ScalarChip {
	return &chip.scalar
}

func (chip *Chip) AssignPoint(ctx circuit.Context, w circuit.Witness[circuit.Point]) (circuit.AssignedPoint, error) {
	v, known := w.Value()
	if !known {
		return nil, errUnknownWitness
	}
	ctx.(*Context).advance(RowsPerPointAssign)
	return &pointCell{v: v.(bn254.G1Affine)}, nil
}

func (chip *Chip) Coordinates(p circuit.Point) (x, y *big.Int, err error) {
	point := p.(bn254.G1Affine)
	if point.IsInfinity() {
		return nil, nil, errors.New("sim: point at infinity has no affine coordinates")
	}
	return point.X.BigInt(new(big.Int)), point.Y.BigInt(new(big.Int)), nil
}

func (chip *Chip) AssertEqual(ctx circuit.Context, lhs, rhs circuit.AssignedPoint) error {
	ctx.(*Context).advance(RowsPerAssertEqual)
	if !lhs.(*pointCell).v.Equal(&rhs.(*pointCell).v) {
		return errors.New("sim: unequal points")
	}
	return nil
}

func (chip *Chip) Add(ctx circuit.Context, lhs, rhs circuit.AssignedPoint) (circuit.AssignedPoint, error) {
	ctx.(*Context).advance(RowsPerPointAdd)
	var res bn254.G1Affine
	res.Add(&lhs.(*pointCell).v, &rhs.(*pointCell).v)
	return &pointCell{v: res}, nil
}

func (chip *Chip) MultiScalarMultiplication(ctx circuit.Context, pairs []circuit.MSMPair) (circuit.AssignedPoint, error) {
	if len(pairs) == 0 {
		return nil, errors.New("sim: empty msm")
	}
	ctx.(*Context).advance(RowsPerMSMTerm * len(pairs))
	bases := make([]bn254.G1Affine, len(pairs))
	scalars := make([]fr.Element, len(pairs))
	for i, pair := range pairs {
		bases[i] = pair.Point.(*pointCell).v
		scalars[i] = pair.Scalar.(*scalarCell).v
	}
	var res bn254.G1Affine
	if _, err := res.MultiExp(bases, scalars, ecc.MultiExpConfig{}); err != nil {
		return nil, err
	}
	return &pointCell{v: res}, nil
}

func (chip *Chip) Normalize(ctx circuit.Context, p circuit.AssignedPoint) (circuit.AssignedPoint, error) {
	// affine representation is already canonical; only the row cost is modeled
	ctx.(*Context).advance(RowsPerNormalize)
	return p, nil
}

var (
	_ circuit.ScalarChip = (*scalarChip)(nil)
	_ circuit.EccChip    = (*Chip)(nil)
)
