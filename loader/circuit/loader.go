// Package circuit implements the in-circuit loader: it lets verifier code
// written against the loader capability interfaces emit constraints into an
// arithmetic circuit through a chip set, folding operations on
// construction-time constants natively so they never touch the circuit.
package circuit

import (
	"fmt"

	"github.com/consensys/gnark/constraint"
	"github.com/rs/zerolog"

	"github.com/zenithzk/snark-loader/field"
	"github.com/zenithzk/snark-loader/logger"
)

// pointKey identifies a constant curve point by its affine coordinates.
type pointKey struct {
	x, y string
}

// Loader routes arithmetic on Scalar and EcPoint handles to either native
// constant folding or chip calls, and is the single authority for handle
// identities. It is confined to one goroutine; no operation may run
// concurrently with another against the same Loader.
type Loader struct {
	ecc    EccChip
	scalar ScalarChip
	fld    field.Field
	ctx    Context

	numScalar  int
	numEcPoint int

	constEcPoint map[pointKey]*EcPoint

	meter *rowMeter
	log   zerolog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithRowMetering enables the diagnostic row-cost log. It has no effect on
// the produced circuit or on handle identities.
func WithRowMetering() Option {
	return func(l *Loader) {
		l.meter = &rowMeter{}
	}
}

// WithLogger overrides the component logger.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// New wraps a curve chip set and an initial circuit context. Identity
// counters start at zero and the constant-point cache starts empty. The
// returned Loader is shared by every handle it produces.
func New(ecc EccChip, f field.Field, ctx Context, opts ...Option) *Loader {
	l := &Loader{
		ecc:          ecc,
		scalar:       ecc.ScalarChip(),
		fld:          f,
		ctx:          ctx,
		constEcPoint: make(map[pointKey]*EcPoint),
		log:          logger.Logger().With().Str("component", "loader").Logger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IntoContext consumes the loader and hands the underlying circuit context
// back to the caller. The loader must not be used afterwards; a second call
// panics. Callers must only invoke this once all derived handles are done
// being operated on.
func (l *Loader) IntoContext() Context {
	if l.ctx == nil {
		panic("loader context already taken")
	}
	ctx := l.ctx
	l.ctx = nil
	l.log.Debug().Int("scalars", l.numScalar).Int("points", l.numEcPoint).Msg("context handed off")
	return ctx
}

// Context returns the underlying circuit context.
func (l *Loader) Context() Context {
	return l.ctx
}

// Field returns the scalar field used for constant folding.
func (l *Loader) Field() field.Field {
	return l.fld
}

// scalar wraps a value into a Scalar with a fresh identity. Folded results
// go through here too, so identities stay unique and monotonic.
func (l *Loader) scalarOf(v value) *Scalar {
	index := l.numScalar
	l.numScalar++
	return &Scalar{loader: l, index: index, value: v}
}

// ecPoint wraps an assigned point into an EcPoint with a fresh identity.
func (l *Loader) ecPointOf(assigned AssignedPoint) *EcPoint {
	index := l.numEcPoint
	l.numEcPoint++
	return &EcPoint{loader: l, index: index, assigned: assigned}
}

// AssignConstantScalar assigns a construction-time field element into the
// circuit. Scalars are never cached; every call produces a new cell.
func (l *Loader) AssignConstantScalar(constant constraint.Element) *Scalar {
	assigned, err := l.scalar.AssignConstant(l.ctx, constant)
	if err != nil {
		panic(fmt.Sprintf("assign constant scalar: %v", err))
	}
	return l.scalarOf(assignedOf(assigned))
}

// AssignScalar assigns a possibly-unknown witness scalar.
func (l *Loader) AssignScalar(w Witness[constraint.Element]) *Scalar {
	assigned, err := l.scalar.AssignWitness(l.ctx, w)
	if err != nil {
		panic(fmt.Sprintf("assign scalar: %v", err))
	}
	return l.scalarOf(assignedOf(assigned))
}

// AssignConstantPoint assigns a constant curve point, at most once per
// loader: repeated requests for the same affine coordinates return the
// cached handle with its original identity.
func (l *Loader) AssignConstantPoint(p Point) *EcPoint {
	x, y, err := l.ecc.Coordinates(p)
	if err != nil {
		panic(fmt.Sprintf("constant point coordinates: %v", err))
	}
	key := pointKey{x: x.Text(16), y: y.Text(16)}
	if cached, ok := l.constEcPoint[key]; ok {
		l.log.Debug().Str("x", key.x).Msg("constant point cache hit")
		return cached
	}
	assigned, err := l.ecc.AssignPoint(l.ctx, Known[Point](p))
	if err != nil {
		panic(fmt.Sprintf("assign constant point: %v", err))
	}
	ec := l.ecPointOf(assigned)
	l.constEcPoint[key] = ec
	return ec
}

// AssignPoint assigns a possibly-unknown witness point, without caching.
func (l *Loader) AssignPoint(w Witness[Point]) *EcPoint {
	assigned, err := l.ecc.AssignPoint(l.ctx, w)
	if err != nil {
		panic(fmt.Sprintf("assign point: %v", err))
	}
	return l.ecPointOf(assigned)
}

// add returns lhs + rhs, folding natively when both operands are constants
// and folding a constant operand into the gate otherwise.
func (l *Loader) add(lhs, rhs *Scalar) *Scalar {
	var out value
	switch {
	case lhs.value.isConstant() && rhs.value.isConstant():
		out = constantOf(l.fld.Add(lhs.value.constant, rhs.value.constant))
	case lhs.value.isConstant() != rhs.value.isConstant():
		assigned, cst := splitMixed(lhs, rhs)
		sum, err := l.scalar.SumWithCoeffAndConst(l.ctx,
			[]ScalarTerm{{Coeff: l.fld.One(), Value: assigned}}, cst)
		if err != nil {
			panic(fmt.Sprintf("add: %v", err))
		}
		out = assignedOf(sum)
	default:
		one := l.fld.One()
		sum, err := l.scalar.SumWithCoeffAndConst(l.ctx,
			[]ScalarTerm{
				{Coeff: one, Value: lhs.value.assigned},
				{Coeff: one, Value: rhs.value.assigned},
			}, constraint.Element{})
		if err != nil {
			panic(fmt.Sprintf("add: %v", err))
		}
		out = assignedOf(sum)
	}
	return l.scalarOf(out)
}

// sub returns lhs - rhs.
func (l *Loader) sub(lhs, rhs *Scalar) *Scalar {
	var out value
	switch {
	case lhs.value.isConstant() && rhs.value.isConstant():
		out = constantOf(l.fld.Sub(lhs.value.constant, rhs.value.constant))
	case lhs.value.isConstant():
		// constant - assigned: fold as (-1)·assigned + constant
		diff, err := l.scalar.SumWithCoeffAndConst(l.ctx,
			[]ScalarTerm{{Coeff: l.fld.Neg(l.fld.One()), Value: rhs.value.assigned}},
			lhs.value.constant)
		if err != nil {
			panic(fmt.Sprintf("sub: %v", err))
		}
		out = assignedOf(diff)
	case rhs.value.isConstant():
		// assigned - constant: fold as 1·assigned + (-constant)
		diff, err := l.scalar.SumWithCoeffAndConst(l.ctx,
			[]ScalarTerm{{Coeff: l.fld.One(), Value: lhs.value.assigned}},
			l.fld.Neg(rhs.value.constant))
		if err != nil {
			panic(fmt.Sprintf("sub: %v", err))
		}
		out = assignedOf(diff)
	default:
		diff, err := l.scalar.Sub(l.ctx, lhs.value.assigned, rhs.value.assigned)
		if err != nil {
			panic(fmt.Sprintf("sub: %v", err))
		}
		out = assignedOf(diff)
	}
	return l.scalarOf(out)
}

// mul returns lhs * rhs. A fully assigned product uses the fused
// sum-of-products gate with a single coefficient of one, not a naive multiply.
func (l *Loader) mul(lhs, rhs *Scalar) *Scalar {
	var out value
	switch {
	case lhs.value.isConstant() && rhs.value.isConstant():
		out = constantOf(l.fld.Mul(lhs.value.constant, rhs.value.constant))
	case lhs.value.isConstant() != rhs.value.isConstant():
		assigned, cst := splitMixed(lhs, rhs)
		prod, err := l.scalar.SumWithCoeffAndConst(l.ctx,
			[]ScalarTerm{{Coeff: cst, Value: assigned}}, constraint.Element{})
		if err != nil {
			panic(fmt.Sprintf("mul: %v", err))
		}
		out = assignedOf(prod)
	default:
		prod, err := l.scalar.SumProductsWithCoeffAndConst(l.ctx,
			[]ProductTerm{{Coeff: l.fld.One(), Lhs: lhs.value.assigned, Rhs: rhs.value.assigned}},
			constraint.Element{})
		if err != nil {
			panic(fmt.Sprintf("mul: %v", err))
		}
		out = assignedOf(prod)
	}
	return l.scalarOf(out)
}

// neg returns -s.
func (l *Loader) neg(s *Scalar) *Scalar {
	var out value
	if s.value.isConstant() {
		out = constantOf(l.fld.Neg(s.value.constant))
	} else {
		n, err := l.scalar.Neg(l.ctx, s.value.assigned)
		if err != nil {
			panic(fmt.Sprintf("neg: %v", err))
		}
		out = assignedOf(n)
	}
	return l.scalarOf(out)
}

// invert returns the inverse of s. Inverting the zero constant is a
// construction fault.
func (l *Loader) invert(s *Scalar) *Scalar {
	var out value
	if s.value.isConstant() {
		inv, ok := l.fld.Inverse(s.value.constant)
		if !ok {
			panic("invert: zero constant")
		}
		out = constantOf(inv)
	} else {
		inv, err := l.scalar.Invert(l.ctx, s.value.assigned)
		if err != nil {
			panic(fmt.Sprintf("invert: %v", err))
		}
		out = assignedOf(inv)
	}
	return l.scalarOf(out)
}

// splitMixed separates a constant/assigned operand pair, in either order.
func splitMixed(lhs, rhs *Scalar) (AssignedScalar, constraint.Element) {
	if lhs.value.isConstant() {
		return rhs.value.assigned, lhs.value.constant
	}
	return lhs.value.assigned, rhs.value.constant
}
