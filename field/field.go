// Package field abstracts the scalar field arithmetic used for constant
// folding. It extends gnark's constraint.Field with modulus queries so the
// loader stays agnostic of the concrete curve.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/zenithzk/snark-loader/field/babybear"
	"github.com/zenithzk/snark-loader/field/bn254"
)

type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	if x.Cmp(babybear.ScalarField) == 0 {
		return &babybear.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
