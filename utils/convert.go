package utils

import (
	"fmt"
	"math/big"
)

// FromInterface converts an interface to a big.Int element.
// Accepts the usual integer types, strings, byte slices, big.Int and any
// type exposing BigInt(*big.Int) *big.Int (e.g. fr.Element).
func FromInterface(input interface{}) big.Int {
	var r big.Int

	switch v := input.(type) {
	case big.Int:
		r.Set(&v)
	case *big.Int:
		r.Set(v)
	case uint8:
		r.SetUint64(uint64(v))
	case uint16:
		r.SetUint64(uint64(v))
	case uint32:
		r.SetUint64(uint64(v))
	case uint64:
		r.SetUint64(v)
	case uint:
		r.SetUint64(uint64(v))
	case int8:
		r.SetInt64(int64(v))
	case int16:
		r.SetInt64(int64(v))
	case int32:
		r.SetInt64(int64(v))
	case int64:
		r.SetInt64(v)
	case int:
		r.SetInt64(int64(v))
	case string:
		if _, ok := r.SetString(v, 0); !ok {
			panic("unable to set big.Int from string " + v)
		}
	case []byte:
		r.SetBytes(v)
	default:
		if v, ok := input.(interface{ BigInt(*big.Int) *big.Int }); ok {
			v.BigInt(&r)
		} else {
			panic(fmt.Sprintf("can't convert %T to big.Int", input))
		}
	}

	return r
}
