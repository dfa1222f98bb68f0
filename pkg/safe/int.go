// Package safe provides integer conversions with range checks.
//
// Node RPC clients expose block numbers, gas and nonces as int while the domain
// model uses unsigned types; these helpers convert between them without silent wrap-around.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of integer kinds the helpers accept.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint64 rejects negative values.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, outOfRange(v, "uint64")
	}
	return uint64(v), nil
}

// Uint32 rejects negative values and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, outOfRange(v, "uint32")
	}
	return uint32(v), nil
}

// Int64 rejects values above math.MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if v >= 0 && uint64(v) > math.MaxInt64 {
		return 0, outOfRange(v, "int64")
	}
	return int64(v), nil
}

// Int rejects values that do not fit the platform int.
func Int[T Integer](v T) (int, error) {
	if v >= 0 && uint64(v) > math.MaxInt {
		return 0, outOfRange(v, "int")
	}
	if v < 0 && int64(v) < math.MinInt {
		return 0, outOfRange(v, "int")
	}
	return int(v), nil
}

func outOfRange[T Integer](v T, target string) error {
	return fmt.Errorf("value %d out of %s range", v, target)
}
