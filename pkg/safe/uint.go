// Package safe provides numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Uint64 converts signed or unsigned integers to uint64, rejecting negatives.
func Uint64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint64, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
	case int32:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
	case int64:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
	}
	return uint64(v), nil
}

// Uint32 converts signed or unsigned integers to uint32 with range checks.
func Uint32[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint32, error) {
	u, err := Uint64(v)
	if err != nil {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(u), nil
}
