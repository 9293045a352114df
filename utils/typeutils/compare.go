package typeutils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Compare returns 0 for equal, -1 if a < b else 1 if a > b.
// nil is less than any defined value. Values of unrelated types are compared
// by their string form so that Compare never panics on mixed columns.
func Compare(a, b any) int {
	// Handle nil cases first
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if cmp, ok := compareIntegers(a, b); ok {
		return cmp
	}
	if aFloat, ok := toFloat64(a); ok {
		if bFloat, ok := toFloat64(b); ok {
			return compareFloats(aFloat, bFloat)
		}
	}

	switch aVal := a.(type) {
	case time.Time:
		if bTime, ok := b.(time.Time); ok {
			return aVal.Compare(bTime)
		}
	case bool:
		if bBool, ok := b.(bool); ok {
			// false < true
			if !aVal && bBool {
				return -1
			} else if aVal && !bBool {
				return 1
			}
			return 0
		}
	case string:
		if bStr, ok := b.(string); ok {
			return strings.Compare(aVal, bStr)
		}
	}
	// For any other types, convert to string for comparison
	return strings.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}

func compareOrdered[T int64 | uint64 | float64](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

func compareFloats(a, b float64) int {
	if math.IsNaN(a) {
		if math.IsNaN(b) {
			return 0
		}
		return -1
	}
	if math.IsNaN(b) {
		return 1
	}
	return compareOrdered(a, b)
}

// compareIntegers orders two integer values exactly, including uint64 values
// above the float64 mantissa and signed against unsigned.
func compareIntegers(a, b any) (int, bool) {
	aInt, aSigned := toInt64(a)
	bInt, bSigned := toInt64(b)
	if aSigned && bSigned {
		return compareOrdered(aInt, bInt), true
	}

	aUint, aUnsigned := toUint64(a)
	bUint, bUnsigned := toUint64(b)
	switch {
	case aUnsigned && bUnsigned:
		return compareOrdered(aUint, bUint), true
	case aUnsigned && bSigned:
		if bInt < 0 {
			return 1, true
		}
		return compareOrdered(aUint, uint64(bInt)), true
	case aSigned && bUnsigned:
		if aInt < 0 {
			return -1, true
		}
		return compareOrdered(uint64(aInt), bUint), true
	}
	return 0, false
}

func toUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint64:
		return n, true
	}
	return 0, false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	if n, ok := toInt64(v); ok {
		return float64(n), true
	}
	switch n := v.(type) {
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
