package mathutil

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Abs returns the absolute value of val.
// The most negative value of T is returned unchanged.
func Abs[T constraints.Signed](val T) T {
	mask := val >> (unsafe.Sizeof(val)*8 - 1)
	return (val + mask) ^ mask
}

// Sign returns -1 if val < 0, 0 if val == 0, 1 if val > 0.
func Sign[T constraints.Signed](val T) int {
	if val == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(val>>(unsafe.Sizeof(val)*8-1))&1]
}

