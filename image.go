// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixmath

import (
	"golang.org/x/image/math/fixed"
)

const (
	shift26_6  = FracBits - 6
	shift52_12 = FracBits - 12
)

// Int26_6 returns f as a 26.6 fixed-point number.
// The fractional bits below 1/64 are dropped, rounding towards negative infinity.
func (f Fix) Int26_6() fixed.Int26_6 {
	return fixed.Int26_6(f >> shift26_6)
}

// FromInt26_6 returns a value for given 26.6 fixed-point number.
// The integer part wraps around, if it exceeds Max.Int().
func FromInt26_6(x fixed.Int26_6) Fix {
	return Fix(x << shift26_6)
}

// Int52_12 returns f as a 52.12 fixed-point number.
func (f Fix) Int52_12() fixed.Int52_12 {
	return fixed.Int52_12(f) >> shift52_12
}

// FromInt52_12 returns a value for given 52.12 fixed-point number.
// The integer part wraps around, if it exceeds Max.Int().
func FromInt52_12(x fixed.Int52_12) Fix {
	return Fix(x << shift52_12)
}
