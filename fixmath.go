// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixmath implements a binary fixed-point number, where
// the low FracBits bits of a signed 32-bit integer hold the fractional part.
// With the default FracBits it is a Q15.16 value.
//
// Arithmetic wraps around on overflow exactly as native int32 arithmetic does.
package fixmath

import (
	"errors"
	"fmt"
	"math"

	mu "github.com/bencalcaire/fixmath/internal/mathutil"
)

// FracBits is the number of low-order bits holding the fractional part.
const FracBits = 16

const (
	fracMask = 1<<FracBits - 1

	maxNumber = math.MaxInt32
	minNumber = math.MinInt32
)

const (
	Zero             = Fix(0)
	One              = Fix(1 << FracBits)
	Max              = Fix(maxNumber)
	Min              = Fix(minNumber)
	SmallestPositive = Fix(1)
)

var (
	// ErrDivisionByZero is returned by CheckedMod, and used as a panic value by Mod,
	// when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrRange is returned when a converted value does not fit a Fix.
	ErrRange = fmt.Errorf("value out of range")
	// ErrBadFloat is returned by FromFloat64 for infinities and not-a-numbers.
	ErrBadFloat = fmt.Errorf("bad float number")
)

// Fix is a signed fixed-point number with FracBits fractional bits.
//   31              15              0
//   ________________|________________
//   iiiiiiiiiiiiiiiiffffffffffffffff
type Fix int32

// FromInt returns i with a zero fractional part.
// Values outside of [Min.Int(), Max.Int()] wrap around.
func FromInt(i int) Fix {
	return Fix(i << FracBits)
}

// FromFloat64 returns a value for given float64, truncating the bits below SmallestPositive.
func FromFloat64(f float64) (Fix, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Zero, ErrBadFloat
	}
	scaled := math.Trunc(f * float64(One))
	if scaled > maxNumber || scaled < minNumber {
		return Zero, ErrRange
	}
	return Fix(scaled), nil
}

// MustFromFloat64 calls FromFloat64 and panics on error.
func MustFromFloat64(f float64) Fix {
	v, err := FromFloat64(f)
	if err != nil {
		panic(err)
	}
	return v
}

// Add returns a + b.
func Add(a, b Fix) Fix {
	return a + b
}

// Sub returns a - b.
func Sub(a, b Fix) Fix {
	return a - b
}

// Mod returns the remainder of a/b, truncated towards zero, so that
// the result has the sign of a. Operands are not rescaled,
// which is only meaningful because both use the same FracBits.
// If b == 0, Mod panics with ErrDivisionByZero.
func Mod(a, b Fix) Fix {
	if b == Zero {
		panic(ErrDivisionByZero)
	}
	return a % b
}

// CheckedMod is Mod, which returns ErrDivisionByZero instead of panicking.
func CheckedMod(a, b Fix) (Fix, error) {
	if b == Zero {
		return Zero, ErrDivisionByZero
	}
	return a % b, nil
}

// Add returns f + other.
func (f Fix) Add(other Fix) Fix {
	return Add(f, other)
}

// Sub returns f - other.
func (f Fix) Sub(other Fix) Fix {
	return Sub(f, other)
}

// Mod returns f % other. See Mod.
func (f Fix) Mod(other Fix) Fix {
	return Mod(f, other)
}

// Neg returns -f. -Min == Min.
func (f Fix) Neg() Fix {
	return -f
}

// Int returns the integer part of f, rounded towards negative infinity.
func (f Fix) Int() int {
	return int(f >> FracBits)
}

// Frac returns the fractional bits of f. The result is always in [0, One).
// f == FromInt(f.Int()) + f.Frac().
func (f Fix) Frac() Fix {
	return f & fracMask
}

// Float64 returns f as a float64. The conversion is exact.
func (f Fix) Float64() float64 {
	return float64(f) / float64(One)
}

// Sign returns -1 if f < 0, 0 if f == 0, 1 if f > 0.
func (f Fix) Sign() int {
	return mu.Sign(int32(f))
}

// Abs returns the absolute value of f. Abs(Min) == Min.
func (f Fix) Abs() Fix {
	return Fix(mu.Abs(int32(f)))
}

// Cmp compares two values.
// Returns -1 if f < other, 0 if f == other, 1 if f > other.
func (f Fix) Cmp(other Fix) int {
	if f == other {
		return 0
	}
	if f > other {
		return 1
	}
	return -1
}
