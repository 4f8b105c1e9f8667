// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixmath

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestInt26_6(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f Fix
		x fixed.Int26_6
	}{
		{Zero, 0},
		{One, fixed.I(1)},
		{FromInt(-3), fixed.I(-3)},
		{Fix(0x8000), 32},
		{Fix(1024), 1},
		{SmallestPositive, 0},
		{-SmallestPositive, -1},
		{Max, fixed.I(32767) + 63},
		{Min, fixed.I(-32768)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.x, test.f.Int26_6())
			a.Equal(test.f&^(1<<shift26_6-1), FromInt26_6(test.x))
		})
	}
	a.Equal(Min, FromInt26_6(fixed.I(32768)))
	a.Equal(FromInt(7), FromInt26_6(fixed.I(7)))
}

func TestInt52_12(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f Fix
		x fixed.Int52_12
	}{
		{Zero, 0},
		{One, 1 << 12},
		{FromInt(-3), -3 << 12},
		{Fix(16), 1},
		{SmallestPositive, 0},
		{-SmallestPositive, -1},
		{Max, 32768<<12 - 1},
		{Min, -32768 << 12},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.x, test.f.Int52_12())
			a.Equal(test.f&^(1<<shift52_12-1), FromInt52_12(test.x))
		})
	}
	a.Equal(Min, FromInt52_12(32768<<12))
	a.Equal(Zero, FromInt52_12(65536<<12))
}
