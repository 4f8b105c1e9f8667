// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixmath

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// f / 2^FracBits == f * 5^FracBits / 10^FracBits
	fracPow5 = new(big.Int).Exp(big.NewInt(5), big.NewInt(FracBits), nil)

	decOne = decimal.New(int64(One), 0)
	decMax = decimal.New(maxNumber, 0)
	decMin = decimal.New(minNumber, 0)
)

// Decimal returns f as a decimal number. The conversion is exact.
func (f Fix) Decimal() decimal.Decimal {
	m := new(big.Int).Mul(big.NewInt(int64(f)), fracPow5)
	return decimal.NewFromBigInt(m, -FracBits)
}

// FromDecimal returns a value for given decimal, truncating the digits below SmallestPositive.
// Returns ErrRange, if d doesn't fit a Fix.
func FromDecimal(d decimal.Decimal) (Fix, error) {
	scaled := d.Mul(decOne).Truncate(0)
	if scaled.Cmp(decMax) > 0 || scaled.Cmp(decMin) < 0 {
		return Zero, ErrRange
	}
	return Fix(scaled.IntPart()), nil
}
