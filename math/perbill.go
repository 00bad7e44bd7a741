package math

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// PerbillAccuracy is the denominator of a Perbill: one whole is one billion parts.
const PerbillAccuracy uint32 = 1_000_000_000

var (
	ErrPerbillOverflow  = errorsmod.Register(mathCodespace, 8, "fraction exceeds one whole")
	ErrZeroDenominator  = errorsmod.Register(mathCodespace, 9, "zero denominator")
	ErrNegativeRational = errorsmod.Register(mathCodespace, 10, "negative rational")

	perbillAccuracyInt = sdkmath.NewIntFromUint64(uint64(PerbillAccuracy))
	perbillAccuracyDec = sdkmath.LegacyNewDec(int64(PerbillAccuracy))
)

// Perbill is a fraction in [0, 1] stored exactly as parts per billion.
//
// Arithmetic on Perbill never rounds up: every multiplication floors, so a
// share computed from a Perbill can never exceed the amount it is taken from.
type Perbill struct {
	parts uint32
}

// NewPerbill returns a Perbill of the given parts, failing above one whole.
func NewPerbill(parts uint32) (Perbill, error) {
	if parts > PerbillAccuracy {
		return Perbill{}, errorsmod.Wrapf(ErrPerbillOverflow, "%d parts", parts)
	}
	return Perbill{parts: parts}, nil
}

// MustNewPerbill is NewPerbill that panics on invalid input. Use for constants.
func MustNewPerbill(parts uint32) Perbill {
	p, err := NewPerbill(parts)
	if err != nil {
		panic(err)
	}
	return p
}

func ZeroPerbill() Perbill { return Perbill{} }

func OnePerbill() Perbill { return Perbill{parts: PerbillAccuracy} }

// PerbillFromPercent returns p percent. Values above 100 saturate to one.
func PerbillFromPercent(p uint32) Perbill {
	if p >= 100 {
		return OnePerbill()
	}
	return Perbill{parts: p * (PerbillAccuracy / 100)}
}

// PerbillFromRational returns floor(num/den) as a Perbill. The ratio must lie
// in [0, 1].
func PerbillFromRational(num, den sdkmath.Int) (Perbill, error) {
	if den.IsNil() || den.IsZero() {
		return Perbill{}, ErrZeroDenominator
	}
	if num.IsNegative() || den.IsNegative() {
		return Perbill{}, ErrNegativeRational
	}
	if num.GT(den) {
		return Perbill{}, errorsmod.Wrapf(ErrPerbillOverflow, "%s/%s", num, den)
	}
	parts := num.Mul(perbillAccuracyInt).Quo(den)
	return Perbill{parts: uint32(parts.Uint64())}, nil
}

func (p Perbill) Parts() uint32 { return p.parts }

func (p Perbill) IsZero() bool { return p.parts == 0 }

func (p Perbill) IsOne() bool { return p.parts == PerbillAccuracy }

func (p Perbill) Equal(o Perbill) bool { return p.parts == o.parts }

func (p Perbill) LT(o Perbill) bool { return p.parts < o.parts }

func (p Perbill) LTE(o Perbill) bool { return p.parts <= o.parts }

// CheckedAdd returns p+o and false when the sum exceeds one whole.
func (p Perbill) CheckedAdd(o Perbill) (Perbill, bool) {
	sum := uint64(p.parts) + uint64(o.parts)
	if sum > uint64(PerbillAccuracy) {
		return Perbill{}, false
	}
	return Perbill{parts: uint32(sum)}, true
}

// SaturatingSub returns p-o, floored at zero.
func (p Perbill) SaturatingSub(o Perbill) Perbill {
	if o.parts >= p.parts {
		return Perbill{}
	}
	return Perbill{parts: p.parts - o.parts}
}

// Complement returns 1-p.
func (p Perbill) Complement() Perbill {
	return Perbill{parts: PerbillAccuracy - p.parts}
}

// Mul returns floor(p*o).
func (p Perbill) Mul(o Perbill) Perbill {
	prod := uint64(p.parts) * uint64(o.parts) / uint64(PerbillAccuracy)
	return Perbill{parts: uint32(prod)}
}

// MulInt returns floor(x*p). A nil or negative x yields zero.
func (p Perbill) MulInt(x sdkmath.Int) sdkmath.Int {
	if x.IsNil() || !x.IsPositive() {
		return sdkmath.ZeroInt()
	}
	return x.Mul(sdkmath.NewIntFromUint64(uint64(p.parts))).Quo(perbillAccuracyInt)
}

// LegacyDec returns the fraction as an sdk LegacyDec, exact to 9 places.
func (p Perbill) LegacyDec() sdkmath.LegacyDec {
	return sdkmath.LegacyNewDec(int64(p.parts)).Quo(perbillAccuracyDec)
}

// Dec returns the fraction as an apd-backed Dec.
func (p Perbill) Dec() Dec {
	return NewDecFinite(int64(p.parts), -9)
}

func (p Perbill) String() string {
	return fmt.Sprintf("%d.%09d", p.parts/PerbillAccuracy, p.parts%PerbillAccuracy)
}

func (p Perbill) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.parts)
}

func (p *Perbill) UnmarshalJSON(bz []byte) error {
	var parts uint64
	if err := json.Unmarshal(bz, &parts); err != nil {
		return fmt.Errorf("perbill must be an integer number of parts, got %s", string(bz))
	}
	if parts > uint64(PerbillAccuracy) {
		return errorsmod.Wrapf(ErrPerbillOverflow, "%d parts", parts)
	}
	p.parts = uint32(parts)
	return nil
}

// ParsePerbill parses a decimal string such as "0.025" into a Perbill,
// truncating past nine decimal places.
func ParsePerbill(s string) (Perbill, error) {
	d, err := sdkmath.LegacyNewDecFromStr(s)
	if err != nil {
		return Perbill{}, err
	}
	if d.IsNegative() {
		return Perbill{}, errorsmod.Wrapf(ErrNegativeRational, "%s", s)
	}
	if d.GT(sdkmath.LegacyOneDec()) {
		return Perbill{}, errorsmod.Wrapf(ErrPerbillOverflow, "%s", s)
	}
	parts := d.MulInt64(int64(PerbillAccuracy)).TruncateInt64()
	return Perbill{parts: uint32(parts)}, nil
}

// SumExactlyOne folds fractions through CheckedAdd. It returns false as soon
// as an intermediate sum overflows, and otherwise reports whether the total
// is exactly one whole.
func SumExactlyOne(fractions ...Perbill) bool {
	acc := ZeroPerbill()
	for _, f := range fractions {
		var ok bool
		acc, ok = acc.CheckedAdd(f)
		if !ok {
			return false
		}
	}
	return acc.IsOne()
}
