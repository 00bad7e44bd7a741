// This code is forked from Regen Ledger.
// Their code is under the Apache2.0 License
// https://github.com/regen-network/regen-ledger/blob/3d818cf6e01af92eed25de5c17728a79070f56a3/types/math/dec.go

package math

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/cockroachdb/apd/v3"
)

// Dec is a wrapper around apd.Decimal that never mutates its operands.
//
// Balances and fractions that take part in consensus are sdkmath.Int and
// Perbill. Dec is reserved for derived, human facing figures such as the
// annualized inflation percentage.
type Dec struct {
	dec   apd.Decimal
	isNaN bool
}

const mathCodespace = "math"
const NaNStr = "NaN"

var (
	ErrInvalidDecString = errorsmod.Register(mathCodespace, 1, "invalid decimal string")
	ErrInfiniteString   = errorsmod.Register(mathCodespace, 4, "value is infinite")
	ErrNaN              = errorsmod.Register(mathCodespace, 6, "Not a Number (NaN) is not permitted in this context")
)

func ZeroDec() Dec {
	return NewDecFromInt64(0)
}

func OneDec() Dec {
	return NewDecFromInt64(1)
}

// decimal128, 34 digits of precision, see cosmos-sdk#7773
var dec128Context = apd.Context{
	Precision:   34,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Traps:       apd.DefaultTraps,
}

func NewNaN() Dec {
	return Dec{apd.Decimal{}, true}
}

// NewDecFromString parses a string in the format `123.456`.
func NewDecFromString(s string) (Dec, error) {
	if s == "" {
		s = "0"
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Dec{}, ErrInvalidDecString.Wrap(err.Error())
	}

	d1 := Dec{*d, false}
	if d1.dec.Form == apd.Infinite {
		return d1, ErrInfiniteString.Wrap(s)
	}
	return d1, nil
}

func MustNewDecFromString(s string) Dec {
	ret, err := NewDecFromString(s)
	if err != nil {
		panic(err)
	}
	return ret
}

func NewDecFromInt64(x int64) Dec {
	var res Dec
	res.dec.SetInt64(x)
	return res
}

// NewDecFinite returns a decimal with a value of coeff * 10^exp.
func NewDecFinite(coeff int64, exp int32) Dec {
	var res Dec
	res.dec.SetFinite(coeff, exp)
	return res
}

func NewDecFromSdkInt(x sdkmath.Int) (Dec, error) {
	return NewDecFromString(x.String())
}

func (x Dec) Add(y Dec) (Dec, error) {
	var z Dec
	_, err := apd.BaseContext.Add(&z.dec, &x.dec, &y.dec)
	return z, errorsmod.Wrap(err, "decimal addition error")
}

func (x Dec) Sub(y Dec) (Dec, error) {
	var z Dec
	_, err := apd.BaseContext.Sub(&z.dec, &x.dec, &y.dec)
	return z, errorsmod.Wrap(err, "decimal subtraction error")
}

// Quo returns x/y with 34 digits of precision.
func (x Dec) Quo(y Dec) (Dec, error) {
	var z Dec
	_, err := dec128Context.Quo(&z.dec, &x.dec, &y.dec)
	if z.IsNaN() {
		return z, errorsmod.Wrap(ErrNaN, "Quo result is NaN")
	}
	return z, errorsmod.Wrap(err, "decimal quotient error")
}

// Mul returns x*y with 34 digits of precision.
func (x Dec) Mul(y Dec) (Dec, error) {
	var z Dec
	_, err := dec128Context.Mul(&z.dec, &x.dec, &y.dec)
	return z, errorsmod.Wrap(err, "decimal multiplication error")
}

// Quantize rounds x half-even to the given number of decimal places.
func (x Dec) Quantize(places int32) (Dec, error) {
	var z Dec
	_, err := dec128Context.Quantize(&z.dec, &x.dec, -places)
	return z, errorsmod.Wrap(err, "decimal quantize error")
}

// Percent returns x*100.
func (x Dec) Percent() (Dec, error) {
	return x.Mul(NewDecFromInt64(100))
}

func (x Dec) SdkLegacyDec() (sdkmath.LegacyDec, error) {
	return sdkmath.LegacyNewDecFromStr(x.dec.Text('f'))
}

func (x Dec) String() string {
	if x.IsNaN() {
		return NaNStr
	}
	return x.dec.Text('f')
}

func (x Dec) Marshal() ([]byte, error) {
	if x.IsNaN() {
		return []byte(NaNStr), nil
	}
	return x.dec.MarshalText()
}

func (x *Dec) Unmarshal(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if string(data) == NaNStr {
		*x = NewNaN()
		return nil
	}
	return x.dec.UnmarshalText(data)
}

func (x Dec) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

func (x *Dec) UnmarshalJSON(bz []byte) error {
	var text string
	if err := json.Unmarshal(bz, &text); err != nil {
		return err
	}
	if text == NaNStr {
		*x = NewNaN()
		return nil
	}
	newDec, err := NewDecFromString(text)
	if err != nil {
		return err
	}
	*x = newDec
	return nil
}

func (x Dec) Cmp(y Dec) int {
	return x.dec.Cmp(&y.dec)
}

func (x Dec) Equal(y Dec) bool {
	return x.dec.Cmp(&y.dec) == 0
}

func (x Dec) IsNaN() bool {
	return x.isNaN
}

func (x Dec) IsZero() bool {
	if x.IsNaN() {
		return false
	}
	return x.dec.IsZero()
}
