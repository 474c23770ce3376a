package kinetic

import (
	"math"
	"math/big"
	"strconv"
)

// Scalar is a signed fixed-point number with 48 integer bits and 16
// fractional bits (I48F16), stored as a raw int64. It is the
// representation for every stored spatial coordinate and size, so that
// geometry and animation math are bit-identical across platforms.
//
// The zero value is 0.
type Scalar int64

const (
	scalarFracBits = 16
	scalarOne      = Scalar(1) << scalarFracBits

	// MaxScalar and MinScalar bound the representable range.
	MaxScalar = Scalar(math.MaxInt64)
	MinScalar = Scalar(math.MinInt64)
)

// NewScalar converts a binary float to a Scalar, truncating toward
// zero at bit 17 (discarding everything finer than 1/65536). Values
// outside the representable range saturate at MaxScalar/MinScalar.
func NewScalar(f float64) Scalar {
	scaled := f * float64(scalarOne)
	switch {
	case math.IsNaN(scaled):
		return 0
	case scaled >= float64(math.MaxInt64):
		return MaxScalar
	case scaled <= float64(math.MinInt64):
		return MinScalar
	default:
		return Scalar(int64(scaled)) // float->int truncates toward zero
	}
}

// Float64 converts a Scalar back to a binary float. This is exact for
// any value NewScalar could have produced, since 1/65536 is exactly
// representable in IEEE-754 double precision.
func (s Scalar) Float64() float64 {
	return float64(s) / float64(scalarOne)
}

// Raw returns the underlying signed 64-bit integer representation.
func (s Scalar) Raw() int64 { return int64(s) }

// ScalarFromRaw reconstructs a Scalar from its raw bit pattern, as
// produced by Raw or by a serialized document.
func ScalarFromRaw(raw int64) Scalar { return Scalar(raw) }

// Add returns s+other. Integer overflow wraps per Go's normal int64
// semantics, matching other fixed-point libraries in the ecosystem.
func (s Scalar) Add(other Scalar) Scalar { return s + other }

// Sub returns s-other.
func (s Scalar) Sub(other Scalar) Scalar { return s - other }

// Mul returns s*other, computed via a widened 128-bit intermediate so
// that the fractional shift never loses precision from a premature
// int64 overflow. The result saturates at MaxScalar/MinScalar if it
// would not fit in 64 bits.
func (s Scalar) Mul(other Scalar) Scalar {
	prod := new(big.Int).Mul(big.NewInt(int64(s)), big.NewInt(int64(other)))
	prod.Rsh(prod, scalarFracBits)
	return saturateBigInt(prod)
}

// Div returns s/other. Division by zero is a caller error and panics;
// the reducer and geometry predicates never divide by a value that can
// be zero without checking first.
func (s Scalar) Div(other Scalar) Scalar {
	if other == 0 {
		panic("kinetic: scalar division by zero")
	}
	num := new(big.Int).Lsh(big.NewInt(int64(s)), scalarFracBits)
	quo := new(big.Int).Quo(num, big.NewInt(int64(other)))
	return saturateBigInt(quo)
}

// Neg returns -s.
func (s Scalar) Neg() Scalar { return -s }

// Abs returns the absolute value of s, saturating if s is MinScalar.
func (s Scalar) Abs() Scalar {
	if s >= 0 {
		return s
	}
	if s == MinScalar {
		return MaxScalar
	}
	return -s
}

func saturateBigInt(v *big.Int) Scalar {
	if v.IsInt64() {
		return Scalar(v.Int64())
	}
	if v.Sign() < 0 {
		return MinScalar
	}
	return MaxScalar
}

// String renders the Scalar in its decimal form, for debugging.
func (s Scalar) String() string {
	return strconv.FormatFloat(s.Float64(), 'f', -1, 64)
}

// MarshalJSON encodes the Scalar as its raw signed integer bit
// pattern, so that the value round-trips exactly through JSON — a
// decimal rendering of the float value would not guarantee this.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(s), 10)), nil
}

// UnmarshalJSON decodes a Scalar from its raw signed integer bit pattern.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	raw, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*s = Scalar(raw)
	return nil
}
