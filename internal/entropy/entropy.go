// Package entropy converts between password length and entropy in bits for
// passwords drawn uniformly from a pool of a given size.
//
// Entropy is log2 of the number of equally likely passwords:
//
//	bits = log2(poolSize^length) = length × log2(poolSize)
//
// Entropy works in the log domain and never builds the power itself, so it
// stays finite for any length. Combinations and ExactEntropy compute the
// same quantity through math/big when the exact count is wanted.
package entropy

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// MaxBits is the saturation boundary: an entropy that does not fit a finite
// float64 is reported as MaxBits instead of +Inf.
const MaxBits = math.MaxFloat64

var (
	// ErrEmptyPool is returned when the pool size is zero or negative.
	ErrEmptyPool = errors.New("pool contains no characters")
	// ErrDegeneratePoolSize is returned when a length is requested for a pool
	// of size 0 or 1, where no length yields positive entropy.
	ErrDegeneratePoolSize = errors.New("pool size must be greater than 1")
	// ErrNegativeLength is returned for a negative password length.
	ErrNegativeLength = errors.New("length must not be negative")
	// ErrInvalidEntropy is returned for negative or non-finite entropy targets.
	ErrInvalidEntropy = errors.New("entropy must be a finite non-negative number")
	// ErrLengthOverflow is returned when the required length does not fit an int.
	ErrLengthOverflow = errors.New("required length is too large")
)

// Entropy returns the entropy in bits of a password of the given length drawn
// from a pool of poolSize characters.
func Entropy(length, poolSize int) (float64, error) {
	if poolSize <= 0 {
		return 0, ErrEmptyPool
	}
	if length < 0 {
		return 0, ErrNegativeLength
	}
	if length == 0 || poolSize == 1 {
		return 0, nil
	}
	return saturate(float64(length) * math.Log2(float64(poolSize))), nil
}

// Combinations returns poolSize^length, the exact number of distinct
// passwords. It is a verification utility for cross-checking Entropy: the
// result has about length × log2(poolSize) bits and is computed without a
// bound, so keep length small.
func Combinations(length, poolSize int) *big.Int {
	if length < 0 || poolSize < 0 {
		return new(big.Int)
	}
	return new(big.Int).Exp(big.NewInt(int64(poolSize)), big.NewInt(int64(length)), nil)
}

// ExactEntropy is Entropy computed from the exact Combinations count, kept
// for verification; its cost grows with the size of Combinations.
// The logarithm is taken on the big.Float mantissa and exponent separately,
// so it never overflows float64 no matter how large the power is.
func ExactEntropy(length, poolSize int) (float64, error) {
	if poolSize <= 0 {
		return 0, ErrEmptyPool
	}
	if length < 0 {
		return 0, ErrNegativeLength
	}
	return log2Int(Combinations(length, poolSize)), nil
}

// Length returns the real-valued length needed to reach the given entropy
// with a pool of poolSize characters. Callers round it up; see RequiredLength.
func Length(entropy float64, poolSize int) (float64, error) {
	if poolSize <= 1 {
		return 0, fmt.Errorf("%w: got %d", ErrDegeneratePoolSize, poolSize)
	}
	if math.IsNaN(entropy) || math.IsInf(entropy, 0) || entropy < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidEntropy, entropy)
	}
	if entropy == 0 {
		return 0, nil
	}
	return entropy / math.Log2(float64(poolSize)), nil
}

// RequiredLength returns the smallest whole length whose entropy is at least
// the requested one. The ceiling of Length is corrected by one step either
// way against Entropy, so floating-point round-off neither adds a character
// nor drops below the target.
func RequiredLength(entropy float64, poolSize int) (int, error) {
	l, err := Length(entropy, poolSize)
	if err != nil {
		return 0, err
	}
	c := math.Ceil(l)
	if c >= float64(math.MaxInt-1) {
		return 0, ErrLengthOverflow
	}
	n := int(c)

	if n > 0 {
		if bits, _ := Entropy(n-1, poolSize); bits >= entropy {
			return n - 1, nil
		}
	}
	if bits, _ := Entropy(n, poolSize); bits < entropy {
		n++
	}
	return n, nil
}

func saturate(bits float64) float64 {
	if math.IsInf(bits, 1) || bits > MaxBits {
		return MaxBits
	}
	return bits
}

// log2Int returns log2(n) for n > 0 and 0 otherwise.
func log2Int(n *big.Int) float64 {
	if n.Sign() <= 0 {
		return 0
	}
	f := new(big.Float).SetInt(n)
	mant := new(big.Float)
	exp := f.MantExp(mant) // n = mant × 2^exp, mant in [0.5, 1)
	m, _ := mant.Float64()
	return saturate(float64(exp) + math.Log2(m))
}
