// Package generator draws random passwords from a character pool.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/rxritet/upwd/internal/pool"
)

// MaxLength is the longest password Password will build.
const MaxLength = 1 << 16

var (
	// ErrEmptyPool is returned when there is nothing to draw from.
	ErrEmptyPool = errors.New("pool contains no characters")
	// ErrNegativeLength is returned for a negative password length.
	ErrNegativeLength = errors.New("password length must not be negative")
	// ErrLengthTooLarge is returned for lengths above MaxLength.
	ErrLengthTooLarge = fmt.Errorf("password length must not exceed %d", MaxLength)
)

// Generator samples passwords using a source of random bytes.
type Generator struct {
	src io.Reader
}

// New creates a Generator that reads randomness from src.
// A nil src falls back to crypto/rand.Reader.
func New(src io.Reader) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{src: src}
}

// Generate creates a password of the given length using the process-wide
// random source.
func Generate(p *pool.Pool, length int) (string, error) {
	return New(nil).Password(p, length)
}

// Password returns length characters, each picked independently and
// uniformly from p. Characters may repeat. A zero length yields "".
// Nothing is returned on error, so a caller never sees a short password.
func (g *Generator) Password(p *pool.Pool, length int) (string, error) {
	if p == nil || p.IsEmpty() {
		return "", ErrEmptyPool
	}
	if length < 0 {
		return "", fmt.Errorf("%w: got %d", ErrNegativeLength, length)
	}
	if length > MaxLength {
		return "", fmt.Errorf("%w: got %d", ErrLengthTooLarge, length)
	}

	var sb strings.Builder
	sb.Grow(length)

	size := big.NewInt(int64(p.Len()))
	for i := 0; i < length; i++ {
		idx, err := g.randInt(size)
		if err != nil {
			return "", err
		}
		r, _ := p.Get(idx)
		sb.WriteRune(r)
	}

	return sb.String(), nil
}

// randInt returns a uniform random int in [0, max).
func (g *Generator) randInt(max *big.Int) (int, error) {
	n, err := rand.Int(g.src, max)
	if err != nil {
		return 0, fmt.Errorf("read random source: %w", err)
	}
	return int(n.Int64()), nil
}
