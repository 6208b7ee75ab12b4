package cli

import (
	"fmt"
	"io"

	"github.com/rxritet/upwd/internal/entropy"
)

// Info summarises what a generated password actually achieves.
type Info struct {
	Entropy  float64
	Length   int
	PoolSize int
}

// NewInfo computes the entropy for the realised length, not the requested
// target.
func NewInfo(length, poolSize int) (Info, error) {
	bits, err := entropy.Entropy(length, poolSize)
	if err != nil {
		return Info{}, err
	}
	return Info{Entropy: bits, Length: length, PoolSize: poolSize}, nil
}

func (i Info) String() string {
	return fmt.Sprintf("Entropy: %.0f bits | Length: %d chars | Pool size: %d chars",
		i.Entropy, i.Length, i.PoolSize)
}

// WriteTo writes the summary as a single line.
func (i Info) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintln(w, i.String())
	return int64(n), err
}
