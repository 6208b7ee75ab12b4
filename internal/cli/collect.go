package cli

import (
	"fmt"

	"github.com/rxritet/upwd/internal/generator"
	"github.com/rxritet/upwd/internal/pool"
)

// Classes exposes one configured character string per class.
type Classes interface {
	Uppercase() string
	Lowercase() string
	Digits() string
	Symbols() string
	Others() string
}

// Collect builds the pool for opts. Every selected class is merged in; with
// no class selected the pool is uppercase + lowercase + digits. An empty
// result is an error wrapping generator.ErrEmptyPool.
func Collect(opts Options, classes Classes) (*pool.Pool, error) {
	p := pool.New()

	if opts.AnyClass() {
		if opts.Uppercase {
			p.Extend(classes.Uppercase())
		}
		if opts.Lowercase {
			p.Extend(classes.Lowercase())
		}
		if opts.Digits {
			p.Extend(classes.Digits())
		}
		if opts.Symbols {
			p.Extend(classes.Symbols())
		}
		if opts.Others {
			p.Extend(classes.Others())
		}
	} else {
		p.Extend(classes.Uppercase()).
			Extend(classes.Lowercase()).
			Extend(classes.Digits())
	}

	if p.IsEmpty() {
		return nil, fmt.Errorf("%w: the selected character classes are empty", generator.ErrEmptyPool)
	}
	return p, nil
}
