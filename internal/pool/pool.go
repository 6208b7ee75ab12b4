// Package pool holds the working alphabet of a generation request: a set of
// unique characters that remembers the order in which they were first added,
// so any character can be addressed by a stable integer index.
package pool

import "strings"

// Pool is an insertion-ordered set of runes.
// The zero value is an empty pool ready to use.
type Pool struct {
	chars []rune       // insertion order
	index map[rune]int // rune → position in chars
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{index: make(map[rune]int)}
}

// Extend merges every character of s into the pool. Characters already
// present keep their original position. It returns the pool so several
// classes can be chained.
func (p *Pool) Extend(s string) *Pool {
	if p.index == nil {
		p.index = make(map[rune]int, len(s))
	}
	for _, r := range s {
		if _, ok := p.index[r]; ok {
			continue
		}
		p.index[r] = len(p.chars)
		p.chars = append(p.chars, r)
	}
	return p
}

// Len returns the number of distinct characters.
func (p *Pool) Len() int {
	return len(p.chars)
}

// IsEmpty reports whether the pool has no characters.
func (p *Pool) IsEmpty() bool {
	return p.Len() == 0
}

// Get returns the character at position i in insertion order.
// ok is false when i is out of range.
func (p *Pool) Get(i int) (r rune, ok bool) {
	if i < 0 || i >= len(p.chars) {
		return 0, false
	}
	return p.chars[i], true
}

// Contains reports whether r is in the pool.
func (p *Pool) Contains(r rune) bool {
	_, ok := p.index[r]
	return ok
}

// ContainsAll reports whether every character of s is in the pool.
// An empty s is trivially contained.
func (p *Pool) ContainsAll(s string) bool {
	for _, r := range s {
		if !p.Contains(r) {
			return false
		}
	}
	return true
}

// Runes returns a copy of the characters in insertion order.
func (p *Pool) Runes() []rune {
	out := make([]rune, len(p.chars))
	copy(out, p.chars)
	return out
}

func (p *Pool) String() string {
	var sb strings.Builder
	sb.Grow(len(p.chars))
	for _, r := range p.chars {
		sb.WriteRune(r)
	}
	return sb.String()
}
