package match

import "slices"

// Pool is the ordered collection of candidates not yet claimed by a roster
// entry. A Pool belongs to a single merge and is not safe for concurrent use.
type Pool struct {
	items []Candidate
}

// NewPool creates a pool holding a copy of candidates, in order.
func NewPool(candidates []Candidate) *Pool {
	return &Pool{items: slices.Clone(candidates)}
}

// Len returns the number of available candidates.
func (p *Pool) Len() int { return len(p.items) }

// Remaining returns the available candidates in their original order.
func (p *Pool) Remaining() []Candidate {
	return slices.Clone(p.items)
}

// index returns the position of the first candidate satisfying pred, or -1.
func (p *Pool) index(pred func(*Candidate) bool) int {
	for i := range p.items {
		if pred(&p.items[i]) {
			return i
		}
	}

	return -1
}

// take removes and returns the candidate at position i.
func (p *Pool) take(i int) Candidate {
	c := p.items[i]
	p.items = slices.Delete(p.items, i, i+1)

	return c
}
