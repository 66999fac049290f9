package wfgraph

import "iter"

// Collection is an identifier-keyed set of entities that remembers the
// order in which identifiers were first seen.
type Collection[T any] struct {
	keys  []string
	items map[string]T
}

// NewCollection returns an empty collection.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

// Put stores v under id. A repeated id replaces the value but keeps its
// original position.
func (c *Collection[T]) Put(id string, v T) {
	if _, ok := c.items[id]; !ok {
		c.keys = append(c.keys, id)
	}
	c.items[id] = v
}

// Get looks up id. The empty id never resolves.
func (c *Collection[T]) Get(id string) (T, bool) {
	var zero T
	if c == nil || id == "" {
		return zero, false
	}
	v, ok := c.items[id]
	return v, ok
}

// Len returns the number of distinct identifiers.
func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns identifiers in first-seen order.
func (c *Collection[T]) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// All iterates id/value pairs in first-seen order.
func (c *Collection[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		if c == nil {
			return
		}
		for _, k := range c.keys {
			if !yield(k, c.items[k]) {
				return
			}
		}
	}
}

// Map copies the collection into a plain map for serialization.
func (c *Collection[T]) Map() map[string]T {
	out := make(map[string]T, c.Len())
	for k, v := range c.All() {
		out[k] = v
	}
	return out
}

// Adjacency indexes transitions by their source activity.
// Edge order within a source is document order and decides branch order.
type Adjacency struct {
	sources []string
	edges   map[string][]Transition
}

// NewAdjacency returns an empty index.
func NewAdjacency() *Adjacency {
	return &Adjacency{edges: make(map[string][]Transition)}
}

// Add appends t under its FromActivityID.
func (a *Adjacency) Add(t Transition) {
	if _, ok := a.edges[t.FromActivityID]; !ok {
		a.sources = append(a.sources, t.FromActivityID)
	}
	a.edges[t.FromActivityID] = append(a.edges[t.FromActivityID], t)
}

// Outgoing returns the transitions leaving id; nil when there are none.
func (a *Adjacency) Outgoing(id string) []Transition {
	if a == nil {
		return nil
	}
	return a.edges[id]
}

// Sources returns source activity ids that have at least one transition,
// in first-seen order.
func (a *Adjacency) Sources() []string {
	if a == nil {
		return nil
	}
	out := make([]string, 0, len(a.sources))
	for _, s := range a.sources {
		if len(a.edges[s]) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the total number of transitions.
func (a *Adjacency) Len() int {
	if a == nil {
		return 0
	}
	n := 0
	for _, ts := range a.edges {
		n += len(ts)
	}
	return n
}

// Map copies the index into a plain map for serialization.
func (a *Adjacency) Map() map[string][]Transition {
	out := make(map[string][]Transition)
	for _, s := range a.Sources() {
		ts := a.edges[s]
		cp := make([]Transition, len(ts))
		copy(cp, ts)
		out[s] = cp
	}
	return out
}
