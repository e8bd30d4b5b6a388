package fibonacci

import "iter"

// All returns an iterator over the remaining terms of g. Ranging over it
// advances g; breaking out of the loop leaves g positioned after the last
// term that was yielded.
//
// Pull-style consumption is available through iter.Pull:
//
//	next, stop := iter.Pull(g.All())
//	defer stop()
func (g *Generator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := g.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Enumerate is like All but also yields the index of each term.
func (g *Generator[T]) Enumerate() iter.Seq2[uint64, T] {
	return func(yield func(uint64, T) bool) {
		for {
			v, ok := g.Next()
			if !ok || !yield(g.emitted-1, v) {
				return
			}
		}
	}
}
