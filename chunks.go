package bufview

import "iter"

// Chunks splits v into consecutive views of size elements. The last chunk holds
// the remainder and is left out when the remainder is zero. Each range over the
// returned sequence starts again from v.
func (v View[T]) Chunks(size int) (iter.Seq[View[T]], error) {
	if size <= 0 {
		return nil, invalidArgument("chunks", "size %d must be positive", size)
	}
	return func(yield func(View[T]) bool) {
		rest := v
		for rest.n >= size {
			chunk := View[T]{buf: rest.buf, off: rest.off, n: size}
			if !yield(chunk) {
				return
			}
			rest = View[T]{buf: rest.buf, off: rest.off + size, n: rest.n - size}
		}
		if rest.n > 0 {
			yield(rest)
		}
	}, nil
}
