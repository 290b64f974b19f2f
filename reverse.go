package bufview

// Reverse reverses the window in place and returns v. The backing buffer is
// shared, so every view over the same region observes the new order.
func (v View[T]) Reverse() View[T] {
	for i, j := v.off, v.off+v.n-1; i < j; i, j = i+1, j-1 {
		v.buf[i], v.buf[j] = v.buf[j], v.buf[i]
	}
	return v
}
