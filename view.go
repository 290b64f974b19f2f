// Package bufview provides zero-copy windows over borrowed buffers.
//
// A View is an (offset, length) pair over a slice it does not own. Slicing a view
// produces a new view over the same backing array; nothing is copied. Views are
// not safe for concurrent use when any goroutine calls Reverse.
package bufview

import "fmt"

// View is a window [off, off+n) over buf. The zero-length view with no buffer
// bound is the empty sentinel returned by Empty.
type View[T comparable] struct {
	buf []T
	off int
	n   int
}

// Empty returns the empty sentinel.
func Empty[T comparable]() View[T] {
	return View[T]{}
}

// Wrap returns a view over the whole of buf. Wrap(nil) is the empty sentinel.
func Wrap[T comparable](buf []T) View[T] {
	if buf == nil {
		return Empty[T]()
	}
	return View[T]{buf: buf, n: len(buf)}
}

// WrapRange returns a view over buf[offset:offset+length].
func WrapRange[T comparable](buf []T, offset, length int) (View[T], error) {
	if offset < 0 || length < 0 || offset > len(buf)-length {
		return View[T]{}, outOfRange("wrap", offset, length, len(buf))
	}
	if buf == nil {
		return Empty[T](), nil
	}
	return View[T]{buf: buf, off: offset, n: length}, nil
}

// IsEmpty reports whether v is the empty sentinel. A zero-length view that is
// still bound to a buffer is not empty in this sense.
func (v View[T]) IsEmpty() bool {
	return v.buf == nil && v.off == 0 && v.n == 0
}

func (v View[T]) Len() int {
	return v.n
}

// Offset is the position of the first element within the backing buffer.
func (v View[T]) Offset() int {
	return v.off
}

// Array returns the whole backing buffer, including elements outside the window.
func (v View[T]) Array() []T {
	return v.buf
}

// Slice returns the window as a subslice of the backing buffer. Writes through
// it are visible to every view over the same buffer.
func (v View[T]) Slice() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf[v.off : v.off+v.n : v.off+v.n]
}

// Clone returns a copy of the window's elements.
func (v View[T]) Clone() []T {
	c := make([]T, v.n)
	copy(c, v.Slice())
	return c
}

// At returns the element at index i of the window.
func (v View[T]) At(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, outOfRange("at", i, 1, v.n)
	}
	return v.buf[v.off+i], nil
}

func (v View[T]) String() string {
	if v.IsEmpty() {
		return "View[empty]"
	}
	return fmt.Sprintf("View[%d:%d]", v.off, v.off+v.n)
}

// Skip drops the first n elements. Skipping everything yields the empty sentinel.
func (v View[T]) Skip(n int) (View[T], error) {
	if n < 0 || n > v.n {
		return View[T]{}, outOfRange("skip", n, n, v.n)
	}
	if v.n-n == 0 {
		return Empty[T](), nil
	}
	return View[T]{buf: v.buf, off: v.off + n, n: v.n - n}, nil
}

// SkipLast drops the last n elements.
func (v View[T]) SkipLast(n int) (View[T], error) {
	if n < 0 || n > v.n {
		return View[T]{}, outOfRange("skip last", v.n-n, n, v.n)
	}
	return View[T]{buf: v.buf, off: v.off, n: v.n - n}, nil
}

// Take keeps the first n elements.
func (v View[T]) Take(n int) (View[T], error) {
	if n < 0 || n > v.n {
		return View[T]{}, outOfRange("take", 0, n, v.n)
	}
	return View[T]{buf: v.buf, off: v.off, n: n}, nil
}

// TakeRange is Skip(skip) followed by Take(n).
func (v View[T]) TakeRange(skip, n int) (View[T], error) {
	rest, err := v.Skip(skip)
	if err != nil {
		return View[T]{}, err
	}
	return rest.Take(n)
}

// TakeLast keeps the last n elements.
func (v View[T]) TakeLast(n int) (View[T], error) {
	if n < 0 || n > v.n {
		return View[T]{}, outOfRange("take last", v.n-n, n, v.n)
	}
	return View[T]{buf: v.buf, off: v.off + v.n - n, n: n}, nil
}
