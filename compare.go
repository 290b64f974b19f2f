package bufview

// NotFound is returned by FindFirst when the value does not occur.
const NotFound = -1

// Equal reports whether v and other have the same length and pairwise equal elements.
func (v View[T]) Equal(other View[T]) bool {
	if v.n != other.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if v.buf[v.off+i] != other.buf[other.off+i] {
			return false
		}
	}
	return true
}

func (v View[T]) EqualSlice(s []T) bool {
	return v.Equal(Wrap(s))
}

// IsPrefixOf reports whether other starts with v. A v longer than other is never a prefix.
func (v View[T]) IsPrefixOf(other View[T]) bool {
	if v.n > other.n {
		return false
	}
	head, err := other.Take(v.n)
	if err != nil {
		return false
	}
	return head.Equal(v)
}

// SliceIsPrefixOf reports whether v starts with prefix.
func SliceIsPrefixOf[T comparable](prefix []T, v View[T]) bool {
	return Wrap(prefix).IsPrefixOf(v)
}

// ContainsOnly reports whether every element equals value. True for a zero-length view.
func (v View[T]) ContainsOnly(value T) bool {
	for _, e := range v.Slice() {
		if e != value {
			return false
		}
	}
	return true
}

// FindFirst returns the index of the first occurrence of value within the window, or NotFound.
func (v View[T]) FindFirst(value T) int {
	for i, e := range v.Slice() {
		if e == value {
			return i
		}
	}
	return NotFound
}
