package bufview

import "math"

// Reader consumes a byte view front to back. Unlike the decode functions, reads
// never go past the end of the view it was created with. A failed read leaves
// the position unchanged.
type Reader struct {
	v   View[byte]
	pos int
}

func NewReader(v View[byte]) *Reader {
	return &Reader{v: v}
}

// Pos is the number of bytes consumed so far.
func (r *Reader) Pos() int { return r.pos }

// Len is the number of bytes left.
func (r *Reader) Len() int { return r.v.n - r.pos }

// Remaining returns the unread part of the view.
func (r *Reader) Remaining() View[byte] {
	rest, _ := r.v.Skip(r.pos)
	return rest
}

// Next returns the next n bytes as a view and advances past them.
func (r *Reader) Next(n int) (View[byte], error) {
	if n < 0 || n > r.Len() {
		return View[byte]{}, outOfRange("read", r.pos, n, r.v.n)
	}
	next := View[byte]{buf: r.v.buf, off: r.v.off + r.pos, n: n}
	r.pos += n
	return next, nil
}

func (r *Reader) Skip(n int) error {
	_, err := r.Next(n)
	return err
}

// ReadUntil returns the bytes before the next delim and advances past delim.
func (r *Reader) ReadUntil(delim byte) (View[byte], error) {
	rest := r.Remaining()
	i := rest.FindFirst(delim)
	if i == NotFound {
		return View[byte]{}, outOfRange("read until", r.pos, rest.n+1, r.v.n)
	}
	head := View[byte]{buf: rest.buf, off: rest.off, n: i}
	r.pos += i + 1
	return head, nil
}

func (r *Reader) next(width int) ([]byte, error) {
	v, err := r.Next(width)
	if err != nil {
		return nil, err
	}
	return v.Slice(), nil
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.next(sizeBool)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.next(sizeUint16)
	if err != nil {
		return 0, err
	}
	return le.Uint16(b), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.next(sizeUint32)
	if err != nil {
		return 0, err
	}
	return le.Uint32(b), nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.next(sizeUint64)
	if err != nil {
		return 0, err
	}
	return le.Uint64(b), nil
}

func (r *Reader) ReadInt16() (int16, error) {
	u, err := r.ReadUint16()
	return int16(u), err
}

func (r *Reader) ReadInt32() (int32, error) {
	u, err := r.ReadUint32()
	return int32(u), err
}

func (r *Reader) ReadInt64() (int64, error) {
	u, err := r.ReadUint64()
	return int64(u), err
}

func (r *Reader) ReadFloat32() (float32, error) {
	u, err := r.ReadUint32()
	return math.Float32frombits(u), err
}

func (r *Reader) ReadFloat64() (float64, error) {
	u, err := r.ReadUint64()
	return math.Float64frombits(u), err
}
