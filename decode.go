package bufview

import (
	"encoding/binary"
	"math"
)

// All decoders read little-endian values starting at v.Offset()+extra in the
// backing buffer. The read is bounded by the buffer, not by the window, so a
// value may extend past the end of v as long as the buffer holds it.

var le = binary.LittleEndian

const (
	sizeBool    = 1
	sizeUint16  = 2
	sizeUint32  = 4
	sizeUint64  = 8
	sizeFloat32 = sizeUint32
	sizeFloat64 = sizeUint64
)

// window returns the width bytes at v.off+extra.
func window(op string, v View[byte], extra, width int) ([]byte, error) {
	// v.off <= len(v.buf), so the right-hand side cannot overflow.
	if extra < 0 || extra > len(v.buf)-v.off-width {
		return nil, outOfRange(op, extra, width, len(v.buf)-v.off)
	}
	start := v.off + extra
	return v.buf[start : start+width], nil
}

func Bool(v View[byte]) (bool, error) { return BoolAt(v, 0) }

// BoolAt decodes one byte; any non-zero value is true.
func BoolAt(v View[byte], extra int) (bool, error) {
	b, err := window("bool", v, extra, sizeBool)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func Char(v View[byte]) (uint16, error) { return CharAt(v, 0) }

// CharAt decodes a single UTF-16 code unit.
func CharAt(v View[byte], extra int) (uint16, error) {
	b, err := window("char", v, extra, sizeUint16)
	if err != nil {
		return 0, err
	}
	return le.Uint16(b), nil
}

func Float64(v View[byte]) (float64, error) { return Float64At(v, 0) }

func Float64At(v View[byte], extra int) (float64, error) {
	b, err := window("float64", v, extra, sizeFloat64)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(le.Uint64(b)), nil
}

func Int16(v View[byte]) (int16, error) { return Int16At(v, 0) }

func Int16At(v View[byte], extra int) (int16, error) {
	b, err := window("int16", v, extra, sizeUint16)
	if err != nil {
		return 0, err
	}
	return int16(le.Uint16(b)), nil
}

func Int32(v View[byte]) (int32, error) { return Int32At(v, 0) }

func Int32At(v View[byte], extra int) (int32, error) {
	b, err := window("int32", v, extra, sizeUint32)
	if err != nil {
		return 0, err
	}
	return int32(le.Uint32(b)), nil
}

func Int64(v View[byte]) (int64, error) { return Int64At(v, 0) }

func Int64At(v View[byte], extra int) (int64, error) {
	b, err := window("int64", v, extra, sizeUint64)
	if err != nil {
		return 0, err
	}
	return int64(le.Uint64(b)), nil
}

func Float32(v View[byte]) (float32, error) { return Float32At(v, 0) }

func Float32At(v View[byte], extra int) (float32, error) {
	b, err := window("float32", v, extra, sizeFloat32)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(le.Uint32(b)), nil
}

func Uint16(v View[byte]) (uint16, error) { return Uint16At(v, 0) }

func Uint16At(v View[byte], extra int) (uint16, error) {
	b, err := window("uint16", v, extra, sizeUint16)
	if err != nil {
		return 0, err
	}
	return le.Uint16(b), nil
}

func Uint32(v View[byte]) (uint32, error) { return Uint32At(v, 0) }

func Uint32At(v View[byte], extra int) (uint32, error) {
	b, err := window("uint32", v, extra, sizeUint32)
	if err != nil {
		return 0, err
	}
	return le.Uint32(b), nil
}

func Uint64(v View[byte]) (uint64, error) { return Uint64At(v, 0) }

func Uint64At(v View[byte], extra int) (uint64, error) {
	b, err := window("uint64", v, extra, sizeUint64)
	if err != nil {
		return 0, err
	}
	return le.Uint64(b), nil
}
