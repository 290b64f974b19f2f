package bufview

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrOutOfRange is returned when a window, count or decode position falls outside the buffer.
var ErrOutOfRange = errors.New("out of range")

// ErrInvalidArgument is returned for a non-positive chunk size.
var ErrInvalidArgument = errors.New("invalid argument")

// RangeError describes a bounds violation.
// Offset and Count are the requested position and element count, Size is what was available.
type RangeError struct {
	Op     string
	Offset int
	Count  int
	Size   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bufview: %s: offset %d count %d exceeds size %d", e.Op, e.Offset, e.Count, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// outOfRange builds a RangeError and records it at debug level.
func outOfRange(op string, offset, count, size int) error {
	err := &RangeError{Op: op, Offset: offset, Count: count, Size: size}
	logger.WithFields(logrus.Fields{
		"op":     op,
		"offset": offset,
		"count":  count,
		"size":   size,
	}).Debug("bufview: out of range")
	return err
}

func invalidArgument(op string, format string, args ...interface{}) error {
	err := fmt.Errorf("bufview: %s: %s: %w", op, fmt.Sprintf(format, args...), ErrInvalidArgument)
	logger.WithField("op", op).Debug(err.Error())
	return err
}
