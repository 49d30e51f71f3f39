package internal

import "github.com/pkg/errors"

// The algorithms are written as plain value-returning functions. Rather than
// threading errors through every step, invalid input panics with a
// rasterError, and the public API recovers to convert it to an error.

var (
	// Radius below zero. Reported, never computed.
	ErrInvalidRadius = errors.New("invalid radius")
	// Integer arithmetic on the input would wrap around.
	ErrNumericOverflow = errors.New("numeric overflow")
	// NaN or infinite real coordinate.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// Wrapper that marks a panic as one of ours. Anything else that panics is a
// bug and must keep panicking.
type rasterError struct {
	err error
}

// Panic with a rasterError wrapping cause with a formatted message.
func fatalf(cause error, format string, args ...interface{}) {
	panic(rasterError{errors.Wrapf(cause, format, args...)})
}

func HandleRasterizePanicRecover(r interface{}) error {
	if r != nil {
		if rasterErr, ok := r.(rasterError); ok {
			return rasterErr.err
		}
		panic(r)
	}
	return nil
}

// Run fn, converting raster failures into an error.
func Guard(fn func()) (err error) {
	defer func() {
		if recoveredErr := HandleRasterizePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}
