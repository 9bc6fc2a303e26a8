package usb

import (
	"errors"
	"fmt"

	"github.com/mulabs/usbcc/internal/transport"
)

// ErrNoParent is returned by Device.Parent for a root device. Having no
// parent is not a transport failure.
var ErrNoParent = errors.New("device has no parent")

// ErrDeviceClosed is returned when an operation is attempted on a closed
// device or session.
var ErrDeviceClosed = errors.New("device is closed")

// ErrBusClosed is returned when an operation is attempted on a closed bus.
var ErrBusClosed = errors.New("bus is closed")

// StatusError is a recognized negative status reported by the transport.
type StatusError struct {
	// Code is the native status code.
	Code int

	msg string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("usb: %s (status %d)", e.msg, e.Code)
}

// newStatusError builds a StatusError carrying the transport's own
// description of the code.
func newStatusError(t transport.Transport, status int) *StatusError {
	return &StatusError{Code: status, msg: t.StrError(status)}
}

// IsFailure reports whether a native status is one of the recognized error
// codes. Zero and any unrecognized value, including unknown negative ones,
// count as success. Callers must route every fallible native result through
// here before treating it as a count or a handle.
func IsFailure(status int) bool {
	switch status {
	case transport.StatusErrorIO,
		transport.StatusErrorInvalidParam,
		transport.StatusErrorAccess,
		transport.StatusErrorNoDevice,
		transport.StatusErrorNotFound,
		transport.StatusErrorBusy,
		transport.StatusErrorTimeout,
		transport.StatusErrorOverflow,
		transport.StatusErrorPipe,
		transport.StatusErrorInterrupted,
		transport.StatusErrorNoMem,
		transport.StatusErrorNotSupported,
		transport.StatusErrorOther:
		return true
	default:
		return false
	}
}
