package transport

// Native status codes shared by every Transport implementation. The values
// match libusb's error enumeration so that a cgo backend can pass its results
// through unchanged.
const (
	StatusSuccess           = 0
	StatusErrorIO           = -1
	StatusErrorInvalidParam = -2
	StatusErrorAccess       = -3
	StatusErrorNoDevice     = -4
	StatusErrorNotFound     = -5
	StatusErrorBusy         = -6
	StatusErrorTimeout      = -7
	StatusErrorOverflow     = -8
	StatusErrorPipe         = -9
	StatusErrorInterrupted  = -10
	StatusErrorNoMem        = -11
	StatusErrorNotSupported = -12
	StatusErrorOther        = -99
)

var statusText = map[int]string{
	StatusSuccess:           "success",
	StatusErrorIO:           "input/output error",
	StatusErrorInvalidParam: "invalid parameter",
	StatusErrorAccess:       "access denied (insufficient permissions)",
	StatusErrorNoDevice:     "no such device (it may have been disconnected)",
	StatusErrorNotFound:     "entity not found",
	StatusErrorBusy:         "resource busy",
	StatusErrorTimeout:      "operation timed out",
	StatusErrorOverflow:     "overflow",
	StatusErrorPipe:         "pipe error",
	StatusErrorInterrupted:  "system call interrupted (perhaps due to signal)",
	StatusErrorNoMem:        "insufficient memory",
	StatusErrorNotSupported: "operation not supported or unimplemented on this platform",
	StatusErrorOther:        "other error",
}

// StatusText returns a short description of a native status code.
func StatusText(status int) string {
	if s, ok := statusText[status]; ok {
		return s
	}
	return "unknown error"
}
