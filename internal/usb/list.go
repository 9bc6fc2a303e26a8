package usb

import (
	"github.com/mulabs/usbcc/internal/transport"
)

// deviceList is a scoped snapshot of the transport's attached-device list.
// It exists only for the duration of one enumeration or one parent lookup
// and must be released before that call returns.
type deviceList struct {
	t        transport.Transport
	raws     []transport.RawDevice
	released bool
}

// acquireList asks the transport for the current device list. The count the
// transport reports is sign-indistinguishable from a status code, so it goes
// through the classifier before being trusted.
func acquireList(t transport.Transport) (*deviceList, error) {
	raws, n := t.DeviceList()
	if IsFailure(n) {
		return nil, newStatusError(t, n)
	}
	return &deviceList{t: t, raws: raws}, nil
}

// release frees the native list. Safe to call more than once; only the first
// call reaches the transport. Callers defer it immediately after acquireList
// so every exit path releases.
func (l *deviceList) release() {
	if l.released {
		return
	}
	l.released = true
	l.t.FreeDeviceList(l.raws)
}
