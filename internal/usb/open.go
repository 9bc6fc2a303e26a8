package usb

import (
	"fmt"
	"sync"
	"time"

	"github.com/mulabs/usbcc/internal/transport"
)

const (
	// receiveBufferSize is the staging capacity for inbound control
	// transfers; a control transfer's data stage carries at most 64 bytes.
	receiveBufferSize = 64

	// stringBufferSize is the staging capacity for string descriptors.
	stringBufferSize = 256
)

// ControlTransfer describes one vendor-specific control request. The request
// type and recipient bits are fixed per direction and are not configurable
// at this layer.
type ControlTransfer struct {
	Request uint8
	Value   uint16
	Index   uint16
}

// OpenDevice is an open session on a Device. It owns the native session
// handle exclusively plus its own reference on the identity it was opened
// from. A single OpenDevice must not be shared across threads.
type OpenDevice struct {
	t        transport.Transport
	identity *Device
	handle   transport.RawHandle

	mu     sync.Mutex
	closed bool
}

// Identity returns the device identity this session was opened from. The
// returned Device stays owned by the OpenDevice; callers needing it past
// Close should Clone it.
func (o *OpenDevice) Identity() *Device {
	return o.identity
}

// Send issues an outbound control transfer carrying buf. The buffer is
// transmitted as-is and never mutated. A timeout of 0 means no timeout.
func (o *OpenDevice) Send(ct ControlTransfer, timeout time.Duration, buf []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrDeviceClosed
	}

	requestType := transport.RequestTypeVendor | transport.RecipientDevice | transport.EndpointOut
	n := o.t.ControlTransfer(o.handle, requestType, ct.Request, ct.Value, ct.Index, buf, uint(timeout.Milliseconds()))
	if IsFailure(n) {
		return newStatusError(o.t, n)
	}
	return nil
}

// Receive issues an inbound control transfer and returns the bytes the
// device sent, truncated to the transferred length. A timeout of 0 means no
// timeout.
func (o *OpenDevice) Receive(ct ControlTransfer, timeout time.Duration) ([]byte, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil, ErrDeviceClosed
	}

	buf := make([]byte, receiveBufferSize)
	requestType := transport.RequestTypeVendor | transport.RecipientDevice | transport.EndpointIn
	n := o.t.ControlTransfer(o.handle, requestType, ct.Request, ct.Value, ct.Index, buf, uint(timeout.Milliseconds()))
	if IsFailure(n) {
		return nil, newStatusError(o.t, n)
	}
	if n < 0 {
		n = 0
	}
	if n > len(buf) {
		n = len(buf)
	}
	return buf[:n], nil
}

// Manufacturer returns the device's manufacturer string.
func (o *OpenDevice) Manufacturer() (string, error) {
	return o.descriptorString(func(d Descriptor) uint8 { return d.manufacturerIndex })
}

// Product returns the device's product string.
func (o *OpenDevice) Product() (string, error) {
	return o.descriptorString(func(d Descriptor) uint8 { return d.productIndex })
}

// SerialNumber returns the device's serial-number string.
func (o *OpenDevice) SerialNumber() (string, error) {
	return o.descriptorString(func(d Descriptor) uint8 { return d.serialNumberIndex })
}

// descriptorString resolves a string-descriptor index from the identity's
// metadata and fetches the string over this session.
func (o *OpenDevice) descriptorString(index func(Descriptor) uint8) (string, error) {
	desc, err := o.identity.Descriptor()
	if err != nil {
		return "", err
	}
	return o.getString(index(desc))
}

// getString fetches the ASCII string descriptor with the given index. Index
// zero means the device carries no such string and yields an empty string,
// not a failure. Longer strings are truncated by the transport call itself.
func (o *OpenDevice) getString(index uint8) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return "", ErrDeviceClosed
	}
	if index == 0 {
		return "", nil
	}

	buf := make([]byte, stringBufferSize)
	n := o.t.GetStringDescriptorASCII(o.handle, index, buf)
	if IsFailure(n) {
		return "", fmt.Errorf("failed to get string descriptor %d: %w", index, newStatusError(o.t, n))
	}
	if n < 0 {
		n = 0
	}
	if n > len(buf) {
		n = len(buf)
	}
	return string(buf[:n]), nil
}

// Close closes the native session and releases the session's reference on
// the identity. Only the first call reaches the transport.
func (o *OpenDevice) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true
	o.t.Close(o.handle)
	return o.identity.Close()
}
