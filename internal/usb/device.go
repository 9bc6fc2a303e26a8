package usb

import (
	"fmt"
	"sync"

	"github.com/mulabs/usbcc/internal/transport"
)

// Device is a reference-counted identity of one physical USB device,
// independent of whether a session on it is open. The transport owns the
// reference count; this type only guarantees that each Device holds exactly
// one reference from construction until Close.
//
// Two Devices may alias the same physical device (one from enumeration, one
// from a parent lookup). Thread safety of the underlying count is the
// transport's concern; a single transport context per thread is the safe
// default unless the transport documents otherwise.
type Device struct {
	t   transport.Transport
	raw transport.RawDevice

	mu     sync.Mutex
	desc   *Descriptor // lazily fetched, nil until first successful fetch
	closed bool
}

// newDevice wraps a raw device, taking a new reference on it.
func newDevice(t transport.Transport, raw transport.RawDevice) *Device {
	t.RefDevice(raw)
	return &Device{t: t, raw: raw}
}

// Clone returns a new Device aliasing the same physical device, holding its
// own reference. The descriptor cache is not shared; the clone fetches its
// own on first use.
func (d *Device) Clone() (*Device, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrDeviceClosed
	}
	return newDevice(d.t, d.raw), nil
}

// Close drops this Device's reference on the physical device. Only the first
// call reaches the transport.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	d.t.UnrefDevice(d.raw)
	return nil
}

// Descriptor returns the device's metadata record, fetching it from the
// transport on first use. A failed fetch leaves no cache entry, so a later
// call retries.
func (d *Device) Descriptor() (Descriptor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return Descriptor{}, ErrDeviceClosed
	}
	if d.desc != nil {
		return *d.desc, nil
	}

	raw, status := d.t.GetDeviceDescriptor(d.raw)
	if IsFailure(status) {
		return Descriptor{}, fmt.Errorf("failed to get device descriptor: %w", newStatusError(d.t, status))
	}

	desc := newDescriptor(raw)
	d.desc = &desc
	return desc, nil
}

// BusNumber returns the number of the bus the device is attached to. Read
// directly from the handle; no descriptor fetch involved.
func (d *Device) BusNumber() uint8 {
	return d.t.BusNumber(d.raw)
}

// PortNumber returns the port the device is attached to.
func (d *Device) PortNumber() uint8 {
	return d.t.PortNumber(d.raw)
}

// Parent returns the hub this device is attached to as a new Device holding
// its own reference. A root device has no parent and yields ErrNoParent.
//
// The transport only answers parent queries between a list acquire and its
// release, so a transient snapshot brackets the lookup.
func (d *Device) Parent() (*Device, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrDeviceClosed
	}

	list, err := acquireList(d.t)
	if err != nil {
		return nil, fmt.Errorf("failed to get device list: %w", err)
	}
	defer list.release()

	raw := d.t.Parent(d.raw)
	if raw == nil {
		return nil, ErrNoParent
	}
	return newDevice(d.t, raw), nil
}

// Open opens a session on the device. The returned OpenDevice holds its own
// reference on the identity, so closing either value does not invalidate the
// other.
func (d *Device) Open() (*OpenDevice, error) {
	identity, err := d.Clone()
	if err != nil {
		return nil, err
	}

	handle, status := d.t.Open(d.raw)
	if IsFailure(status) {
		_ = identity.Close()
		return nil, fmt.Errorf("failed to open device: %w", newStatusError(d.t, status))
	}

	return &OpenDevice{t: d.t, identity: identity, handle: handle}, nil
}
