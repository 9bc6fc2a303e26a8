// Package usb is a safe ownership layer over the raw host-control API in
// internal/transport. It turns manually reference-counted handles and
// C-style status codes into Go values with close-once lifecycles and typed
// errors.
//
// The model is single-threaded and blocking: every call blocks until the
// underlying I/O completes or times out. Independent sessions may run on
// separate goroutines, one session per goroutine.
package usb

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mulabs/usbcc/internal/transport"
)

// Bus owns the transport's global context for its entire lifetime and is the
// factory for device identities. Every Device and OpenDevice obtained from a
// Bus must be closed before the Bus itself; the transport does not enforce
// this ordering, so the caller must.
type Bus struct {
	t transport.Transport

	mu     sync.Mutex
	closed bool
}

// Option is a functional option for configuring a Bus.
type Option func(*Bus)

// WithTransport sets a custom transport, for testing.
func WithTransport(t transport.Transport) Option {
	return func(b *Bus) {
		b.t = t
	}
}

// Open initializes the transport's global context and returns the Bus that
// owns it.
func Open(opts ...Option) (*Bus, error) {
	b := &Bus{t: transport.Default()}
	for _, opt := range opts {
		opt(b)
	}

	if status := b.t.Init(); IsFailure(status) {
		return nil, fmt.Errorf("failed to create usb session: %w", newStatusError(b.t, status))
	}

	log.Debug().Msg("usb session created")
	return b, nil
}

// Devices enumerates all currently attached devices and returns one owned,
// reference-counted identity per entry. The enumeration snapshot itself is
// released before returning; the identities outlive it.
func (b *Bus) Devices() ([]*Device, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	list, err := acquireList(b.t)
	if err != nil {
		return nil, fmt.Errorf("failed to get device list: %w", err)
	}
	defer list.release()

	devices := make([]*Device, 0, len(list.raws))
	for _, raw := range list.raws {
		devices = append(devices, newDevice(b.t, raw))
	}

	log.Debug().Int("count", len(devices)).Msg("enumerated usb devices")
	return devices, nil
}

// Close tears down the transport's global context. Only the first call
// reaches the transport. No Device or OpenDevice derived from this Bus may
// be used afterwards.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.t.Exit()

	log.Debug().Msg("usb session closed")
	return nil
}
