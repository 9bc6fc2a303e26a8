package usb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulabs/usbcc/internal/transport"
	"github.com/mulabs/usbcc/internal/usb"
)

func TestIsFailure_RecognizedCodes(t *testing.T) {
	recognized := []int{
		transport.StatusErrorIO,
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
		transport.StatusErrorOther,
	}

	for _, code := range recognized {
		assert.True(t, usb.IsFailure(code), "code %d should classify as failure", code)
	}
}

// Only the recognized set classifies as failure. Unknown codes, including
// unknown negative ones, deliberately fall through to success instead of
// aborting the caller.
func TestIsFailure_PermissiveDefault(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "zero is success", status: 0},
		{name: "positive count is success", status: 5},
		{name: "large positive value is success", status: 1000},
		{name: "unrecognized negative code is success", status: -13},
		{name: "unrecognized large negative code is success", status: -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, usb.IsFailure(tt.status))
		})
	}
}

func TestStatusError_Error(t *testing.T) {
	ft := &fakeTransport{}
	ft.listStatus = transport.StatusErrorNoDevice

	bus, err := usb.Open(usb.WithTransport(ft))
	require.NoError(t, err)
	defer func() { _ = bus.Close() }()

	_, err = bus.Devices()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such device")
	assert.Contains(t, err.Error(), "status -4")
}
