package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mulabs/usbcc/internal/transport"
	"github.com/mulabs/usbcc/internal/transport/mocks"
	"github.com/mulabs/usbcc/internal/usb"
)

func TestListDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	raw := transport.RawDevice("dev0")

	mockTransport := mocks.NewMockTransport(ctrl)
	mockTransport.EXPECT().Init().Return(0)
	mockTransport.EXPECT().DeviceList().Return([]transport.RawDevice{raw}, 1)
	mockTransport.EXPECT().RefDevice(raw)
	mockTransport.EXPECT().FreeDeviceList([]transport.RawDevice{raw})
	mockTransport.EXPECT().GetDeviceDescriptor(raw).Return(transport.DeviceDescriptor{
		USBVersion:     0x0200,
		VendorID:       0x16c0,
		ProductID:      0x05dc,
		ReleaseVersion: 0x0104,
		DeviceClass:    0xff,
	}, 0)
	mockTransport.EXPECT().BusNumber(raw).Return(uint8(3)).AnyTimes()
	mockTransport.EXPECT().PortNumber(raw).Return(uint8(1)).AnyTimes()
	mockTransport.EXPECT().UnrefDevice(raw)
	mockTransport.EXPECT().Exit()

	bus, err := usb.Open(usb.WithTransport(mockTransport))
	require.NoError(t, err)
	defer func() { _ = bus.Close() }()

	var out bytes.Buffer
	err = listDevices(bus, &out, false)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Bus 003 Port 001 ID 16c0:05dc")
	assert.Contains(t, out.String(), "USB 2.0")
	assert.Contains(t, out.String(), "rel 1.4")
	assert.Contains(t, out.String(), "vendor-specific")
}

func TestListDevices_EnumerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransport := mocks.NewMockTransport(ctrl)
	mockTransport.EXPECT().Init().Return(0)
	mockTransport.EXPECT().DeviceList().Return(nil, transport.StatusErrorAccess)
	mockTransport.EXPECT().StrError(transport.StatusErrorAccess).Return("access denied")
	mockTransport.EXPECT().Exit()

	bus, err := usb.Open(usb.WithTransport(mockTransport))
	require.NoError(t, err)
	defer func() { _ = bus.Close() }()

	var out bytes.Buffer
	err = listDevices(bus, &out, false)
	require.Error(t, err)
	assert.Empty(t, out.String())
}
