//go:build !cgo || !(linux || darwin || freebsd)

package transport

// unsupportedTransport stands in for the libusb backend on platforms where
// it is not built. Init fails with a status code; nothing else can be
// reached through the ownership layer after a failed Init.
type unsupportedTransport struct{}

// Verify unsupportedTransport implements Transport interface.
var _ Transport = unsupportedTransport{}

// Default returns a transport whose Init always fails on this platform.
func Default() Transport {
	return unsupportedTransport{}
}

func (unsupportedTransport) Init() int { return StatusErrorNotSupported }

func (unsupportedTransport) Exit() {}

func (unsupportedTransport) DeviceList() ([]RawDevice, int) {
	return nil, StatusErrorNotSupported
}

func (unsupportedTransport) FreeDeviceList(list []RawDevice) {}

func (unsupportedTransport) RefDevice(dev RawDevice) {}

func (unsupportedTransport) UnrefDevice(dev RawDevice) {}

func (unsupportedTransport) Parent(dev RawDevice) RawDevice { return nil }

func (unsupportedTransport) BusNumber(dev RawDevice) uint8 { return 0 }

func (unsupportedTransport) PortNumber(dev RawDevice) uint8 { return 0 }

func (unsupportedTransport) Open(dev RawDevice) (RawHandle, int) {
	return nil, StatusErrorNotSupported
}

func (unsupportedTransport) Close(h RawHandle) {}

func (unsupportedTransport) GetDeviceDescriptor(dev RawDevice) (DeviceDescriptor, int) {
	return DeviceDescriptor{}, StatusErrorNotSupported
}

func (unsupportedTransport) GetStringDescriptorASCII(h RawHandle, index uint8, buf []byte) int {
	return StatusErrorNotSupported
}

func (unsupportedTransport) ControlTransfer(h RawHandle, requestType, request uint8, value, index uint16, data []byte, timeoutMS uint) int {
	return StatusErrorNotSupported
}

func (unsupportedTransport) StrError(status int) string {
	return StatusText(status)
}
