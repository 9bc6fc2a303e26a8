// Package transport defines the low-level USB host-control capability that
// the ownership layer in internal/usb is built on. The interface mirrors the
// native API surface: opaque handles, manual reference counts and C-style
// integer statuses. Status interpretation belongs to the caller.
package transport

//go:generate mockgen -source=transport.go -destination=mocks/transport_mock.go -package=mocks

// RawDevice is an opaque reference to one physical device known to the host.
// It stays valid as long as the transport's reference count on it is held.
type RawDevice any

// RawHandle is an opaque open session on a RawDevice.
type RawHandle any

// Control-transfer bmRequestType bits. Send/receive in this layer always use
// vendor-specific requests addressed to the device itself.
const (
	RequestTypeVendor uint8 = 0x40
	RecipientDevice   uint8 = 0x00
	EndpointOut       uint8 = 0x00
	EndpointIn        uint8 = 0x80
)

// DeviceDescriptor is the fixed-size metadata record of one device, as
// reported by the transport.
type DeviceDescriptor struct {
	USBVersion        uint16
	DeviceClass       uint8
	DeviceSubClass    uint8
	DeviceProtocol    uint8
	MaxPacketSize0    uint8
	VendorID          uint16
	ProductID         uint16
	ReleaseVersion    uint16
	ManufacturerIndex uint8
	ProductIndex      uint8
	SerialNumberIndex uint8
	NumConfigurations uint8
}

// Transport is the raw USB host-control API.
// This interface allows for mocking in tests.
type Transport interface {
	// Init sets up the transport's global context.
	// A negative return is a status code.
	Init() int

	// Exit tears down the global context.
	Exit()

	// DeviceList returns a snapshot of all attached devices together with
	// the device count. A negative count is a status code; the snapshot
	// must be released with FreeDeviceList.
	DeviceList() ([]RawDevice, int)

	// FreeDeviceList releases a snapshot obtained from DeviceList,
	// dropping the list's own reference on each entry.
	FreeDeviceList(list []RawDevice)

	// RefDevice increments the reference count of a device.
	RefDevice(dev RawDevice)

	// UnrefDevice decrements the reference count of a device.
	UnrefDevice(dev RawDevice)

	// Parent returns the hub the device is attached to, or nil for a root
	// device. Only valid between a DeviceList and its FreeDeviceList.
	Parent(dev RawDevice) RawDevice

	// BusNumber returns the number of the bus the device is attached to.
	BusNumber(dev RawDevice) uint8

	// PortNumber returns the port the device is attached to.
	PortNumber(dev RawDevice) uint8

	// Open opens a session on the device.
	// A negative return is a status code.
	Open(dev RawDevice) (RawHandle, int)

	// Close closes a session previously returned by Open.
	Close(h RawHandle)

	// GetDeviceDescriptor fetches the device's descriptor record.
	// A negative return is a status code.
	GetDeviceDescriptor(dev RawDevice) (DeviceDescriptor, int)

	// GetStringDescriptorASCII copies the string descriptor with the given
	// index into buf and returns the number of bytes written.
	// A negative return is a status code.
	GetStringDescriptorASCII(h RawHandle, index uint8, buf []byte) int

	// ControlTransfer performs a synchronous control transfer and returns
	// the number of bytes transferred. A negative return is a status code.
	// timeoutMS of 0 means no timeout.
	ControlTransfer(h RawHandle, requestType, request uint8, value, index uint16, data []byte, timeoutMS uint) int

	// StrError returns the transport's own short description of a status
	// code.
	StrError(status int) string
}
