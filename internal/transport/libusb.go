//go:build cgo && (linux || darwin || freebsd)

package transport

// #cgo pkg-config: libusb-1.0
// #include <libusb-1.0/libusb.h>
import "C"

import (
	"unsafe"
)

// libusbTransport implements Transport on top of the system libusb-1.0.
type libusbTransport struct {
	ctx *C.libusb_context
}

// Verify libusbTransport implements Transport interface.
var _ Transport = (*libusbTransport)(nil)

// Default returns the libusb-backed transport.
func Default() Transport {
	return &libusbTransport{}
}

func (t *libusbTransport) Init() int {
	return int(C.libusb_init(&t.ctx))
}

func (t *libusbTransport) Exit() {
	C.libusb_exit(t.ctx)
	t.ctx = nil
}

func (t *libusbTransport) DeviceList() ([]RawDevice, int) {
	var list **C.libusb_device
	n := C.libusb_get_device_list(t.ctx, &list)
	if n < 0 {
		return nil, int(n)
	}

	devs := make([]RawDevice, int(n))
	for i, dev := range unsafe.Slice(list, int(n)) {
		devs[i] = dev
	}

	// Drop the native array but keep the references it held; the snapshot's
	// references are released one by one in FreeDeviceList.
	C.libusb_free_device_list(list, 0)
	return devs, int(n)
}

func (t *libusbTransport) FreeDeviceList(list []RawDevice) {
	for _, dev := range list {
		t.UnrefDevice(dev)
	}
}

func (t *libusbTransport) RefDevice(dev RawDevice) {
	C.libusb_ref_device(dev.(*C.libusb_device))
}

func (t *libusbTransport) UnrefDevice(dev RawDevice) {
	C.libusb_unref_device(dev.(*C.libusb_device))
}

func (t *libusbTransport) Parent(dev RawDevice) RawDevice {
	parent := C.libusb_get_parent(dev.(*C.libusb_device))
	if parent == nil {
		return nil
	}
	return parent
}

func (t *libusbTransport) BusNumber(dev RawDevice) uint8 {
	return uint8(C.libusb_get_bus_number(dev.(*C.libusb_device)))
}

func (t *libusbTransport) PortNumber(dev RawDevice) uint8 {
	return uint8(C.libusb_get_port_number(dev.(*C.libusb_device)))
}

func (t *libusbTransport) Open(dev RawDevice) (RawHandle, int) {
	var handle *C.libusb_device_handle
	status := C.libusb_open(dev.(*C.libusb_device), &handle)
	if status < 0 {
		return nil, int(status)
	}
	return handle, int(status)
}

func (t *libusbTransport) Close(h RawHandle) {
	C.libusb_close(h.(*C.libusb_device_handle))
}

func (t *libusbTransport) GetDeviceDescriptor(dev RawDevice) (DeviceDescriptor, int) {
	var desc C.struct_libusb_device_descriptor
	status := C.libusb_get_device_descriptor(dev.(*C.libusb_device), &desc)
	if status < 0 {
		return DeviceDescriptor{}, int(status)
	}
	return DeviceDescriptor{
		USBVersion:        uint16(desc.bcdUSB),
		DeviceClass:       uint8(desc.bDeviceClass),
		DeviceSubClass:    uint8(desc.bDeviceSubClass),
		DeviceProtocol:    uint8(desc.bDeviceProtocol),
		MaxPacketSize0:    uint8(desc.bMaxPacketSize0),
		VendorID:          uint16(desc.idVendor),
		ProductID:         uint16(desc.idProduct),
		ReleaseVersion:    uint16(desc.bcdDevice),
		ManufacturerIndex: uint8(desc.iManufacturer),
		ProductIndex:      uint8(desc.iProduct),
		SerialNumberIndex: uint8(desc.iSerialNumber),
		NumConfigurations: uint8(desc.bNumConfigurations),
	}, int(status)
}

func (t *libusbTransport) GetStringDescriptorASCII(h RawHandle, index uint8, buf []byte) int {
	return int(C.libusb_get_string_descriptor_ascii(
		h.(*C.libusb_device_handle),
		C.uint8_t(index),
		(*C.uchar)(unsafe.Pointer(&buf[0])),
		C.int(len(buf)),
	))
}

func (t *libusbTransport) ControlTransfer(h RawHandle, requestType, request uint8, value, index uint16, data []byte, timeoutMS uint) int {
	var ptr *C.uchar
	if len(data) > 0 {
		ptr = (*C.uchar)(unsafe.Pointer(&data[0]))
	}
	return int(C.libusb_control_transfer(
		h.(*C.libusb_device_handle),
		C.uint8_t(requestType),
		C.uint8_t(request),
		C.uint16_t(value),
		C.uint16_t(index),
		ptr,
		C.uint16_t(len(data)),
		C.uint(timeoutMS),
	))
}

func (t *libusbTransport) StrError(status int) string {
	return C.GoString(C.libusb_strerror(C.int(status)))
}
