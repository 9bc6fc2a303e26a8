package usb_test

import (
	"github.com/mulabs/usbcc/internal/transport"
)

// fakeDevice is one physical device simulated by fakeTransport.
type fakeDevice struct {
	refs   int
	parent *fakeDevice
	bus    uint8
	port   uint8

	desc        transport.DeviceDescriptor
	descStatus  int // returned instead of the descriptor while non-zero
	descFetches int

	openStatus int
	strings    map[uint8]string
}

// fakeHandle is one open session on a fakeDevice.
type fakeHandle struct {
	dev    *fakeDevice
	closes int
}

// fakeTransport implements transport.Transport in memory and counts every
// lifecycle call so tests can assert exact ref/unref and open/close pairing.
type fakeTransport struct {
	devices []*fakeDevice

	initStatus int
	listStatus int // returned instead of the count while non-zero

	inits, exits   int
	lists, frees   int
	activeLists    int
	parentOutside  int // Parent calls made outside a list bracket
	handles        []*fakeHandle
	stringStatus   int
	controlResult  func(requestType, request uint8, data []byte) int
	controlPayload []byte // copied into inbound transfers
}

var _ transport.Transport = (*fakeTransport)(nil)

func (f *fakeTransport) Init() int {
	f.inits++
	return f.initStatus
}

func (f *fakeTransport) Exit() {
	f.exits++
}

func (f *fakeTransport) DeviceList() ([]transport.RawDevice, int) {
	f.lists++
	if f.listStatus != 0 {
		return nil, f.listStatus
	}
	f.activeLists++
	raws := make([]transport.RawDevice, len(f.devices))
	for i, dev := range f.devices {
		dev.refs++
		raws[i] = dev
	}
	return raws, len(raws)
}

func (f *fakeTransport) FreeDeviceList(list []transport.RawDevice) {
	f.frees++
	f.activeLists--
	for _, raw := range list {
		raw.(*fakeDevice).refs--
	}
}

func (f *fakeTransport) RefDevice(dev transport.RawDevice) {
	dev.(*fakeDevice).refs++
}

func (f *fakeTransport) UnrefDevice(dev transport.RawDevice) {
	dev.(*fakeDevice).refs--
}

func (f *fakeTransport) Parent(dev transport.RawDevice) transport.RawDevice {
	if f.activeLists == 0 {
		f.parentOutside++
	}
	parent := dev.(*fakeDevice).parent
	if parent == nil {
		return nil
	}
	return parent
}

func (f *fakeTransport) BusNumber(dev transport.RawDevice) uint8 {
	return dev.(*fakeDevice).bus
}

func (f *fakeTransport) PortNumber(dev transport.RawDevice) uint8 {
	return dev.(*fakeDevice).port
}

func (f *fakeTransport) Open(dev transport.RawDevice) (transport.RawHandle, int) {
	d := dev.(*fakeDevice)
	if d.openStatus != 0 {
		return nil, d.openStatus
	}
	h := &fakeHandle{dev: d}
	f.handles = append(f.handles, h)
	return h, 0
}

func (f *fakeTransport) Close(h transport.RawHandle) {
	h.(*fakeHandle).closes++
}

func (f *fakeTransport) GetDeviceDescriptor(dev transport.RawDevice) (transport.DeviceDescriptor, int) {
	d := dev.(*fakeDevice)
	d.descFetches++
	if d.descStatus != 0 {
		return transport.DeviceDescriptor{}, d.descStatus
	}
	return d.desc, 0
}

func (f *fakeTransport) GetStringDescriptorASCII(h transport.RawHandle, index uint8, buf []byte) int {
	if f.stringStatus != 0 {
		return f.stringStatus
	}
	s := h.(*fakeHandle).dev.strings[index]
	return copy(buf, s)
}

func (f *fakeTransport) ControlTransfer(h transport.RawHandle, requestType, request uint8, value, index uint16, data []byte, timeoutMS uint) int {
	if requestType&transport.EndpointIn != 0 {
		copy(data, f.controlPayload)
	}
	if f.controlResult != nil {
		return f.controlResult(requestType, request, data)
	}
	return len(data)
}

func (f *fakeTransport) StrError(status int) string {
	return transport.StatusText(status)
}
