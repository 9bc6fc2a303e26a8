package usb

import (
	"fmt"

	"github.com/mulabs/usbcc/internal/transport"
)

// VendorID is a USB vendor identifier.
type VendorID uint16

// ProductID is a USB product identifier.
type ProductID uint16

// USBVersion is the bcdUSB field of a device descriptor.
type USBVersion uint16

// Known USB specification versions.
const (
	USBVersion11 USBVersion = 0x0110
	USBVersion20 USBVersion = 0x0200
	USBVersion30 USBVersion = 0x0300
)

// String formats the version. Only the named versions have a human-readable
// form; everything else is "unknown".
func (v USBVersion) String() string {
	switch v {
	case USBVersion11:
		return "1.1"
	case USBVersion20:
		return "2.0"
	case USBVersion30:
		return "3.0"
	default:
		return "unknown"
	}
}

// BCD is a binary-coded-decimal version field such as bcdDevice.
type BCD uint16

// Major returns the high byte of the version.
func (b BCD) Major() uint8 { return uint8(b >> 8) }

// Minor returns the low byte of the version.
func (b BCD) Minor() uint8 { return uint8(b) }

// String formats the version as "<major>.<minor>".
func (b BCD) String() string {
	return fmt.Sprintf("%d.%d", b.Major(), b.Minor())
}

// Class is the bDeviceClass field of a device descriptor.
type Class uint8

const (
	ClassPerInterface Class = 0x00
	ClassAudio        Class = 0x01
	ClassComm         Class = 0x02
	ClassHID          Class = 0x03
	ClassPTP          Class = 0x06
	ClassPrinter      Class = 0x07
	ClassMassStorage  Class = 0x08
	ClassHub          Class = 0x09
	ClassData         Class = 0x0a
	ClassWireless     Class = 0xe0
	ClassApplication  Class = 0xfe
	ClassVendorSpec   Class = 0xff
)

var classDescription = map[Class]string{
	ClassPerInterface: "per-interface",
	ClassAudio:        "audio",
	ClassComm:         "communications",
	ClassHID:          "human interface device",
	ClassPrinter:      "printer",
	ClassPTP:          "picture transfer protocol",
	ClassMassStorage:  "mass storage",
	ClassHub:          "hub",
	ClassData:         "data",
	ClassWireless:     "wireless",
	ClassApplication:  "application",
	ClassVendorSpec:   "vendor-specific",
}

func (c Class) String() string {
	if s, ok := classDescription[c]; ok {
		return s
	}
	return fmt.Sprintf("class 0x%02x", uint8(c))
}

// Descriptor is the fixed-size metadata record of one device. It is fetched
// lazily by Device.Descriptor and immutable once cached.
type Descriptor struct {
	USBVersion        USBVersion
	Class             Class
	SubClass          uint8
	Protocol          uint8
	MaxPacketSize0    uint8
	VendorID          VendorID
	ProductID         ProductID
	ReleaseVersion    BCD
	NumConfigurations uint8

	// String-descriptor indices, resolved through an open session.
	manufacturerIndex uint8
	productIndex      uint8
	serialNumberIndex uint8
}

func newDescriptor(raw transport.DeviceDescriptor) Descriptor {
	return Descriptor{
		USBVersion:        USBVersion(raw.USBVersion),
		Class:             Class(raw.DeviceClass),
		SubClass:          raw.DeviceSubClass,
		Protocol:          raw.DeviceProtocol,
		MaxPacketSize0:    raw.MaxPacketSize0,
		VendorID:          VendorID(raw.VendorID),
		ProductID:         ProductID(raw.ProductID),
		ReleaseVersion:    BCD(raw.ReleaseVersion),
		NumConfigurations: raw.NumConfigurations,
		manufacturerIndex: raw.ManufacturerIndex,
		productIndex:      raw.ProductIndex,
		serialNumberIndex: raw.SerialNumberIndex,
	}
}
