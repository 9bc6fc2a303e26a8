package usb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mulabs/usbcc/internal/usb"
)

func TestUSBVersion_String(t *testing.T) {
	tests := []struct {
		name     string
		version  usb.USBVersion
		expected string
	}{
		{name: "USB 1.1", version: usb.USBVersion11, expected: "1.1"},
		{name: "USB 2.0", version: usb.USBVersion20, expected: "2.0"},
		{name: "USB 3.0", version: usb.USBVersion30, expected: "3.0"},
		{name: "USB 2.1 has no named constant", version: 0x0210, expected: "unknown"},
		{name: "zero", version: 0, expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.version.String())
		})
	}
}

func TestBCD_String(t *testing.T) {
	tests := []struct {
		name     string
		value    usb.BCD
		expected string
	}{
		{name: "version 1.0", value: 0x0100, expected: "1.0"},
		{name: "version 2.16", value: 0x0210, expected: "2.16"},
		{name: "high byte is major", value: 0xff01, expected: "255.1"},
		{name: "zero", value: 0x0000, expected: "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestClass_String(t *testing.T) {
	assert.Equal(t, "per-interface", usb.ClassPerInterface.String())
	assert.Equal(t, "hub", usb.ClassHub.String())
	assert.Equal(t, "vendor-specific", usb.ClassVendorSpec.String())
	assert.Equal(t, "class 0x42", usb.Class(0x42).String())
}
