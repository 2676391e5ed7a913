package utils

import (
	"reflect"
	"testing"
)

func TestFilterPorts(t *testing.T) {
	in := []string{"/dev/tty.usbserial-1", "/dev/cu.usbserial-1", "COM3", "/dev/ttyUSB0"}
	got := FilterPorts(in)
	expected := []string{"/dev/cu.usbserial-1", "/dev/ttyUSB0", "COM3"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("FilterPorts = %v, expected %v", got, expected)
	}
}

func TestPreferredPort(t *testing.T) {
	tests := []struct {
		name     string
		ports    []string
		expected string
	}{
		{"empty", nil, ""},
		{"first when no usb", []string{"COM1", "COM2"}, "COM1"},
		{"usb adapter", []string{"/dev/ttyS0", "/dev/ttyUSB0"}, "/dev/ttyUSB0"},
		{"mac modem", []string{"/dev/cu.Bluetooth", "/dev/cu.usbmodem1101"}, "/dev/cu.usbmodem1101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreferredPort(tt.ports); got != tt.expected {
				t.Errorf("PreferredPort(%v) = %q, expected %q", tt.ports, got, tt.expected)
			}
		})
	}
}

func TestSerialPortInfoLabel(t *testing.T) {
	if got := (SerialPortInfo{Name: "COM4"}).Label(); got != "COM4" {
		t.Errorf("unexpected label %q", got)
	}
	if got := (SerialPortInfo{Name: "COM4", Description: "CP2102"}).Label(); got != "COM4 (CP2102)" {
		t.Errorf("unexpected label %q", got)
	}
}
