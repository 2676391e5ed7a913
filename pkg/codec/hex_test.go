package codec

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"
)

func TestBytesToHex(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"empty", nil, ""},
		{"single byte", []byte{0x0A}, "0A"},
		{"min and max", []byte{0x00, 0xFF}, "00 FF"},
		{"uppercase digits", []byte{0xab, 0xcd, 0xef}, "AB CD EF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BytesToHex(tt.input); got != tt.expected {
				t.Errorf("BytesToHex(%v) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHexToBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"plain tokens", "FF 00 0A", []byte{0xFF, 0x00, 0x0A}},
		{"invalid token dropped", "GG 1", []byte{0x01}},
		{"lowercase", "ab cd", []byte{0xAB, 0xCD}},
		{"mixed whitespace", " 01\t02\n\n03  ", []byte{0x01, 0x02, 0x03}},
		{"0x prefix", "0x10 0XfF", []byte{0x10, 0xFF}},
		{"out of range dropped", "100 7F", []byte{0x7F}},
		{"signs dropped", "-1 +2 03", []byte{0x03}},
		{"empty", "", []byte{}},
		{"only garbage", "zz yy", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HexToBytes(tt.input)
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("HexToBytes(%q) = %X, expected %X", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOf(rapid.Byte()).Draw(t, "data")
		back := HexToBytes(BytesToHex(data))
		if !bytes.Equal(back, data) {
			t.Fatalf("round trip mismatch: %X -> %q -> %X", data, BytesToHex(data), back)
		}
	})
}

func TestBytesToHexShape(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 1, 256).Draw(t, "data")
		s := BytesToHex(data)
		if len(s) != len(data)*3-1 {
			t.Fatalf("expected length %d, got %d (%q)", len(data)*3-1, len(s), s)
		}
		for i := 2; i < len(s); i += 3 {
			if s[i] != ' ' {
				t.Fatalf("expected separator at %d in %q", i, s)
			}
		}
	})
}
