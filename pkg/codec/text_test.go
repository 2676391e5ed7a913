package codec

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"
)

func TestEncodeDecodeUTF8(t *testing.T) {
	text := "温度: 25℃ ✓ naïve"
	encoded := Encode(text, "UTF-8")
	if !bytes.Equal(encoded, []byte(text)) {
		t.Errorf("UTF-8 encode changed bytes: %X", encoded)
	}
	if got := Decode(encoded, "UTF-8"); got != text {
		t.Errorf("Decode = %q, expected %q", got, text)
	}
}

func TestUTF8RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		if got := Decode(Encode(text, "UTF-8"), "UTF-8"); got != text {
			t.Fatalf("round trip mismatch: %q -> %q", text, got)
		}
	})
}

func TestKnownEncodings(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		text     string
		expected []byte
	}{
		{"gbk", "GBK", "你好", []byte{0xC4, 0xE3, 0xBA, 0xC3}},
		{"gb2312 shares gbk", "GB2312", "你好", []byte{0xC4, 0xE3, 0xBA, 0xC3}},
		{"utf-16le", "UTF-16LE", "AB", []byte{0x41, 0x00, 0x42, 0x00}},
		{"utf-16be", "UTF-16BE", "AB", []byte{0x00, 0x41, 0x00, 0x42}},
		{"utf-16 writes bom", "UTF-16", "A", []byte{0xFE, 0xFF, 0x00, 0x41}},
		{"latin-1", "Latin-1", "é", []byte{0xE9}},
		{"ascii", "ASCII", "OK", []byte("OK")},
		{"case insensitive", "utf-16le", "A", []byte{0x41, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.text, tt.encoding)
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("Encode(%q, %s) = %X, expected %X", tt.text, tt.encoding, got, tt.expected)
			}
			if back := Decode(got, tt.encoding); back != tt.text {
				t.Errorf("Decode(%X, %s) = %q, expected %q", got, tt.encoding, back, tt.text)
			}
		})
	}
}

func TestASCIIReplacement(t *testing.T) {
	if got := Encode("a→b", "ASCII"); !bytes.Equal(got, []byte("a?b")) {
		t.Errorf("expected a?b, got %q", got)
	}
	if got := Decode([]byte{'a', 0xFF, 'b'}, "ASCII"); got != "a�b" {
		t.Errorf("expected replacement char, got %q", got)
	}
}

func TestUnknownEncodingFallsBackToUTF8(t *testing.T) {
	text := "串口 test"
	if got := Encode(text, "no-such-encoding"); !bytes.Equal(got, []byte(text)) {
		t.Errorf("expected UTF-8 bytes, got %X", got)
	}
	if got := Decode([]byte(text), ""); got != text {
		t.Errorf("expected %q, got %q", text, got)
	}
	if _, ok := Lookup("no-such-encoding"); ok {
		t.Error("expected lookup of unknown name to report false")
	}
}

func TestInvalidUTF8DecodesToReplacement(t *testing.T) {
	if got := Decode([]byte{'o', 0xC3, 'k'}, "UTF-8"); got != "o�k" {
		t.Errorf("expected replacement char, got %q", got)
	}
}

func TestEncodingsOrder(t *testing.T) {
	names := Encodings()
	for i, name := range commonEncodings {
		if names[i] != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, names[i])
		}
	}
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate encoding %s", name)
		}
		seen[name] = true
		if _, ok := Lookup(name); !ok {
			t.Errorf("listed encoding %s does not resolve", name)
		}
	}
	rest := names[len(commonEncodings):]
	for i := 1; i < len(rest); i++ {
		if rest[i-1] > rest[i] {
			t.Errorf("remaining encodings not sorted: %s before %s", rest[i-1], rest[i])
		}
	}
}
