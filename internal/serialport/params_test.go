package serialport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bug.st/serial"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name                                         string
		port, baud, dataBits, stopBits, parity, flow string
		wantErr                                      bool
	}{
		{"defaults", "COM1", "115200", "8", "1", "None", "None", false},
		{"odd 1.5", "/dev/ttyACM0", "9600", "5", "1.5", "Odd", "Software", false},
		{"no port", "", "9600", "8", "1", "None", "None", true},
		{"bad baud", "COM1", "fast", "8", "1", "None", "None", true},
		{"zero baud", "COM1", "0", "8", "1", "None", "None", true},
		{"data bits too small", "COM1", "9600", "4", "1", "None", "None", true},
		{"data bits too large", "COM1", "9600", "9", "1", "None", "None", true},
		{"bad stop bits", "COM1", "9600", "8", "3", "None", "None", true},
		{"bad parity", "COM1", "9600", "8", "1", "Weird", "None", true},
		{"bad flow", "COM1", "9600", "8", "1", "None", "Magic", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseParams(tt.port, tt.baud, tt.dataBits, tt.stopBits, tt.parity, tt.flow)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.port, p.Port)
		})
	}
}

func TestModeMapping(t *testing.T) {
	parities := map[string]serial.Parity{
		ParityNone:  serial.NoParity,
		ParityOdd:   serial.OddParity,
		ParityEven:  serial.EvenParity,
		ParityMark:  serial.MarkParity,
		ParitySpace: serial.SpaceParity,
	}
	for name, want := range parities {
		p := DefaultParams("COM1")
		p.Parity = name
		mode, err := p.Mode()
		require.NoError(t, err)
		assert.Equal(t, want, mode.Parity, name)
	}

	stops := map[string]serial.StopBits{
		StopBits1:   serial.OneStopBit,
		StopBits1_5: serial.OnePointFiveStopBits,
		StopBits2:   serial.TwoStopBits,
	}
	for name, want := range stops {
		p := DefaultParams("COM1")
		p.StopBits = name
		mode, err := p.Mode()
		require.NoError(t, err)
		assert.Equal(t, want, mode.StopBits, name)
	}

	mode, err := DefaultParams("COM1").Mode()
	require.NoError(t, err)
	assert.Equal(t, 115200, mode.BaudRate)
	assert.Equal(t, 8, mode.DataBits)
	assert.Nil(t, mode.InitialStatusBits)
}
