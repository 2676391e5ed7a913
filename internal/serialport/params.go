package serialport

import (
	"fmt"
	"strconv"

	"go.bug.st/serial"
)

// Parity 校验位名称
const (
	ParityNone  = "None"
	ParityOdd   = "Odd"
	ParityEven  = "Even"
	ParityMark  = "Mark"
	ParitySpace = "Space"
)

// StopBits 停止位名称
const (
	StopBits1   = "1"
	StopBits1_5 = "1.5"
	StopBits2   = "2"
)

// FlowControl 流控制名称
const (
	FlowNone     = "None"
	FlowHardware = "Hardware"
	FlowSoftware = "Software"
)

// 界面下拉框选项
var (
	BaudRates    = []string{"9600", "19200", "38400", "57600", "115200", "230400", "460800", "921600"}
	DataBitsList = []string{"5", "6", "7", "8"}
	StopBitsList = []string{StopBits1, StopBits1_5, StopBits2}
	ParityList   = []string{ParityNone, ParityOdd, ParityEven, ParityMark, ParitySpace}
	FlowList     = []string{FlowNone, FlowHardware, FlowSoftware}
)

// Params 串口线路参数
type Params struct {
	Port        string
	BaudRate    int
	DataBits    int
	StopBits    string
	Parity      string
	FlowControl string
}

// DefaultParams 返回默认参数 115200 8N1
func DefaultParams(port string) Params {
	return Params{
		Port:        port,
		BaudRate:    115200,
		DataBits:    8,
		StopBits:    StopBits1,
		Parity:      ParityNone,
		FlowControl: FlowNone,
	}
}

// ParseParams builds Params from the strings shown in the UI selects.
func ParseParams(port, baud, dataBits, stopBits, parity, flow string) (Params, error) {
	if port == "" {
		return Params{}, fmt.Errorf("no serial port selected")
	}
	baudRate, err := strconv.Atoi(baud)
	if err != nil || baudRate <= 0 {
		return Params{}, fmt.Errorf("invalid baud rate: %q", baud)
	}
	bits, err := strconv.Atoi(dataBits)
	if err != nil || bits < 5 || bits > 8 {
		return Params{}, fmt.Errorf("invalid data bits: %q", dataBits)
	}
	p := Params{
		Port:        port,
		BaudRate:    baudRate,
		DataBits:    bits,
		StopBits:    stopBits,
		Parity:      parity,
		FlowControl: flow,
	}
	if _, err := p.Mode(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Mode 转换为 go.bug.st/serial 的模式
func (p Params) Mode() (*serial.Mode, error) {
	mode := &serial.Mode{
		BaudRate: p.BaudRate,
		DataBits: p.DataBits,
	}

	switch p.Parity {
	case ParityNone, "":
		mode.Parity = serial.NoParity
	case ParityOdd:
		mode.Parity = serial.OddParity
	case ParityEven:
		mode.Parity = serial.EvenParity
	case ParityMark:
		mode.Parity = serial.MarkParity
	case ParitySpace:
		mode.Parity = serial.SpaceParity
	default:
		return nil, fmt.Errorf("invalid parity: %q", p.Parity)
	}

	switch p.StopBits {
	case StopBits1, "":
		mode.StopBits = serial.OneStopBit
	case StopBits1_5:
		mode.StopBits = serial.OnePointFiveStopBits
	case StopBits2:
		mode.StopBits = serial.TwoStopBits
	default:
		return nil, fmt.Errorf("invalid stop bits: %q", p.StopBits)
	}

	switch p.FlowControl {
	case FlowNone, "", FlowSoftware:
	case FlowHardware:
		mode.InitialStatusBits = &serial.ModemOutputBits{RTS: true, DTR: true}
	default:
		return nil, fmt.Errorf("invalid flow control: %q", p.FlowControl)
	}

	return mode, nil
}

func (p Params) String() string {
	return fmt.Sprintf("%s %d %d-%s-%s flow=%s", p.Port, p.BaudRate, p.DataBits, p.Parity, p.StopBits, p.FlowControl)
}
