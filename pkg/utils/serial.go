package utils

import (
	"sort"
	"strings"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// SerialPortInfo 串口信息
type SerialPortInfo struct {
	Name        string
	Description string
	IsUSB       bool
	VID         string
	PID         string
}

// Label 下拉框中显示的名称
func (p SerialPortInfo) Label() string {
	if p.Description == "" {
		return p.Name
	}
	return p.Name + " (" + p.Description + ")"
}

// GetAvailableSerialPorts 获取可用的串口列表（含USB信息）
func GetAvailableSerialPorts() ([]SerialPortInfo, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	var result []SerialPortInfo
	for _, port := range ports {
		info := SerialPortInfo{
			Name:        port.Name,
			Description: port.Product,
			IsUSB:       port.IsUSB,
			VID:         port.VID,
			PID:         port.PID,
		}
		result = append(result, info)
	}

	return result, nil
}

// GetSimpleSerialPorts 获取过滤后的串口名称列表
func GetSimpleSerialPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, err
	}
	return FilterPorts(ports), nil
}

// FilterPorts drops macOS /dev/tty.* call-in devices, which duplicate the
// /dev/cu.* entries, and sorts the rest.
func FilterPorts(ports []string) []string {
	filtered := make([]string, 0, len(ports))
	for _, port := range ports {
		if strings.HasPrefix(port, "/dev/tty.") {
			continue
		}
		filtered = append(filtered, port)
	}
	sort.Strings(filtered)
	return filtered
}

// ListPorts returns filtered port names, using the detailed enumerator when
// it works and the plain list otherwise. describe is called for each detailed
// entry and may be nil.
func ListPorts(describe func(SerialPortInfo)) ([]string, error) {
	detailed, err := GetAvailableSerialPorts()
	if err != nil {
		return GetSimpleSerialPorts()
	}
	names := make([]string, 0, len(detailed))
	for _, p := range detailed {
		if describe != nil {
			describe(p)
		}
		names = append(names, p.Name)
	}
	return FilterPorts(names), nil
}

// PreferredPort 优先选择USB串口作为默认值
func PreferredPort(ports []string) string {
	if len(ports) == 0 {
		return ""
	}
	for _, port := range ports {
		if strings.Contains(port, "usbmodem") || strings.Contains(port, "usbserial") ||
			strings.Contains(port, "ttyUSB") || strings.Contains(port, "ttyACM") {
			return port
		}
	}
	return ports[0]
}
