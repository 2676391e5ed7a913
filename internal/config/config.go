package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileName 配置文件名，位于可执行文件同目录
const FileName = "serialtool.json"

// Config 应用配置结构
type Config struct {
	Serial           SerialConfig `json:"serial"`
	SendEncoding     string       `json:"send_encoding"`
	ReceiveEncoding  string       `json:"receive_encoding"`
	AutoSendInterval int          `json:"auto_send_interval"`
	LogLevel         string       `json:"log_level"`
	Language         string       `json:"language"`
	Window           WindowConfig `json:"window"`
}

// SerialConfig 串口默认参数（仅作为界面初始值，不回写）
type SerialConfig struct {
	Port        string `json:"port"`
	BaudRate    int    `json:"baud_rate"`
	DataBits    int    `json:"data_bits"`
	StopBits    string `json:"stop_bits"`
	Parity      string `json:"parity"`
	FlowControl string `json:"flow_control"`
}

// WindowConfig 窗口尺寸
type WindowConfig struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			BaudRate:    115200,
			DataBits:    8,
			StopBits:    "1",
			Parity:      "None",
			FlowControl: "None",
		},
		SendEncoding:     "UTF-8",
		ReceiveEncoding:  "UTF-8",
		AutoSendInterval: 1000,
		LogLevel:         "INFO",
		Language:         "auto",
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
	}
}

// Load 加载配置文件
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the file at path over the defaults, so fields missing from
// the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	err = json.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save 保存配置文件
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo 保存配置到指定路径
func (c *Config) SaveTo(path string) error {
	// 确保配置目录存在
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Path 获取配置文件路径
func Path() string {
	return ExeDirFile(FileName)
}

// ExeDirFile returns name joined to the executable's directory, or name
// itself when the executable path is unknown.
func ExeDirFile(name string) string {
	exePath, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exePath), name)
}
