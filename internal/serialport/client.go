package serialport

import (
	"errors"
	"fmt"
	"sync"

	"serialtool/internal/logger"

	"go.bug.st/serial"
)

// ErrNotOpen is returned by Write when the port is closed.
var ErrNotOpen = errors.New("serial port not open")

// Opener opens a serial device. serial.Open is the production opener.
type Opener func(name string, mode *serial.Mode) (serial.Port, error)

const readBufferSize = 4096

// Client 串口客户端
type Client struct {
	opener Opener

	mu     sync.Mutex
	port   serial.Port
	params Params
	done   chan struct{}

	// OnData receives a private copy of every chunk read from the port.
	// It runs on the read goroutine.
	OnData func(data []byte)
	// OnError is called once when a read fails on a port that was not closed by Close.
	OnError func(err error)
}

// NewClient 创建新的串口客户端
func NewClient() *Client {
	return NewClientWithOpener(serial.Open)
}

// NewClientWithOpener 使用自定义打开函数创建客户端
func NewClientWithOpener(opener Opener) *Client {
	return &Client{opener: opener}
}

// Open 按参数打开串口并启动读取协程
func (c *Client) Open(p Params) error {
	mode, err := p.Mode()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.port != nil {
		return fmt.Errorf("serial port %s already open", c.params.Port)
	}

	port, err := c.opener(p.Port, mode)
	if err != nil {
		logger.Error("Serial open failed:", err)
		return fmt.Errorf("failed to open %s: %w", p.Port, err)
	}
	if p.FlowControl == FlowSoftware {
		logger.Warn(fmt.Sprintf("Software flow control is not supported by the transport, opening %s without it", p.Port))
	}

	c.port = port
	c.params = p
	c.done = make(chan struct{})
	go c.readLoop(port, c.done)

	logger.Info(fmt.Sprintf("Serial port opened: %s", p))
	return nil
}

// Close 关闭串口并等待读取协程退出
func (c *Client) Close() error {
	c.mu.Lock()
	port, done := c.port, c.done
	c.port = nil
	c.mu.Unlock()

	if port == nil {
		return nil
	}
	err := port.Close()
	<-done
	if err != nil {
		logger.Error("Serial close failed:", err)
		return fmt.Errorf("failed to close serial port: %w", err)
	}
	logger.Info("Serial port closed")
	return nil
}

// IsOpen 检查串口是否已打开
func (c *Client) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.port != nil
}

// Params 返回最近一次打开时使用的参数
func (c *Client) Params() Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

// Write 写入数据，返回实际写入的字节数
func (c *Client) Write(data []byte) (int, error) {
	c.mu.Lock()
	port := c.port
	c.mu.Unlock()

	if port == nil {
		return 0, ErrNotOpen
	}
	n, err := port.Write(data)
	if err != nil {
		logger.Error("Serial write failed:", err)
		return n, fmt.Errorf("failed to write serial port: %w", err)
	}
	logger.Debug(fmt.Sprintf("TX %d bytes: %X", n, data[:n]))
	return n, nil
}

func (c *Client) readLoop(port serial.Port, done chan struct{}) {
	defer close(done)

	buf := make([]byte, readBufferSize)
	for {
		n, err := port.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			logger.Debug(fmt.Sprintf("RX %d bytes: %X", n, chunk))
			if c.OnData != nil {
				c.OnData(chunk)
			}
		}
		if err == nil {
			continue
		}

		c.mu.Lock()
		unexpected := c.port == port
		if unexpected {
			c.port = nil
		}
		c.mu.Unlock()

		if !unexpected {
			return
		}
		logger.Error("Serial read failed, closing port:", err)
		port.Close()
		if c.OnError != nil {
			c.OnError(err)
		}
		return
	}
}
