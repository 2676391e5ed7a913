// Package terminal turns outbound text and inbound bytes into transcript
// lines and keeps the byte counters of a serial terminal session.
package terminal

import (
	"fmt"
	"sync"
	"time"

	"serialtool/internal/logger"
	"serialtool/internal/settings"
	"serialtool/pkg/codec"
)

// TimestampLayout 时间戳格式 [yyyy-MM-dd HH:mm:ss]
const TimestampLayout = "2006-01-02 15:04:05"

// 方向标记
const (
	TagTX = "[TX] "
	TagRX = "[RX] "
)

// Transport is the part of the serial client a session writes through.
type Transport interface {
	Write(data []byte) (int, error)
	IsOpen() bool
}

// Session 终端会话：计数、偏好、编码与接收文本
type Session struct {
	transport  Transport
	transcript *Transcript
	now        func() time.Time

	mu           sync.Mutex
	prefs        settings.Preferences
	sendEncoding string
	recvEncoding string
	sentBytes    int64
	recvBytes    int64
}

// NewSession 创建会话
func NewSession(transport Transport, prefs settings.Preferences) *Session {
	return &Session{
		transport:    transport,
		transcript:   &Transcript{},
		now:          time.Now,
		prefs:        prefs,
		sendEncoding: codec.DefaultEncoding,
		recvEncoding: codec.DefaultEncoding,
	}
}

// SetClock replaces the time source used for timestamps.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Transcript 返回接收区文本
func (s *Session) Transcript() *Transcript {
	return s.transcript
}

// Preferences 返回当前显示偏好
func (s *Session) Preferences() settings.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// SetPreferences 更新显示偏好
func (s *Session) SetPreferences(p settings.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
}

// SetEncodings 设置发送/接收编码
func (s *Session) SetEncodings(send, receive string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendEncoding = send
	s.recvEncoding = receive
}

// Encodings 返回发送/接收编码
func (s *Session) Encodings() (send, receive string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sendEncoding, s.recvEncoding
}

// Counters returns the cumulative bytes sent and received.
func (s *Session) Counters() (sent, received int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sentBytes, s.recvBytes
}

// Payload 按当前偏好把发送框文本转换为字节
func (s *Session) Payload(text string) []byte {
	s.mu.Lock()
	hexSend, enc := s.prefs.HexSend, s.sendEncoding
	s.mu.Unlock()

	if hexSend {
		return codec.HexToBytes(text)
	}
	return codec.Encode(text, enc)
}

// Send writes text to the transport. It does nothing while the port is
// closed. On a successful write the sent counter grows by the bytes written
// and, in log mode, a TX line is appended to the transcript.
func (s *Session) Send(text string) (int, error) {
	if !s.transport.IsOpen() {
		return 0, nil
	}

	data := s.Payload(text)
	n, err := s.transport.Write(data)
	if n <= 0 {
		return n, err
	}

	s.mu.Lock()
	s.sentBytes += int64(n)
	prefs := s.prefs
	s.mu.Unlock()

	if err != nil {
		logger.Warn(fmt.Sprintf("Partial write: %d of %d bytes: %v", n, len(data), err))
	}

	if prefs.LogMode {
		body := text
		if prefs.HexSend {
			body = codec.BytesToHex(data)
		}
		line := TagTX + body
		if prefs.Timestamp {
			line = s.stamp() + line
		}
		s.transcript.Append(line)
	}
	return n, err
}

// Receive 处理接收到的数据并返回追加到接收区的行
func (s *Session) Receive(data []byte) string {
	s.mu.Lock()
	s.recvBytes += int64(len(data))
	prefs, enc := s.prefs, s.recvEncoding
	s.mu.Unlock()

	var line string
	if prefs.HexReceive {
		line = codec.BytesToHex(data)
	} else {
		line = codec.Decode(data, enc)
	}
	if prefs.LogMode {
		line = TagRX + line
	}
	if prefs.Timestamp {
		line = s.stamp() + line
	}

	s.transcript.Append(line)
	return line
}

func (s *Session) stamp() string {
	return "[" + s.now().Format(TimestampLayout) + "] "
}
