package terminal

import (
	"fmt"
	"sync"
	"time"

	"serialtool/internal/logger"
)

// 自动发送间隔范围（毫秒）
const (
	MinAutoSendInterval     = 100
	MaxAutoSendInterval     = 10000
	DefaultAutoSendInterval = 1000
)

// ClampInterval 将间隔限制在 100..10000 ms
func ClampInterval(ms int) int {
	if ms < MinAutoSendInterval {
		return MinAutoSendInterval
	}
	if ms > MaxAutoSendInterval {
		return MaxAutoSendInterval
	}
	return ms
}

// AutoSender calls tick at a fixed interval until stopped. Each tick is one
// synchronous call; ticks that fire while tick is still running are dropped.
type AutoSender struct {
	tick func()

	mu       sync.Mutex
	stop     chan struct{}
	done     chan struct{}
	interval time.Duration
}

// NewAutoSender 创建自动发送器
func NewAutoSender(tick func()) *AutoSender {
	return &AutoSender{tick: tick}
}

// Start 按间隔（毫秒，会被限制范围）开始自动发送，已在运行则重新开始
func (a *AutoSender) Start(intervalMs int) {
	a.Stop()

	interval := time.Duration(ClampInterval(intervalMs)) * time.Millisecond

	a.mu.Lock()
	defer a.mu.Unlock()
	a.stop = make(chan struct{})
	a.done = make(chan struct{})
	a.interval = interval
	go a.run(interval, a.stop, a.done)

	logger.Info(fmt.Sprintf("Auto-send started, interval %v", interval))
}

// Stop 停止自动发送并等待协程退出
func (a *AutoSender) Stop() {
	a.mu.Lock()
	stop, done := a.stop, a.done
	a.stop, a.done = nil, nil
	a.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
	logger.Info("Auto-send stopped")
}

// Running 是否正在自动发送
func (a *AutoSender) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stop != nil
}

// Interval 返回当前间隔
func (a *AutoSender) Interval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval
}

func (a *AutoSender) run(interval time.Duration, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			a.tick()
		}
	}
}
