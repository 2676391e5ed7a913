package terminal

import (
	"io"
	"strings"
	"sync"
)

// Transcript is the append-only text shown in the receive pane.
type Transcript struct {
	mu  sync.Mutex
	buf strings.Builder
}

// Append 追加一行（自动补换行）
func (t *Transcript) Append(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf.WriteString(line)
	t.buf.WriteByte('\n')
}

// String 返回全部文本
func (t *Transcript) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.String()
}

// Len 返回文本字节数
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.Len()
}

// Clear 清空
func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf.Reset()
}

// WriteTo writes the whole transcript to w.
func (t *Transcript) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}
