// Package settings persists the terminal's display preferences in an INI
// file next to the executable.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"serialtool/internal/config"

	"gopkg.in/ini.v1"
)

// FileName 设置文件名
const FileName = "config.ini"

// Keys live in the [General] section, which is where QSettings-style INI
// files keep section-less keys.
const section = "General"

// Store 扁平的键值设置存储
type Store struct {
	mu   sync.Mutex
	path string
	file *ini.File
}

// DefaultPath 返回可执行文件同目录下的 config.ini
func DefaultPath() string {
	return config.ExeDirFile(FileName)
}

// Open loads the INI file at path. A missing file yields an empty store.
// A file that cannot be parsed also yields an empty, usable store together
// with the parse error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	f, err := ini.LooseLoad(path)
	if err != nil {
		s.file = ini.Empty()
		return s, fmt.Errorf("failed to load settings %s: %w", path, err)
	}
	s.file = f
	return s, nil
}

// Path 返回设置文件路径
func (s *Store) Path() string {
	return s.path
}

// Bool 读取布尔值，键不存在或无法解析时返回默认值
func (s *Store) Bool(key string, def bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec := s.file.Section(section)
	if !sec.HasKey(key) {
		return def
	}
	return sec.Key(key).MustBool(def)
}

// SetBool 设置布尔值（需调用 Sync 写入文件）
func (s *Store) SetBool(key string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.file.Section(section).Key(key).SetValue(strconv.FormatBool(value))
}

// Sync 强制写入文件
func (s *Store) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := s.file.SaveTo(s.path); err != nil {
		return fmt.Errorf("failed to save settings %s: %w", s.path, err)
	}
	return nil
}
