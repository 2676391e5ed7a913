package logger

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// Init 初始化日志系统
func Init() {
	Logger = logrus.New()

	// 设置日志格式
	Logger.SetFormatter(&CustomFormatter{})

	// 设置日志级别
	Logger.SetLevel(logrus.InfoLevel)

	// 创建日志目录
	logDir := getLogDir()
	if err := os.MkdirAll(logDir, 0755); err != nil {
		logrus.Errorf("无法创建日志目录 %s: %v", logDir, err)
		return // 无法创建目录，日志将输出到stderr
	}

	logFile := filepath.Join(logDir, "serialtool.log")
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logrus.Errorf("无法打开日志文件 %s: %v", logFile, err)
		return
	}
	Logger.SetOutput(file)
}

// SetLevel 按配置设置日志级别，无法识别时保持 INFO
func SetLevel(level string) {
	if Logger == nil {
		return
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		Logger.Warnf("未知日志级别 %q，使用 INFO", level)
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)
}

// getLogDir 获取日志目录
func getLogDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".serialtool", "logs")
}

// Info 信息日志
func Info(args ...interface{}) {
	if Logger != nil {
		Logger.Info(args...)
	}
}

// Error 错误日志
func Error(args ...interface{}) {
	if Logger != nil {
		Logger.Error(args...)
	}
}

// Debug 调试日志
func Debug(args ...interface{}) {
	if Logger != nil {
		Logger.Debug(args...)
	}
}

// Warn 警告日志
func Warn(args ...interface{}) {
	if Logger != nil {
		Logger.Warn(args...)
	}
}
