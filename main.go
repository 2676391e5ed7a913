// SerialTool - 串口调试助手 Go版本
package main

import (
	"fmt"
	"log"
	"os"

	"serialtool/internal/config"
	"serialtool/internal/gui"
	"serialtool/internal/i18n"
	"serialtool/internal/logger"
	"serialtool/internal/settings"
)

var version = "1.0.0"

func main() {
	// 初始化日志系统
	logger.Init()

	log.Printf("SerialTool v%s", version)
	log.Println("Starting SerialTool...")

	// 加载配置，首次运行写出默认配置
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
		if os.IsNotExist(err) {
			if saveErr := cfg.Save(); saveErr != nil {
				logger.Warn(fmt.Sprintf("Write default config failed: %v", saveErr))
			}
		} else {
			log.Printf("配置加载失败，使用默认配置: %v", err)
		}
	}

	logger.SetLevel(cfg.LogLevel)
	i18n.Init(cfg.Language)

	// 显示偏好
	store, err := settings.Open(settings.DefaultPath())
	if err != nil {
		logger.Warn(fmt.Sprintf("Settings unreadable, using defaults: %v", err))
	}

	app := gui.NewApp(cfg, store, version)
	app.ShowAndRun()
}
