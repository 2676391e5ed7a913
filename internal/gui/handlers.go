package gui

import (
	"fmt"
	"strconv"
	"strings"

	"serialtool/internal/i18n"
	"serialtool/internal/logger"
	"serialtool/internal/serialport"
	"serialtool/internal/settings"
	"serialtool/internal/terminal"
	"serialtool/pkg/utils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// defaultSaveName 保存对话框默认文件名
const defaultSaveName = "serial_data.txt"

// === 事件处理方法 ===

// refreshPorts 枚举并填充串口列表
func (a *App) refreshPorts() {
	ports, err := a.listPorts()
	if err != nil {
		logger.Error("获取串口列表失败:", err)
	}

	previous := a.portSelect.Selected
	a.portSelect.SetOptions(ports)
	if len(ports) == 0 {
		a.portSelect.ClearSelected()
		return
	}

	switch {
	case contains(ports, previous):
		a.portSelect.SetSelected(previous)
	case contains(ports, a.config.Serial.Port):
		a.portSelect.SetSelected(a.config.Serial.Port)
	default:
		a.portSelect.SetSelected(utils.PreferredPort(ports))
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func (a *App) toggleConnection() {
	if a.client.IsOpen() {
		a.closePort()
	} else {
		a.openPort()
	}
}

// currentParams 从界面读取线路参数
func (a *App) currentParams() (serialport.Params, error) {
	return serialport.ParseParams(
		a.portSelect.Selected,
		strings.TrimSpace(a.baudSelect.Text),
		a.dataBitsSelect.Selected,
		a.stopBitsSelect.Selected,
		pick(serialport.ParityList, a.paritySelect.SelectedIndex()),
		pick(serialport.FlowList, a.flowSelect.SelectedIndex()),
	)
}

func pick(list []string, index int) string {
	if index < 0 || index >= len(list) {
		return list[0]
	}
	return list[index]
}

func (a *App) openPort() {
	params, err := a.currentParams()
	if err == nil {
		err = a.client.Open(params)
	}
	if err != nil {
		logger.Warn(fmt.Sprintf("Open failed: %v", err))
		a.setStatus(i18n.T("status.openFailed", err), widget.DangerImportance)
		a.updateConnectionStateUI()
		return
	}

	a.setStatus(i18n.T("status.open"), widget.SuccessImportance)
	a.updateConnectionStateUI()
}

func (a *App) closePort() {
	if err := a.client.Close(); err != nil {
		logger.Warn(fmt.Sprintf("Close failed: %v", err))
	}
	a.setStatus(i18n.T("status.closed"), widget.DangerImportance)
	a.updateConnectionStateUI()
}

// handlePortError 读取出错后串口已被关闭
func (a *App) handlePortError(err error) {
	a.setStatus(i18n.T("status.readFailed", err), widget.DangerImportance)
	a.updateConnectionStateUI()
}

func (a *App) updateConnectionStateUI() {
	if a.client.IsOpen() {
		a.openBtn.SetText(i18n.T("button.close"))
		a.portSelect.Disable()
		a.refreshBtn.Disable()
	} else {
		a.openBtn.SetText(i18n.T("button.open"))
		a.portSelect.Enable()
		a.refreshBtn.Enable()
	}
}

func (a *App) setStatus(text string, importance widget.Importance) {
	a.statusLabel.Importance = importance
	a.statusLabel.SetText(text)
}

// sendCurrent sends the send box once; the auto-sender calls it on every tick.
func (a *App) sendCurrent() {
	if !a.client.IsOpen() {
		return
	}
	n, err := a.session.Send(a.sendEntry.Text)
	if err != nil {
		logger.Error("发送失败:", err)
	}
	if n > 0 {
		a.refreshTranscript()
		a.updateCounters()
	}
}

// handleIncoming 处理串口收到的数据
func (a *App) handleIncoming(data []byte) {
	a.session.Receive(data)
	a.refreshTranscript()
	a.updateCounters()
}

func (a *App) refreshTranscript() {
	text := a.session.Transcript().String()
	a.receiveView.SetText(text)
	// 滚动到末尾
	a.receiveView.CursorRow = strings.Count(text, "\n")
	a.receiveView.Refresh()
}

func (a *App) updateCounters() {
	sent, received := a.session.Counters()
	a.sentLabel.SetText(i18n.T("status.sent", sent))
	a.receivedLabel.SetText(i18n.T("status.received", received))
}

func (a *App) clearReceive() {
	a.session.Transcript().Clear()
	a.refreshTranscript()
}

// saveTranscript 保存接收区内容到文本文件
func (a *App) saveTranscript() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			logger.Warn(fmt.Sprintf("Save dialog failed: %v", err))
			return
		}
		if writer == nil {
			return // 用户取消
		}
		a.writeTranscript(writer)
	}, a.window)
	d.SetFileName(defaultSaveName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	d.Show()
}

func (a *App) writeTranscript(writer fyne.URIWriteCloser) {
	defer writer.Close()
	if _, err := a.session.Transcript().WriteTo(writer); err != nil {
		logger.Warn(fmt.Sprintf("Save transcript to %s failed: %v", writer.URI(), err))
		return
	}
	logger.Info(fmt.Sprintf("Transcript saved to %s", writer.URI()))
}

func (a *App) currentPreferences() settings.Preferences {
	return settings.Preferences{
		Timestamp:  a.timestampCheck.Checked,
		LogMode:    a.logModeCheck.Checked,
		HexReceive: a.hexReceiveCheck.Checked,
		HexSend:    a.hexSendCheck.Checked,
	}
}

func (a *App) applyPreferences(p settings.Preferences) {
	a.timestampCheck.SetChecked(p.Timestamp)
	a.logModeCheck.SetChecked(p.LogMode)
	a.hexReceiveCheck.SetChecked(p.HexReceive)
	a.hexSendCheck.SetChecked(p.HexSend)
}

func (a *App) onPreferenceChanged() {
	prefs := a.currentPreferences()
	a.session.SetPreferences(prefs)
	if err := settings.SavePreferences(a.store, prefs); err != nil {
		logger.Warn(fmt.Sprintf("Save settings failed: %v", err))
	}
}

func (a *App) autoSendInterval() int {
	ms, err := strconv.Atoi(strings.TrimSpace(a.intervalEntry.Text))
	if err != nil {
		return terminal.DefaultAutoSendInterval
	}
	return terminal.ClampInterval(ms)
}

func (a *App) toggleAutoSend(on bool) {
	if on {
		a.autoSender.Start(a.autoSendInterval())
	} else {
		a.autoSender.Stop()
	}
}

// shutdown 停止自动发送并关闭串口
func (a *App) shutdown() {
	a.autoSender.Stop()
	if err := a.client.Close(); err != nil {
		logger.Warn(fmt.Sprintf("Close on exit failed: %v", err))
	}
}
