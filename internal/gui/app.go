package gui

import (
	"fmt"
	"strconv"

	"serialtool/internal/config"
	"serialtool/internal/i18n"
	"serialtool/internal/logger"
	"serialtool/internal/serialport"
	"serialtool/internal/settings"
	"serialtool/internal/terminal"
	"serialtool/pkg/codec"
	"serialtool/pkg/utils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/widget"
)

// App 串口工具主窗口
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *config.Config
	version string

	client     *serialport.Client
	store      *settings.Store
	session    *terminal.Session
	autoSender *terminal.AutoSender
	listPorts  func() ([]string, error)

	// === 串口配置 ===
	portSelect     *widget.Select
	refreshBtn     *widget.Button
	openBtn        *widget.Button
	statusLabel    *widget.Label
	baudSelect     *widget.SelectEntry
	dataBitsSelect *widget.Select
	stopBitsSelect *widget.Select
	paritySelect   *widget.Select
	flowSelect     *widget.Select

	// === 编码配置 ===
	sendEncodingSelect    *widget.Select
	receiveEncodingSelect *widget.Select

	// === 接收区域 ===
	hexReceiveCheck *widget.Check
	timestampCheck  *widget.Check
	logModeCheck    *widget.Check
	clearReceiveBtn *widget.Button
	saveBtn         *widget.Button
	receiveView     *widget.Entry

	// === 发送区域 ===
	hexSendCheck  *widget.Check
	autoSendCheck *widget.Check
	intervalEntry *widget.Entry
	sendEntry     *widget.Entry
	sendBtn       *widget.Button
	clearSendBtn  *widget.Button

	// === 状态统计 ===
	sentLabel     *widget.Label
	receivedLabel *widget.Label
}

// NewApp 创建应用，使用真实串口与系统端口枚举
func NewApp(cfg *config.Config, store *settings.Store, version string) *App {
	fyneApp := app.NewWithID("com.serialtool.app")
	listPorts := func() ([]string, error) {
		return utils.ListPorts(func(p utils.SerialPortInfo) {
			logger.Debug(fmt.Sprintf("Found port %s usb=%v vid=%s pid=%s", p.Label(), p.IsUSB, p.VID, p.PID))
		})
	}
	return newApp(fyneApp, cfg, store, serialport.NewClient(), listPorts, version)
}

func newApp(fyneApp fyne.App, cfg *config.Config, store *settings.Store, client *serialport.Client,
	listPorts func() ([]string, error), version string) *App {
	window := fyneApp.NewWindow(fmt.Sprintf("%s v%s", i18n.T("app.title"), version))
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	a := &App{
		fyneApp:   fyneApp,
		window:    window,
		config:    cfg,
		version:   version,
		client:    client,
		store:     store,
		listPorts: listPorts,
	}
	a.session = terminal.NewSession(client, settings.LoadPreferences(store))
	a.session.SetEncodings(cfg.SendEncoding, cfg.ReceiveEncoding)
	a.autoSender = terminal.NewAutoSender(func() {
		fyne.Do(a.sendCurrent)
	})
	return a
}

// ShowAndRun 显示并运行应用程序
func (a *App) ShowAndRun() {
	a.initUI()
	a.window.ShowAndRun()
}

// initUI 初始化用户界面
func (a *App) initUI() {
	a.createUIElements()

	// 串口回调在读取协程中执行，交给界面线程处理
	a.client.OnData = func(data []byte) {
		fyne.Do(func() { a.handleIncoming(data) })
	}
	a.client.OnError = func(err error) {
		fyne.Do(func() { a.handlePortError(err) })
	}

	a.refreshBtn.OnTapped = a.refreshPorts
	a.openBtn.OnTapped = a.toggleConnection
	a.sendBtn.OnTapped = a.sendCurrent
	a.clearReceiveBtn.OnTapped = a.clearReceive
	a.clearSendBtn.OnTapped = func() { a.sendEntry.SetText("") }
	a.saveBtn.OnTapped = a.saveTranscript

	onEncoding := func(string) {
		a.session.SetEncodings(a.sendEncodingSelect.Selected, a.receiveEncodingSelect.Selected)
	}
	a.sendEncodingSelect.OnChanged = onEncoding
	a.receiveEncodingSelect.OnChanged = onEncoding

	a.autoSendCheck.OnChanged = a.toggleAutoSend
	a.intervalEntry.OnChanged = func(string) {
		if a.autoSender.Running() {
			a.autoSender.Start(a.autoSendInterval())
		}
	}

	// 应用已保存的偏好后再连接保存回调，避免初始值被回写
	a.applyPreferences(a.session.Preferences())
	for _, check := range []*widget.Check{a.timestampCheck, a.logModeCheck, a.hexReceiveCheck, a.hexSendCheck} {
		check.OnChanged = func(bool) { a.onPreferenceChanged() }
	}

	a.window.SetContent(a.createMainLayout())
	a.window.SetOnClosed(a.shutdown)

	a.refreshPorts()
	a.setStatus(i18n.T("status.closed"), widget.DangerImportance)
	a.updateConnectionStateUI()
	a.updateCounters()
}

// createUIElements 创建UI元素
func (a *App) createUIElements() {
	serialCfg := a.config.Serial

	// === 串口配置 ===
	a.portSelect = widget.NewSelect(nil, nil)
	a.portSelect.PlaceHolder = i18n.T("status.noPorts")
	a.refreshBtn = widget.NewButton(i18n.T("button.refresh"), nil)
	a.openBtn = widget.NewButton(i18n.T("button.open"), nil)
	a.statusLabel = widget.NewLabel("")

	a.baudSelect = widget.NewSelectEntry(serialport.BaudRates)
	a.baudSelect.SetText(strconv.Itoa(serialCfg.BaudRate))
	a.baudSelect.Validator = validation.NewRegexp(`^[0-9]+$`, "baud rate must be a number")

	a.dataBitsSelect = widget.NewSelect(serialport.DataBitsList, nil)
	a.dataBitsSelect.SetSelected(strconv.Itoa(serialCfg.DataBits))

	a.stopBitsSelect = widget.NewSelect(serialport.StopBitsList, nil)
	a.stopBitsSelect.SetSelected(serialCfg.StopBits)

	a.paritySelect = widget.NewSelect([]string{
		i18n.T("parity.none"), i18n.T("parity.odd"), i18n.T("parity.even"),
		i18n.T("parity.mark"), i18n.T("parity.space"),
	}, nil)
	a.paritySelect.SetSelectedIndex(indexOf(serialport.ParityList, serialCfg.Parity))

	a.flowSelect = widget.NewSelect([]string{
		i18n.T("flow.none"), i18n.T("flow.hardware"), i18n.T("flow.software"),
	}, nil)
	a.flowSelect.SetSelectedIndex(indexOf(serialport.FlowList, serialCfg.FlowControl))

	// === 编码配置 ===
	encodings := codec.Encodings()
	a.sendEncodingSelect = widget.NewSelect(encodings, nil)
	a.receiveEncodingSelect = widget.NewSelect(encodings, nil)
	sendEnc, recvEnc := a.session.Encodings()
	a.sendEncodingSelect.SetSelected(sendEnc)
	a.receiveEncodingSelect.SetSelected(recvEnc)

	// === 接收区域 ===
	a.hexReceiveCheck = widget.NewCheck(i18n.T("check.hexReceive"), nil)
	a.timestampCheck = widget.NewCheck(i18n.T("check.timestamp"), nil)
	a.logModeCheck = widget.NewCheck(i18n.T("check.logMode"), nil)
	a.clearReceiveBtn = widget.NewButton(i18n.T("button.clear"), nil)
	a.saveBtn = widget.NewButton(i18n.T("button.save"), nil)

	a.receiveView = widget.NewMultiLineEntry()
	a.receiveView.Wrapping = fyne.TextWrapWord
	a.receiveView.TextStyle = fyne.TextStyle{Monospace: true}
	a.receiveView.Disable() // 只读

	// === 发送区域 ===
	a.hexSendCheck = widget.NewCheck(i18n.T("check.hexSend"), nil)
	a.autoSendCheck = widget.NewCheck(i18n.T("check.autoSend"), nil)

	a.intervalEntry = widget.NewEntry()
	a.intervalEntry.SetText(strconv.Itoa(terminal.ClampInterval(a.config.AutoSendInterval)))
	a.intervalEntry.Validator = validation.NewRegexp(`^[0-9]+$`, "interval must be a number")

	a.sendEntry = widget.NewMultiLineEntry()
	a.sendEntry.Wrapping = fyne.TextWrapWord
	a.sendEntry.PlaceHolder = i18n.T("placeholder.send")
	a.sendEntry.SetMinRowsVisible(4)

	a.sendBtn = widget.NewButton(i18n.T("button.send"), nil)
	a.sendBtn.Importance = widget.HighImportance
	a.clearSendBtn = widget.NewButton(i18n.T("button.clear"), nil)

	// === 状态统计 ===
	a.sentLabel = widget.NewLabel("")
	a.receivedLabel = widget.NewLabel("")
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return 0
}
