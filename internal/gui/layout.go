package gui

import (
	"serialtool/internal/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// createMainLayout 创建主布局：上方配置，中间收发区域，底部统计
func (a *App) createMainLayout() fyne.CanvasObject {
	top := container.NewVBox(a.addSerialConfigArea(), a.addEncodingArea())

	dataSplit := container.NewHSplit(a.addReceiveArea(), a.addSendArea())
	dataSplit.SetOffset(0.6)

	status := container.NewHBox(a.sentLabel, layout.NewSpacer(), a.receivedLabel)

	return container.NewBorder(top, status, nil, nil, dataSplit)
}

func (a *App) addSerialConfigArea() fyne.CanvasObject {
	portRow := container.NewHBox(
		widget.NewLabel(i18n.T("label.port")),
		container.New(&minWidthLayout{width: 240}, a.portSelect),
		a.refreshBtn,
		a.openBtn,
		a.statusLabel,
		layout.NewSpacer(),
	)

	lineRow := container.NewHBox(
		widget.NewLabel(i18n.T("label.baud")),
		container.New(&minWidthLayout{width: 130}, a.baudSelect),
		widget.NewLabel(i18n.T("label.dataBits")),
		container.New(&fixedWidthLayout{width: 70}, a.dataBitsSelect),
		widget.NewLabel(i18n.T("label.stopBits")),
		container.New(&fixedWidthLayout{width: 80}, a.stopBitsSelect),
		layout.NewSpacer(),
	)

	controlRow := container.NewHBox(
		widget.NewLabel(i18n.T("label.parity")),
		container.New(&minWidthLayout{width: 120}, a.paritySelect),
		widget.NewLabel(i18n.T("label.flow")),
		container.New(&minWidthLayout{width: 180}, a.flowSelect),
		layout.NewSpacer(),
	)

	return widget.NewCard("", i18n.T("group.serial"), container.NewVBox(portRow, lineRow, controlRow))
}

func (a *App) addEncodingArea() fyne.CanvasObject {
	row := container.NewHBox(
		widget.NewLabel(i18n.T("label.sendEncoding")),
		container.New(&minWidthLayout{width: 140}, a.sendEncodingSelect),
		widget.NewLabel(i18n.T("label.receiveEncoding")),
		container.New(&minWidthLayout{width: 140}, a.receiveEncodingSelect),
		layout.NewSpacer(),
	)
	return widget.NewCard("", i18n.T("group.encoding"), row)
}

func (a *App) addReceiveArea() fyne.CanvasObject {
	options := container.NewHBox(
		a.hexReceiveCheck,
		a.timestampCheck,
		a.logModeCheck,
		layout.NewSpacer(),
		a.clearReceiveBtn,
		a.saveBtn,
	)
	return widget.NewCard("", i18n.T("group.receive"), container.NewBorder(options, nil, nil, nil, a.receiveView))
}

func (a *App) addSendArea() fyne.CanvasObject {
	options := container.NewHBox(
		a.hexSendCheck,
		a.autoSendCheck,
		container.New(&fixedWidthLayout{width: 80}, a.intervalEntry),
		widget.NewLabel(i18n.T("label.ms")),
	)
	buttons := container.NewHBox(layout.NewSpacer(), a.sendBtn, a.clearSendBtn)
	return widget.NewCard("", i18n.T("group.send"), container.NewBorder(options, buttons, nil, nil, a.sendEntry))
}

// fixedWidthLayout is a custom layout that gives its content a fixed width.
type fixedWidthLayout struct {
	width float32
}

func (f *fixedWidthLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	height := objects[0].MinSize().Height
	objects[0].Resize(fyne.NewSize(f.width, height))
	objects[0].Move(fyne.NewPos(0, (size.Height-height)/2)) // 垂直居中
}

func (f *fixedWidthLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(f.width, objects[0].MinSize().Height)
}

// minWidthLayout is a custom layout that ensures its content has a minimum width.
type minWidthLayout struct {
	width float32
}

func (m *minWidthLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	objects[0].Resize(size)
	objects[0].Move(fyne.NewPos(0, 0))
}

func (m *minWidthLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}
	childMin := objects[0].MinSize()
	actualWidth := childMin.Width
	if actualWidth < m.width {
		actualWidth = m.width
	}
	return fyne.NewSize(actualWidth, childMin.Height)
}
