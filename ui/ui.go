package ui

import (
	"Countdown/config"
	"Countdown/control"
	"Countdown/i18n"
	"Countdown/timer"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// replyTimeout bounds how long a button handler waits for the command loop.
const replyTimeout = 200 * time.Millisecond

type App interface {
	EnqueueCommand(cmd control.Command)
	HandleKeyRune(rune)
}

// CountdownWidget is the timer box: duration entry, time display and the
// Start/Resume, Pause and Reset controls.
type CountdownWidget struct {
	app App

	titleText     *canvas.Text
	timeText      *canvas.Text
	background    *canvas.Rectangle
	durationEntry *widget.Entry
	setButton     *widget.Button
	startButton   *widget.Button
	pauseButton   *widget.Button
	resetButton   *widget.Button
	display       *TappableContainer
	content       fyne.CanvasObject

	// shown is the snapshot last rendered.
	shown timer.Snapshot
}

func NewCountdownWidget(a App, cfg *config.Config) *CountdownWidget {
	w := &CountdownWidget{app: a}

	w.titleText = canvas.NewText(i18n.T("Countdown Timer"), color.Black)
	w.titleText.TextStyle.Bold = true
	w.titleText.TextSize = timer.FontSizeTitle

	w.timeText = canvas.NewText(timer.FormatTime(0), color.Black)
	w.timeText.TextStyle.Bold = true
	w.timeText.TextStyle.Monospace = true
	w.timeText.TextSize = cfg.Theme.TimeFontSize

	bg := timer.BackgroundColor
	if cfg.Theme.DarkMode {
		bg = timer.DarkBackgroundColor
		w.titleText.Color = color.White
		w.timeText.Color = color.White
	}
	w.background = canvas.NewRectangle(bg)
	w.background.CornerRadius = timer.CornerRadius

	w.durationEntry = widget.NewEntry()
	w.durationEntry.SetPlaceHolder(i18n.T("Enter duration in seconds"))
	w.durationEntry.OnSubmitted = func(string) { w.submit() }

	w.setButton = widget.NewButton(i18n.T("Set"), w.submit)
	w.startButton = widget.NewButton(i18n.T("Start"), func() {
		w.send(control.Command{Type: control.CmdStart})
	})
	w.pauseButton = widget.NewButton(i18n.T("Pause"), func() {
		w.send(control.Command{Type: control.CmdPause})
	})
	w.resetButton = widget.NewButton(i18n.T("Reset"), func() {
		w.send(control.Command{Type: control.CmdReset})
	})

	sizeEnforcer := canvas.NewRectangle(color.Transparent)
	sizeEnforcer.SetMinSize(fyne.NewSize(timer.DurationInputMin, 0))
	inputWrapper := container.New(layout.NewStackLayout(), sizeEnforcer, w.durationEntry)
	inputRow := container.NewBorder(nil, nil, nil, w.setButton, inputWrapper)

	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(timer.ButtonGap, 0))
	gap2 := canvas.NewRectangle(color.Transparent)
	gap2.SetMinSize(fyne.NewSize(timer.ButtonGap, 0))
	buttons := container.NewHBox(
		layout.NewSpacer(),
		w.startButton, gap, w.pauseButton, gap2, w.resetButton,
		layout.NewSpacer(),
	)

	// Tapping the time toggles Start/Pause, a secondary tap resets.
	w.display = NewTappableContainer(w.timeText, w.toggle, func(*fyne.PointEvent) {
		w.send(control.Command{Type: control.CmdReset})
	})

	box := container.NewVBox(
		container.New(layout.NewCenterLayout(), w.titleText),
		inputRow,
		container.New(layout.NewCenterLayout(), w.display),
		buttons,
	)

	w.content = container.NewStack(w.background, container.NewPadded(box))
	w.render(timer.Snapshot{Display: timer.FormatTime(0)})
	return w
}

func (w *CountdownWidget) GetCanvasObject() fyne.CanvasObject {
	return w.content
}

func (w *CountdownWidget) toggle() {
	if w.shown.State == timer.StateRunning {
		w.send(control.Command{Type: control.CmdPause})
		return
	}
	w.send(control.Command{Type: control.CmdStart})
}

func (w *CountdownWidget) submit() {
	in := timer.ParseInput(w.durationEntry.Text)
	w.send(control.Command{Type: control.CmdSet, Input: in})
}

// send posts cmd and waits briefly so the loop has applied it before the
// handler returns.
func (w *CountdownWidget) send(cmd control.Command) {
	reply := make(chan error, 1)
	cmd.Reply = reply
	w.app.EnqueueCommand(cmd)
	select {
	case <-reply:
	case <-time.After(replyTimeout):
	}
}

// Update renders s on the fyne goroutine. Safe to call from any goroutine.
func (w *CountdownWidget) Update(s timer.Snapshot) {
	fyne.Do(func() {
		w.render(s)
	})
}

func (w *CountdownWidget) render(s timer.Snapshot) {
	w.shown = s
	w.timeText.Text = s.Display

	if s.Resumable {
		w.startButton.SetText(i18n.T("Resume"))
	} else {
		w.startButton.SetText(i18n.T("Start"))
	}

	if s.State == timer.StateRunning || s.TimeLeft <= 0 {
		w.startButton.Disable()
	} else {
		w.startButton.Enable()
	}

	if s.State == timer.StateRunning {
		w.pauseButton.Enable()
	} else {
		w.pauseButton.Disable()
	}

	w.timeText.Refresh()
}

func CreateMainWindow(a App, fyneApp fyne.App, cfg *config.Config) (fyne.Window, *CountdownWidget) {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = cfg.App.Name
	}
	win := fyneApp.NewWindow(title)

	cw := NewCountdownWidget(a, cfg)

	win.Canvas().SetOnTypedRune(a.HandleKeyRune)
	win.SetContent(container.NewPadded(cw.GetCanvasObject()))
	win.Resize(fyne.NewSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight)))
	win.SetFixedSize(true)
	return win, cw
}

type TappableContainer struct {
	widget.BaseWidget
	Content           fyne.CanvasObject
	OnTappedPrimary   func()
	OnTappedSecondary func(e *fyne.PointEvent)
}

func NewTappableContainer(c fyne.CanvasObject, onP func(), onS func(e *fyne.PointEvent)) *TappableContainer {
	t := &TappableContainer{
		Content:           c,
		OnTappedPrimary:   onP,
		OnTappedSecondary: onS,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.Content)
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}

func (t *TappableContainer) TappedSecondary(e *fyne.PointEvent) {
	if t.OnTappedSecondary != nil {
		t.OnTappedSecondary(e)
	}
}
