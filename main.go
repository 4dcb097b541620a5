package main

import (
	"Countdown/config"
	"Countdown/i18n"
	"Countdown/timer"
	"Countdown/ui"
	"embed"
	"log"

	"fyne.io/fyne/v2/app"
	"github.com/tebeka/atexit"
)

//go:embed assets/*
var content embed.FS

func main() {
	userPath, err := config.UserConfigPath()
	if err != nil {
		log.Printf("No user config directory: %v", err)
	}
	cfg, err := config.Load(content, userPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	i18n.Setup(cfg.Language)

	fyneApp := app.New()
	fyneApp.Settings().SetTheme(ui.NewCustomTheme(cfg.Theme))

	a := NewAppManager(func(post timer.Poster) timer.Scheduler {
		return timer.NewTickerScheduler(post)
	})
	atexit.Register(a.Shutdown)

	w, view := ui.CreateMainWindow(a, fyneApp, cfg)
	a.SetView(view)
	w.SetOnClosed(a.Shutdown)

	w.ShowAndRun()

	atexit.Exit(0)
}
