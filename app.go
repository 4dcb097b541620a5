// Package main contains the application wiring and the AppManager which
// owns the countdown, runs the command loop and pushes snapshots to the UI.
//
// Maintenance notes / tips:
//   - Concurrency model: the countdown is only ever touched by the
//     command-loop goroutine (see `commandLoop`). UI handlers post commands;
//     the TickerScheduler posts each tick as a CmdTick carrying the callback.
//     Nothing else may call Countdown methods.
//   - `cmdCh` is a buffered channel. UI commands give up after a short
//     timeout rather than block the UI; ticks block until the loop accepts
//     them or the manager shuts down, so no second is ever lost.
//   - Shutdown closes the countdown on the loop goroutine before the loop
//     exits, which cancels any live schedule. It is safe to call repeatedly
//     and is also registered with atexit.
package main

import (
	"Countdown/control"
	"Countdown/timer"
	"context"
	"log"
	"sync"
	"time"
)

// enqueueTimeout bounds how long a UI command may wait for a full queue.
const enqueueTimeout = 150 * time.Millisecond

// View receives snapshots after every command.
type View interface {
	Update(timer.Snapshot)
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	countdown *timer.Countdown

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc
	loopDone  chan struct{}
	closeOnce sync.Once

	viewLock sync.Mutex
	view     View
	lastSnap timer.Snapshot
}

// NewAppManager creates a new application manager. newScheduler builds the
// scheduler from the manager's tick poster.
func NewAppManager(newScheduler func(timer.Poster) timer.Scheduler) *AppManager {
	a := &AppManager{
		cmdCh:    make(chan control.Command, 64),
		loopDone: make(chan struct{}),
	}
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	a.countdown = timer.NewCountdown(newScheduler(a.postTick))
	a.lastSnap = a.countdown.Snapshot()

	go a.commandLoop()

	return a
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	// Try to enqueue the command but avoid blocking UI indefinitely. If the
	// channel stays full for the configured short timeout, drop and log.
	select {
	case a.cmdCh <- cmd:
	case <-a.cmdCtx.Done():
		log.Printf("EnqueueCommand after shutdown: dropping %v", cmd.Type)
	case <-time.After(enqueueTimeout):
		log.Printf("EnqueueCommand timeout: dropping %v", cmd.Type)
	}
}

// postTick is the timer.Poster handed to the scheduler.
func (a *AppManager) postTick(fn func()) {
	select {
	case a.cmdCh <- control.Command{Type: control.CmdTick, Fire: fn}:
	case <-a.cmdCtx.Done():
	}
}

func (a *AppManager) commandLoop() {
	defer close(a.loopDone)

	for {
		select {
		case <-a.cmdCtx.Done():
			a.countdown.Close()
			a.publish()
			return
		case cmd := <-a.cmdCh:
			a.apply(cmd)
			a.publish()
			// send reply if requested
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

func (a *AppManager) apply(cmd control.Command) {
	switch cmd.Type {
	case control.CmdSet:
		if !cmd.Input.IsSet() {
			log.Printf("Set ignored: no duration entered")
		}
		a.countdown.SetDuration(cmd.Input)
	case control.CmdStart:
		a.countdown.Start()
	case control.CmdPause:
		a.countdown.Pause()
	case control.CmdReset:
		a.countdown.Reset()
	case control.CmdTick:
		if cmd.Fire != nil {
			cmd.Fire()
		}
	}
}

func (a *AppManager) publish() {
	snap := a.countdown.Snapshot()

	a.viewLock.Lock()
	a.lastSnap = snap
	v := a.view
	a.viewLock.Unlock()

	if v != nil {
		v.Update(snap)
	}
}

// SetView attaches the UI and renders the current snapshot on it.
func (a *AppManager) SetView(v View) {
	a.viewLock.Lock()
	a.view = v
	snap := a.lastSnap
	a.viewLock.Unlock()

	v.Update(snap)
}

// Snapshot returns the state published after the last command.
func (a *AppManager) Snapshot() timer.Snapshot {
	a.viewLock.Lock()
	defer a.viewLock.Unlock()
	return a.lastSnap
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	switch r {
	case ' ':
		if a.Snapshot().State == timer.StateRunning {
			a.EnqueueCommand(control.Command{Type: control.CmdPause})
		} else {
			a.EnqueueCommand(control.Command{Type: control.CmdStart})
		}
	case 'r', 'R':
		a.EnqueueCommand(control.Command{Type: control.CmdReset})
	}
}

// Shutdown stops the command loop and waits for it to release the
// countdown's schedule.
func (a *AppManager) Shutdown() {
	a.closeOnce.Do(func() {
		log.Println("Shutting down countdown")
		a.cmdCancel()
		<-a.loopDone
	})
}
