package app

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/avickers/tapedeck/internal/catalog"
	"github.com/avickers/tapedeck/internal/mpris"
	"github.com/avickers/tapedeck/internal/notify"
	"github.com/avickers/tapedeck/internal/playback"
	"github.com/avickers/tapedeck/internal/ui"
)

// App is the ebiten game driving the player. Each Update steps the
// machine, drains the remote-control mailbox, handles mouse input and
// republishes the status snapshot that Draw and the MPRIS properties
// render from. Everything runs on the game goroutine; the bridge is
// the only crossing point.
type App struct {
	machine  *playback.Machine
	bridge   *mpris.Bridge
	panel    *ui.Panel
	notifier notify.Notifier
	log      *slog.Logger

	draggingVolume bool
	quit           bool

	announcedPath  string
	notificationID uint32
}

var _ ebiten.Game = (*App)(nil)

func New(machine *playback.Machine, bridge *mpris.Bridge, notifier notify.Notifier, log *slog.Logger) *App {
	return &App{
		machine:  machine,
		bridge:   bridge,
		panel:    ui.NewPanel(),
		notifier: notifier,
		log:      log.With("component", "app"),
	}
}

func (a *App) Update() error {
	a.machine.Step()
	a.applyRemote()
	a.handleMouse()
	st := a.machine.Status()
	a.bridge.PublishStatus(st)
	a.announceTrack(st)
	if a.quit {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.panel.Draw(screen, a.machine.Status())
}

func (a *App) Layout(_, _ int) (int, int) {
	return ui.Width, ui.Height
}

// applyRemote turns pending mailbox flags into machine transitions.
// Stop maps to pause-if-playing since the deck has no seek.
func (a *App) applyRemote() {
	if a.bridge.TakePlayPause() {
		a.machine.PlayPause()
	}
	if a.bridge.TakeNext() {
		a.machine.Next()
	}
	if a.bridge.TakeStop() && a.machine.State() == playback.StatePlaying {
		a.machine.PlayPause()
	}
}

func (a *App) handleMouse() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.dispatchPress(x, y)
	}

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		a.draggingVolume = false
	} else if a.draggingVolume {
		a.machine.SetVolume(ui.SliderValue(x))
	}
}

// announceTrack sends a desktop notification when playback moves to a
// new track. The previous bubble is replaced rather than stacked.
func (a *App) announceTrack(st playback.Status) {
	if !st.Playing || st.Track.Path == a.announcedPath {
		return
	}
	a.announcedPath = st.Track.Path

	id, err := a.notifier.Notify(notify.Notification{
		Title:      st.Track.DisplayTitle(),
		Body:       st.Track.Artist,
		Icon:       catalog.CoverArt(st.Track.Path),
		Timeout:    -1,
		ReplacesID: a.notificationID,
		Urgency:    notify.UrgencyLow,
	})
	if err != nil {
		a.log.Debug("notification failed", "err", err)
		return
	}
	if id != 0 {
		a.notificationID = id
	}
}

func (a *App) dispatchPress(x, y int) {
	switch ui.Hit(x, y) {
	case ui.ActionPlayPause:
		a.machine.PlayPause()
	case ui.ActionNext:
		a.machine.Next()
	case ui.ActionRescan:
		a.machine.RequestScan()
	case ui.ActionVolume:
		a.draggingVolume = true
		a.machine.SetVolume(ui.SliderValue(x))
	case ui.ActionClose:
		a.log.Debug("close control clicked")
		a.quit = true
	}
}
