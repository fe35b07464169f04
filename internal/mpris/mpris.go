//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"log/slog"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/avickers/tapedeck/internal/catalog"
	"github.com/avickers/tapedeck/internal/playback"
)

// Server exposes the player on the session bus as
// org.mpris.MediaPlayer2.tapedeck. Method and property handlers run on
// D-Bus goroutines and reach the player only through the Bridge.
type Server struct {
	srv *server.Server
	log *slog.Logger
}

func NewServer(bridge *Bridge, log *slog.Logger) *Server {
	return &Server{
		srv: server.NewServer("tapedeck", &rootAdapter{}, &playerAdapter{bridge: bridge}),
		log: log.With("component", "mpris"),
	}
}

// Start serves the MPRIS interface in the background. Remote control
// is an optional surface: a session bus failure is logged and the
// player keeps running without it.
func (s *Server) Start() {
	go func() {
		if err := s.srv.Listen(); err != nil {
			s.log.Warn("mpris unavailable", "err", err)
		}
	}()
}

func (s *Server) Stop() {
	if err := s.srv.Stop(); err != nil {
		s.log.Debug("mpris shutdown", "err", err)
	}
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - the window close control quits
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Tapedeck", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	bridge *Bridge
}

func (p *playerAdapter) Next() error {
	p.bridge.RequestNext()
	return nil
}

func (p *playerAdapter) Previous() error {
	return nil // Not supported - the deck only advances
}

func (p *playerAdapter) Pause() error {
	p.bridge.RequestStop()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.bridge.RequestPlayPause()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.bridge.RequestStop()
	return nil
}

func (p *playerAdapter) Play() error {
	// The snapshot may lag a frame behind; a toggle fired on stale
	// state is the accepted worst case.
	if !p.bridge.CurrentStatus().Playing {
		p.bridge.RequestPlayPause()
	}
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.bridge.CurrentStatus().State {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatePaused:
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.bridge.CurrentStatus()
	if !st.HasTracks() {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(trackID(st.Track.Path)),
		Length:  types.Microseconds(st.Duration.Microseconds()),
		Title:   st.Track.DisplayTitle(),
	}
	if st.Track.Artist != "" {
		meta.Artist = []string{st.Track.Artist}
	}
	if art := catalog.CoverArt(st.Track.Path); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.bridge.CurrentStatus().Volume, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.bridge.CurrentStatus().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.bridge.CurrentStatus().HasTracks(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.bridge.CurrentStatus().HasTracks(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func trackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
