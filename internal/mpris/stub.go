//go:build !linux

package mpris

import "log/slog"

// Server is a no-op on non-Linux platforms.
type Server struct{}

func NewServer(_ *Bridge, _ *slog.Logger) *Server {
	return &Server{}
}

func (s *Server) Start() {}

func (s *Server) Stop() {}
