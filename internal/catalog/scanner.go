package catalog

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Scanner enumerates a single directory for playable tracks. It never
// fails: filesystem trouble degrades to a partial or empty catalog and
// is reported through the logger only.
type Scanner struct {
	dir string
	log *slog.Logger
}

func NewScanner(dir string, log *slog.Logger) *Scanner {
	return &Scanner{dir: dir, log: log.With("component", "scanner")}
}

// Dir returns the directory this scanner reads.
func (s *Scanner) Dir() string {
	return s.dir
}

// Scan enumerates the directory once, non-recursively, and returns the
// tracks with a supported extension. A missing directory is created
// best-effort; an enumeration error keeps whatever entries were read
// before it.
func (s *Scanner) Scan() Catalog {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Warn("cannot create music directory", "dir", s.dir, "err", err)
	}

	// ReadDir returns the entries read before a failure, so a partial
	// listing still becomes a partial catalog.
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Warn("enumeration failed", "dir", s.dir, "err", err)
	}

	var tracks []Track
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !isSupported(entry.Name()) {
			continue
		}
		tracks = append(tracks, s.readTrack(filepath.Join(s.dir, entry.Name())))
	}

	if len(tracks) == 0 {
		s.log.Warn("no tracks found", "dir", s.dir)
	} else {
		s.log.Info("scan complete", "dir", s.dir, "tracks", len(tracks))
	}
	return New(tracks)
}

func isSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".mp3" || ext == ".wav"
}

// readTrack builds the track for path, pulling title and artist from
// embedded tags. Tag trouble is not an error: the base filename serves
// as the title.
func (s *Scanner) readTrack(path string) Track {
	t := Track{Path: path}

	f, err := os.Open(path)
	if err != nil {
		s.log.Debug("cannot open file for tags", "path", path, "err", err)
		return t
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		s.log.Debug("no readable tags", "path", path, "err", err)
		return t
	}
	t.Title = m.Title()
	t.Artist = m.Artist()
	return t
}
