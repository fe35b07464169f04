package catalog

// Catalog is the ordered list of tracks found by one scan. Order is
// discovery order and stable within a scan. A rescan replaces the
// whole catalog; it is never mutated in place.
type Catalog struct {
	tracks []Track
}

// New builds a catalog from a scanned track list.
func New(tracks []Track) Catalog {
	return Catalog{tracks: tracks}
}

// Len returns the number of tracks.
func (c Catalog) Len() int {
	return len(c.tracks)
}

// Empty reports whether the catalog holds no tracks.
func (c Catalog) Empty() bool {
	return len(c.tracks) == 0
}

// Track returns the track at index i, or false when i is out of range.
func (c Catalog) Track(i int) (Track, bool) {
	if i < 0 || i >= len(c.tracks) {
		return Track{}, false
	}
	return c.tracks[i], true
}

// IndexOf returns the position of the track with the given path, or -1
// when no track has that path.
func (c Catalog) IndexOf(path string) int {
	for i, t := range c.tracks {
		if t.Path == path {
			return i
		}
	}
	return -1
}

// Tracks returns a copy of the track list.
func (c Catalog) Tracks() []Track {
	out := make([]Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}
