package catalog

import "path/filepath"

// Track is one playable audio file discovered by a scan. Identity is
// the path; Title and Artist come from embedded tags when readable.
type Track struct {
	Path   string
	Title  string
	Artist string
}

// DisplayTitle returns the tagged title, falling back to the base
// filename for untagged files.
func (t Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return filepath.Base(t.Path)
}

// DisplayName returns the label shown for this track in the panel:
// "Artist - Title" when both are tagged, the title alone otherwise.
func (t Track) DisplayName() string {
	if t.Artist != "" {
		return t.Artist + " - " + t.DisplayTitle()
	}
	return t.DisplayTitle()
}
