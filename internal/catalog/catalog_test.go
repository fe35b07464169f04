package catalog

import "testing"

func TestTrack_DisplayName(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		want  string
	}{
		{
			name:  "artist and title",
			track: Track{Path: "music/01.mp3", Title: "Night Drive", Artist: "Mola"},
			want:  "Mola - Night Drive",
		},
		{
			name:  "title only",
			track: Track{Path: "music/01.mp3", Title: "Night Drive"},
			want:  "Night Drive",
		},
		{
			name:  "no tags falls back to filename",
			track: Track{Path: "music/01.mp3"},
			want:  "01.mp3",
		},
		{
			name:  "artist without title uses filename",
			track: Track{Path: "music/01.mp3", Artist: "Mola"},
			want:  "Mola - 01.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalog_Track(t *testing.T) {
	c := New([]Track{{Path: "a.mp3"}, {Path: "b.wav"}})

	tests := []struct {
		name     string
		index    int
		wantPath string
		wantOK   bool
	}{
		{name: "first", index: 0, wantPath: "a.mp3", wantOK: true},
		{name: "last", index: 1, wantPath: "b.wav", wantOK: true},
		{name: "negative", index: -1, wantOK: false},
		{name: "past end", index: 2, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, ok := c.Track(tt.index)
			if ok != tt.wantOK {
				t.Fatalf("Track(%d) ok = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if ok && track.Path != tt.wantPath {
				t.Errorf("Track(%d).Path = %q, want %q", tt.index, track.Path, tt.wantPath)
			}
		})
	}
}

func TestCatalog_IndexOf(t *testing.T) {
	c := New([]Track{{Path: "a.mp3"}, {Path: "b.wav"}})

	if got := c.IndexOf("b.wav"); got != 1 {
		t.Errorf("IndexOf(b.wav) = %d, want 1", got)
	}
	if got := c.IndexOf("missing.mp3"); got != -1 {
		t.Errorf("IndexOf(missing.mp3) = %d, want -1", got)
	}
	if got := New(nil).IndexOf("a.mp3"); got != -1 {
		t.Errorf("IndexOf on empty catalog = %d, want -1", got)
	}
}

func TestCatalog_Tracks_ReturnsCopy(t *testing.T) {
	c := New([]Track{{Path: "a.mp3"}})

	tracks := c.Tracks()
	tracks[0].Path = "mutated.mp3"

	track, _ := c.Track(0)
	if track.Path != "a.mp3" {
		t.Errorf("catalog mutated through Tracks() copy: path = %q", track.Path)
	}
}

func TestCatalog_Empty(t *testing.T) {
	if !New(nil).Empty() {
		t.Error("New(nil).Empty() = false, want true")
	}
	if New([]Track{{Path: "a.mp3"}}).Empty() {
		t.Error("non-empty catalog reported Empty()")
	}
}
