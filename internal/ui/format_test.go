package ui

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0:00"},
		{"one second", time.Second, "0:01"},
		{"under a minute", 59 * time.Second, "0:59"},
		{"exact minute", time.Minute, "1:00"},
		{"minute and second", 61 * time.Second, "1:01"},
		{"long track", 10*time.Minute + 30*time.Second, "10:30"},
		{"over an hour", time.Hour + time.Minute + 5*time.Second, "61:05"},
		{"negative clamps to zero", -5 * time.Second, "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDuration(tt.d); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestShortenMiddle(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxChars int
		want     string
	}{
		{"short enough", "abc", 10, "abc"},
		{"exact fit", "abcdefghij", 10, "abcdefghij"},
		{"elided", "abcdefghijklmnop", 10, "abc...mnop"},
		{"path keeps both ends", "/home/user/music/song.mp3", 15, "/home/...ng.mp3"},
		{"tiny limit", "abcdefgh", 3, "abc"},
		{"zero limit", "abcdefgh", 0, ""},
		{"runes not bytes", "áéíóú12345", 7, "áé...45"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shortenMiddle(tt.s, tt.maxChars)
			if got != tt.want {
				t.Errorf("shortenMiddle(%q, %d) = %q, want %q", tt.s, tt.maxChars, got, tt.want)
			}
			if r := []rune(got); len(r) > tt.maxChars && tt.maxChars > 0 {
				t.Errorf("result %q is %d runes, limit %d", got, len(r), tt.maxChars)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 7, 0, 1, 1},
		{"at low edge", 0, 0, 1, 0},
		{"at high edge", 1, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
