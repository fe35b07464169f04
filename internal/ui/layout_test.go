package ui

import (
	"image"
	"math"
	"testing"
)

func centerOf(r image.Rectangle) image.Point {
	return r.Min.Add(r.Max).Div(2)
}

func TestPanelLayout_FitsPanel(t *testing.T) {
	bounds := image.Rect(0, 0, Width, Height)
	l := panelLayout()
	rects := map[string]image.Rectangle{
		"title":    l.title,
		"counter":  l.counter,
		"timecode": l.timecode,
		"status":   l.status,
		"play":     l.play,
		"next":     l.next,
		"rescan":   l.rescan,
		"close":    l.close,
		"volume":   l.volume,
	}
	for name, r := range rects {
		if r.Empty() {
			t.Errorf("%s rect is empty", name)
		}
		if !r.In(bounds) {
			t.Errorf("%s rect %v overflows panel %v", name, r, bounds)
		}
	}
}

func TestPanelLayout_ControlsDoNotOverlap(t *testing.T) {
	l := panelLayout()
	controls := []struct {
		name string
		rect image.Rectangle
	}{
		{"play", l.play},
		{"next", l.next},
		{"rescan", l.rescan},
		{"close", l.close},
		{"volume", l.volume},
	}
	for i, a := range controls {
		for _, b := range controls[i+1:] {
			if a.rect.Overlaps(b.rect) {
				t.Errorf("%s %v overlaps %s %v", a.name, a.rect, b.name, b.rect)
			}
		}
	}
}

func TestHit(t *testing.T) {
	l := panelLayout()
	tests := []struct {
		name string
		at   image.Point
		want Action
	}{
		{"play button", centerOf(l.play), ActionPlayPause},
		{"next button", centerOf(l.next), ActionNext},
		{"refresh button", centerOf(l.rescan), ActionRescan},
		{"close box", centerOf(l.close), ActionClose},
		{"volume row", centerOf(l.volume), ActionVolume},
		{"gap between buttons", image.Pt(l.play.Max.X+2, centerOf(l.play).Y), ActionNone},
		{"title is not a control", image.Pt(l.title.Min.X+1, l.title.Min.Y+1), ActionNone},
		{"outside panel", image.Pt(-1, -1), ActionNone},
		{"past bottom edge", image.Pt(Width/2, Height+10), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hit(tt.at.X, tt.at.Y); got != tt.want {
				t.Errorf("Hit(%d, %d) = %v, want %v", tt.at.X, tt.at.Y, got, tt.want)
			}
		})
	}
}

func TestSliderValue(t *testing.T) {
	gx, gw := sliderGroove(panelLayout().volume)
	tests := []struct {
		name string
		x    int
		want float64
	}{
		{"left edge", gx, 0},
		{"right edge", gx + gw, 1},
		{"middle", gx + gw/2, 0.5},
		{"left of groove", gx - 40, 0},
		{"right of groove", gx + gw + 40, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SliderValue(tt.x)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("SliderValue(%d) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestSliderValue_Monotone(t *testing.T) {
	prev := -1.0
	for x := 0; x <= Width; x += 10 {
		v := SliderValue(x)
		if v < prev {
			t.Fatalf("SliderValue(%d) = %v, below previous %v", x, v, prev)
		}
		prev = v
	}
}
