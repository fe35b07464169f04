package ui

import "image"

// Panel dimensions in logical pixels. The window is not resizable, so
// the layout is fixed and shared by Draw and Hit.
const (
	Width  = 480
	Height = 240
)

const (
	pad  = 12
	rowH = 40
)

// Action identifies the control under a mouse press.
type Action int

const (
	ActionNone Action = iota
	ActionPlayPause
	ActionNext
	ActionRescan
	ActionVolume
	ActionClose
)

type layout struct {
	title, counter, timecode, status image.Rectangle
	play, next, rescan, close        image.Rectangle
	volume                           image.Rectangle
}

func panelLayout() layout {
	closeRect := image.Rect(Width-pad-28, pad, Width-pad, pad+28)
	titleRect := image.Rect(pad, pad, closeRect.Min.X-8, pad+lineH)

	infoTop := titleRect.Max.Y + 6
	counterRect := image.Rect(pad, infoTop, Width/2, infoTop+lineH)
	timecodeRect := image.Rect(Width/2, infoTop, Width-pad, infoTop+lineH)

	statusTop := counterRect.Max.Y + 6
	statusRect := image.Rect(pad, statusTop, Width-pad, statusTop+lineH)

	volumeRect := image.Rect(pad, Height-pad-rowH, Width-pad, Height-pad)
	controlsTop := volumeRect.Min.Y - 10 - rowH
	playRect := image.Rect(pad, controlsTop, pad+120, controlsTop+rowH)
	nextRect := image.Rect(playRect.Max.X+8, controlsTop, playRect.Max.X+98, controlsTop+rowH)
	rescanRect := image.Rect(nextRect.Max.X+8, controlsTop, nextRect.Max.X+128, controlsTop+rowH)

	return layout{
		title: titleRect, counter: counterRect, timecode: timecodeRect, status: statusRect,
		play: playRect, next: nextRect, rescan: rescanRect, close: closeRect,
		volume: volumeRect,
	}
}

// Hit maps a mouse position to the control it lands on.
func Hit(x, y int) Action {
	l := panelLayout()
	switch {
	case pointInRect(x, y, l.play):
		return ActionPlayPause
	case pointInRect(x, y, l.next):
		return ActionNext
	case pointInRect(x, y, l.rescan):
		return ActionRescan
	case pointInRect(x, y, l.close):
		return ActionClose
	case pointInRect(x, y, l.volume):
		return ActionVolume
	}
	return ActionNone
}

// SliderValue maps a mouse x position onto the volume groove,
// clamped to [0, 1]. The y position is deliberately ignored so a
// drag keeps tracking after the cursor leaves the slider row.
func SliderValue(x int) float64 {
	gx, gw := sliderGroove(panelLayout().volume)
	return clamp(float64(x-gx)/float64(gw), 0, 1)
}

// sliderGroove positions the groove inside the volume row, leaving
// room for the "Vol 100%" label on the left.
func sliderGroove(rect image.Rectangle) (x, w int) {
	return rect.Min.X + 130, rect.Dx() - 146
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
