package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/avickers/tapedeck/internal/playback"
)

// Panel renders the transport controls from a status snapshot. All
// player state arrives through the snapshot; the panel itself only
// keeps a text image cache and a frame counter for the scanning
// animation.
type Panel struct {
	textCache map[string]*ebiten.Image
	tick      int
}

func NewPanel() *Panel {
	return &Panel{textCache: make(map[string]*ebiten.Image, 64)}
}

func (p *Panel) Draw(screen *ebiten.Image, st playback.Status) {
	p.tick++
	l := panelLayout()

	fillRect(screen, image.Rect(0, 0, Width, Height), backgroundColor)

	p.drawTitle(screen, l.title, st)
	p.drawCounter(screen, l.counter, st)
	p.drawTimecode(screen, l.timecode, st)
	p.drawStatusLine(screen, l.status, st)

	transport := st.HasTracks() && !st.Scanning
	p.drawButton(screen, l.play, playPauseLabel(st), transport)
	p.drawButton(screen, l.next, "Next", transport)
	p.drawButton(screen, l.rescan, "Refresh", !st.Scanning)
	p.drawButton(screen, l.close, "x", true)
	p.drawVolume(screen, l.volume, st.Volume)
}

func playPauseLabel(st playback.Status) string {
	if st.Playing {
		return "Pause"
	}
	return "Play"
}

func (p *Panel) drawTitle(screen *ebiten.Image, rect image.Rectangle, st playback.Status) {
	if !st.HasTracks() {
		p.drawMutedText(screen, "No track loaded", rect.Min.X, rect.Min.Y)
		return
	}
	name := shortenMiddle(st.Track.DisplayName(), rect.Dx()/charW)
	p.drawText(screen, name, rect.Min.X, rect.Min.Y)
}

func (p *Panel) drawCounter(screen *ebiten.Image, rect image.Rectangle, st playback.Status) {
	if !st.HasTracks() {
		return
	}
	p.drawMutedText(screen, fmt.Sprintf("Track %d/%d", st.Index+1, st.Count), rect.Min.X, rect.Min.Y)
}

func (p *Panel) drawTimecode(screen *ebiten.Image, rect image.Rectangle, st playback.Status) {
	if !st.State.IsActive() {
		return
	}
	text := formatDuration(st.Position) + " / " + formatDuration(st.Duration)
	p.drawMutedText(screen, text, rect.Max.X-len(text)*charW, rect.Min.Y)
}

func (p *Panel) drawStatusLine(screen *ebiten.Image, rect image.Rectangle, st playback.Status) {
	switch {
	case st.Scanning:
		dots := strings.Repeat(".", 1+p.tick/20%3)
		p.drawText(screen, "Scanning"+dots, rect.Min.X, rect.Min.Y)
	case !st.HasTracks():
		msg := shortenMiddle("No tracks in "+st.Dir, rect.Dx()/charW)
		p.drawMutedText(screen, msg, rect.Min.X, rect.Min.Y)
	}
}

func (p *Panel) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	fill := buttonColor
	if !enabled {
		fill = buttonDimColor
	}
	fillRect(screen, rect, fill)
	strokeRect(screen, rect, borderColor)
	labelW := len([]rune(label)) * charW
	x := rect.Min.X + (rect.Dx()-labelW)/2
	y := rect.Min.Y + (rect.Dy()-lineH)/2
	if enabled {
		p.drawText(screen, label, x, y)
	} else {
		p.drawMutedText(screen, label, x, y)
	}
}

func (p *Panel) drawVolume(screen *ebiten.Image, rect image.Rectangle, volume float64) {
	label := fmt.Sprintf("Vol %d%%", int(volume*100+0.5))
	p.drawText(screen, label, rect.Min.X+8, rect.Min.Y+(rect.Dy()-lineH)/2)

	gx, gw := sliderGroove(rect)
	gy := rect.Min.Y + rect.Dy()/2 - 4
	fillRect(screen, image.Rect(gx, gy, gx+gw, gy+8), grooveColor)
	strokeRect(screen, image.Rect(gx, gy, gx+gw, gy+8), borderColor)

	fw := int(float64(gw) * clamp(volume, 0, 1))
	if fw > 2 {
		fillRect(screen, image.Rect(gx+1, gy+1, gx+fw, gy+7), sliderFillColor)
	}

	kx := gx + fw - 5
	if kx < gx {
		kx = gx
	}
	if kx > gx+gw-10 {
		kx = gx + gw - 10
	}
	fillRect(screen, image.Rect(kx, gy-5, kx+10, gy+13), knobColor)
}

func fillRect(screen *ebiten.Image, rect image.Rectangle, c color.Color) {
	ebitenutil.DrawRect(screen, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), c)
}

func strokeRect(screen *ebiten.Image, rect image.Rectangle, c color.Color) {
	x, y := float64(rect.Min.X), float64(rect.Min.Y)
	w, h := float64(rect.Dx()), float64(rect.Dy())
	ebitenutil.DrawRect(screen, x, y, w, 1, c)
	ebitenutil.DrawRect(screen, x, y+h-1, w, 1, c)
	ebitenutil.DrawRect(screen, x, y, 1, h, c)
	ebitenutil.DrawRect(screen, x+w-1, y, 1, h, c)
}

func (p *Panel) drawText(screen *ebiten.Image, msg string, x, y int) {
	p.drawTextBright(screen, msg, x, y, 1)
}

func (p *Panel) drawMutedText(screen *ebiten.Image, msg string, x, y int) {
	p.drawTextBright(screen, msg, x, y, mutedBrightness)
}

func (p *Panel) drawTextBright(screen *ebiten.Image, msg string, x, y int, brightness float32) {
	if msg == "" {
		return
	}
	img := p.textCache[msg]
	if img == nil {
		img = ebiten.NewImage(max(1, len([]rune(msg))*7), 14)
		ebitenutil.DebugPrintAt(img, msg, 0, 0)
		if len(p.textCache) > 512 {
			p.textCache = make(map[string]*ebiten.Image, 64)
		}
		p.textCache[msg] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.Scale(brightness, brightness, brightness, 1)
	screen.DrawImage(img, op)
}
