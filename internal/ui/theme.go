package ui

import "image/color"

// Text is rendered with ebitenutil's debug font scaled up. The base
// glyphs live in a 7x14 cell, so every text metric derives from that.
const (
	textScale = 2
	charW     = 7 * textScale
	lineH     = 14 * textScale
)

var (
	backgroundColor = color.RGBA{R: 18, G: 18, B: 22, A: 255}
	borderColor     = color.RGBA{R: 64, G: 64, B: 74, A: 255}
	buttonColor     = color.RGBA{R: 44, G: 44, B: 52, A: 255}
	buttonDimColor  = color.RGBA{R: 30, G: 30, B: 36, A: 255}
	grooveColor     = color.RGBA{R: 10, G: 10, B: 12, A: 255}
	sliderFillColor = color.RGBA{R: 196, G: 122, B: 44, A: 255}
	knobColor       = color.RGBA{R: 208, G: 208, B: 214, A: 255}
)

// Brightness applied to secondary and disabled text.
const mutedBrightness = 0.55
