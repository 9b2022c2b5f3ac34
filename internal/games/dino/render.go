package dino

import (
	"fmt"

	"github.com/vovakirdan/dino-gym/internal/core"
)

// Visual characters for rendering
const (
	RunnerChar = '█'
	RunnerEye  = '▪'
	CactusChar = '▓'
	BirdChar   = '▼'
	CloudChar  = '░'
	GroundChar = '═'
)

// Render draws the engine state onto dst. The playfield is scaled so that
// its full width and the band from the top down to the ground line fill the
// screen below a one-line HUD. It only reads from the engine.
func Render(dst *core.Screen, e *Engine, frame int) {
	dst.Clear()
	if dst.Width() < 10 || dst.Height() < 6 {
		dst.DrawText(0, 0, "too small")
		return
	}

	cfg := e.Config()
	groundRow := dst.Height() - 2
	sx := float64(dst.Width()) / cfg.Playfield.Width
	sy := float64(groundRow-1) / cfg.GroundLine()
	view := core.NewRect(0, 1, dst.Width(), groundRow-1)
	project := func(b core.Box) core.Rect {
		r := b.Scale(sx, sy)
		r.Y = core.Clamp(r.Y+1, 1, groundRow-1) // below the HUD
		if r.Bottom() > groundRow {
			r.H = core.Max(groundRow-r.Y, 1)
		}
		return r
	}

	for _, d := range e.Decorations() {
		if r := project(d.Box()); r.Intersects(view) {
			dst.DrawRect(r, CloudChar, core.ColorGray)
		}
	}

	// Ground with a scrolling texture
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorWhite)
	for x := (dst.Width() - frame%8); x >= 0; x -= 8 {
		dst.SetColored(x, groundRow+1, '·', core.ColorGray)
	}

	for _, o := range e.Obstacles() {
		r := project(o.Box())
		if !r.Intersects(view) {
			continue
		}
		if o.Kind == KindGround {
			dst.DrawRect(r, CactusChar, core.ColorGreen)
			continue
		}
		dst.DrawRect(r, BirdChar, core.ColorYellow)
	}

	runner := e.Runner()
	color := core.ColorBrightWhite
	if e.Terminated() {
		color = core.ColorRed
	}
	r := project(runner.Box())
	dst.DrawRect(r, RunnerChar, color)
	dst.SetColored(r.Right()-1, r.Y, RunnerEye, core.ColorDefault)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %05d ", e.Score()))
	speedText := fmt.Sprintf(" Speed: %5.2f ", e.Speed())
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	// Draw text
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
