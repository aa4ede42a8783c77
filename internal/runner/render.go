package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// GroundChar is the rune used for the ground line.
const GroundChar = '═'

// Render draws the current frame. It runs in every state and reads the
// surface size each time, so it follows resizes without touching entities.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	groundY := dst.Height() - s.cfg.Player.GroundOffset
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorGray)

	// Back to front: scrollers first, player on top
	for _, o := range s.obstacles {
		o.Draw(dst, groundY)
	}
	for _, p := range s.discoveries {
		p.Draw(dst, groundY)
	}
	s.character.Draw(dst, groundY)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.score.Display()), core.ColorBrightWhite)

	if s.over {
		dst.Dim()
		s.drawGameOver(dst)
	}
}

// drawGameOver draws the end-of-run message box in the center of the screen.
func (s *Session) drawGameOver(dst *core.Screen) {
	lines := []string{
		"Game Over!",
		fmt.Sprintf("Final Score: %d", s.score.Display()),
		"Tap or press Space to restart",
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawText(box.X+(boxW-len(l))/2, box.Y+1+i*2, l, c)
	}
}
