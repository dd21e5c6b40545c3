package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var hudBackground = color.RGBA{0, 0, 0, 128}

// updateHUD refreshes the overlay text every hudRefreshEvery seconds.
func (s *Scene) updateHUD(dt float64) {
	s.hudTimer += dt
	if s.hud != "" && s.hudTimer < hudRefreshEvery {
		return
	}
	s.hudTimer = 0
	s.hud = hudText(ebiten.ActualFPS(), ebiten.ActualTPS(), s.field.Flames().Len(),
		s.field.Stars().Len(), s.field.Respawns(), s.paused)
}

func hudText(fps, tps float64, flames, stars int, respawns uint64, paused bool) string {
	text := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nflames: %d stars: %d\nrespawns: %d",
		fps, tps, flames, stars, respawns)
	if paused {
		text += "\npaused"
	}
	return text
}

// drawHUD prints the overlay in the top-left corner.
func (s *Scene) drawHUD(screen *ebiten.Image) {
	screen.SubImage(image.Rect(0, 0, 170, 72)).(*ebiten.Image).Fill(hudBackground)
	ebitenutil.DebugPrint(screen, s.hud)
}
