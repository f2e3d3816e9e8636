package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/starblaster/common"
	"github.com/milk9111/starblaster/game"
	"github.com/milk9111/starblaster/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	healthBarHeight = 4
	announceScale   = 2
	announceTop     = 160
	announceLine    = 32
)

var announceFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func colorFor(palette *prefabs.PaletteSpec, key string) color.Color {
	if c, ok := palette.Color(key); ok {
		return c
	}
	return colornames.White
}

// drawFrame draws every snapshot as a rect, back to front.
func drawFrame(screen *ebiten.Image, frame game.Frame, palette *prefabs.PaletteSpec) {
	screen.Fill(colornames.Black)

	for _, e := range frame.Entities {
		x := float32(e.X - e.Width/2)
		y := float32(e.Y - e.Height/2)
		w, h := float32(e.Width), float32(e.Height)

		vector.FillRect(screen, x, y, w, h, colorFor(palette, e.Key), false)

		switch {
		case e.Shielded:
			vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, colornames.Deepskyblue, false)
		case e.Invulnerable:
			vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, colornames.White, false)
		case e.SpecialActive:
			vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, colornames.Gold, false)
		}

		if e.Boss && e.MaxHealth > 0 {
			ratio := float32(common.Clamp(e.Health/e.MaxHealth, 0, 1))
			vector.FillRect(screen, x, y-healthBarHeight*3, w, healthBarHeight, colornames.Dimgray, false)
			vector.FillRect(screen, x, y-healthBarHeight*3, w*ratio, healthBarHeight, colornames.Red, false)
			ebitenutil.DebugPrintAt(screen, e.Label, int(x), int(y)-healthBarHeight*3-16)
		}
	}
}

func drawHUD(screen *ebiten.Image, hud game.HUD) {
	line := fmt.Sprintf("%s  HP %.0f/%.0f  Score %d  Kills %d  Combo x%d (%d) %.1fx",
		hud.Archetype, hud.Health, hud.MaxHealth, hud.Score, hud.Kills,
		hud.ComboLevel, hud.ComboCount, hud.ComboMultiplier)
	ebitenutil.DebugPrintAt(screen, line, 8, 8)

	special := fmt.Sprintf("%s %3.0f%%", hud.SpecialName, hud.SpecialCooldown*100)
	if hud.SpecialActive {
		special += " ACTIVE"
	}
	if hud.ShieldCharges > 0 {
		special += fmt.Sprintf("  Shield %d", hud.ShieldCharges)
	}
	ebitenutil.DebugPrintAt(screen, special, 8, 24)

	var statuses []string
	for _, st := range append(append([]game.Status(nil), hud.Statuses...), hud.Effects...) {
		statuses = append(statuses, fmt.Sprintf("%s %.1fs", st.Name, st.Remaining/1000))
	}
	if len(statuses) > 0 {
		ebitenutil.DebugPrintAt(screen, strings.Join(statuses, "  "), 8, 40)
	}
	ebitenutil.DebugPrintAt(screen, formatElapsed(hud.Elapsed), common.BaseWidth-64, 8)
}

func drawAnnouncements(screen *ebiten.Image, announcements []game.Announcement) {
	cx := float64(screen.Bounds().Dx()) / 2
	for i, a := range announcements {
		op := &ebtext.DrawOptions{}
		op.GeoM.Scale(announceScale, announceScale)
		op.GeoM.Translate(cx, float64(announceTop+i*announceLine))
		op.ColorScale.ScaleAlpha(a.Alpha)
		op.PrimaryAlign = ebtext.AlignCenter
		ebtext.Draw(screen, a.Message, announceFace, op)
	}
}

func drawDebug(screen *ebiten.Image, msg string) {
	ebitenutil.DebugPrintAt(screen, msg, 8, screen.Bounds().Dy()-20)
}

func formatElapsed(ms float64) string {
	secs := int(ms / 1000)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
