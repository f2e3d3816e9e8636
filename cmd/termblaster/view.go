package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/starblaster/game"
	"github.com/milk9111/starblaster/prefabs"
	"github.com/milk9111/starblaster/scores"
)

// hudRows are reserved at the top of the terminal for the status lines.
const hudRows = 2

// viewport maps arena coordinates onto terminal cells below the HUD.
type viewport struct {
	arenaW, arenaH float64
	cols, rows     int
}

func (v viewport) cell(x, y float64) (int, int) {
	if v.arenaW <= 0 || v.arenaH <= 0 || v.cols <= 0 || v.rows <= hudRows {
		return -1, -1
	}
	col := int(x / v.arenaW * float64(v.cols))
	row := hudRows + int(y/v.arenaH*float64(v.rows-hudRows))
	return col, row
}

// span returns the cells covered by a center-anchored rect, at least one.
func (v viewport) span(e game.EntitySnapshot) (x0, y0, x1, y1 int) {
	x0, y0 = v.cell(e.X-e.Width/2, e.Y-e.Height/2)
	x1, y1 = v.cell(e.X+e.Width/2, e.Y+e.Height/2)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func glyphFor(key string) rune {
	family, _, _ := strings.Cut(key, ".")
	switch family {
	case "player":
		return 'A'
	case "sidekick":
		return 'a'
	case "enemy":
		return 'V'
	case "boss":
		return 'W'
	case "projectile":
		if key == "projectile.missile" {
			return '!'
		}
		return '|'
	case "powerup":
		return '+'
	case "hazard":
		if key == "hazard.black_hole" {
			return '@'
		}
		return '#'
	case "weak_point":
		return '*'
	}
	return '?'
}

func styleFor(palette *prefabs.PaletteSpec, key string) tcell.Style {
	style := tcell.StyleDefault
	if c, ok := palette.Color(key); ok {
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		return style.Foreground(tcell.NewRGBColor(int32(nc.R), int32(nc.G), int32(nc.B)))
	}
	return style.Foreground(tcell.ColorWhite)
}

type view struct {
	screen  tcell.Screen
	palette *prefabs.PaletteSpec
}

func (v *view) draw(frame game.Frame, arenaW, arenaH float64, finalScore int, table []scores.Entry, archetypes []string) {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	vp := viewport{arenaW: arenaW, arenaH: arenaH, cols: cols, rows: rows}

	for _, e := range frame.Entities {
		x0, y0, x1, y1 := vp.span(e)
		glyph := glyphFor(e.Key)
		style := styleFor(v.palette, e.Key)
		if e.Shielded || e.Invulnerable {
			style = style.Reverse(true)
		}
		for y := max(y0, hudRows); y < y1 && y < rows; y++ {
			for x := max(x0, 0); x < x1 && x < cols; x++ {
				v.screen.SetContent(x, y, glyph, nil, style)
			}
		}
	}

	switch frame.State {
	case game.MainMenu:
		lines := []string{"STARBLASTER", "", "Enter to start, q to quit", "", "High Scores"}
		v.center(rows, append(lines, scoreLines(table)...))
	case game.CharacterSelect:
		lines := []string{"Choose your ship", ""}
		for i, name := range archetypes {
			lines = append(lines, fmt.Sprintf("%d  %s", i+1, name))
		}
		v.center(rows, lines)
	default:
		v.hud(frame.HUD)
		v.announcements(rows, frame.Announcements)
		switch frame.State {
		case game.Paused:
			v.center(rows, []string{"Paused", "", "p to resume, m for main menu"})
		case game.GameOver:
			lines := []string{"Game Over", fmt.Sprintf("Final score: %d", finalScore), ""}
			lines = append(lines, scoreLines(table)...)
			v.center(rows, append(lines, "", "m for main menu"))
		}
	}
	v.screen.Show()
}

func (v *view) hud(hud game.HUD) {
	line := fmt.Sprintf("%s HP %.0f/%.0f  Score %d  Kills %d  Combo x%d %.1fx  %s %.0f%%",
		hud.Archetype, hud.Health, hud.MaxHealth, hud.Score, hud.Kills,
		hud.ComboLevel, hud.ComboMultiplier, hud.SpecialName, hud.SpecialCooldown*100)
	v.text(0, 0, line, tcell.StyleDefault.Bold(true))

	var statuses []string
	for _, st := range append(append([]game.Status(nil), hud.Statuses...), hud.Effects...) {
		statuses = append(statuses, fmt.Sprintf("%s %.1fs", st.Name, st.Remaining/1000))
	}
	if hud.ShieldCharges > 0 {
		statuses = append(statuses, fmt.Sprintf("Shield %d", hud.ShieldCharges))
	}
	v.text(0, 1, strings.Join(statuses, "  "), tcell.StyleDefault)
}

func (v *view) announcements(rows int, list []game.Announcement) {
	cols, _ := v.screen.Size()
	for i, a := range list {
		style := tcell.StyleDefault.Bold(true)
		if a.Alpha < 0.5 {
			style = tcell.StyleDefault.Dim(true)
		}
		row := rows/4 + i
		v.text((cols-len(a.Message))/2, row, a.Message, style)
	}
}

func (v *view) center(rows int, lines []string) {
	cols, _ := v.screen.Size()
	top := (rows - len(lines)) / 2
	for i, line := range lines {
		v.text((cols-len(line))/2, top+i, line, tcell.StyleDefault.Reverse(i == 0))
	}
}

func (v *view) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func scoreLines(table []scores.Entry) []string {
	if len(table) == 0 {
		return []string{"no scores yet"}
	}
	lines := make([]string, 0, len(table))
	for i, e := range table {
		lines = append(lines, fmt.Sprintf("%2d. %-12s %8d", i+1, e.Name, e.Score))
	}
	return lines
}
