package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/starblaster/common"
	"github.com/milk9111/starblaster/game"
	"github.com/milk9111/starblaster/scores"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type menuButton struct {
	label   string
	onClick func()
}

var (
	menuTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	menuDimColor  = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
)

// NewMenuUI builds the overlay for state, or nil while a run is in progress.
func NewMenuUI(g *Game, state game.State) *ebitenui.UI {
	switch state {
	case game.MainMenu:
		lines := append([]string{"", "High Scores"}, highScoreLines(g.highScore)...)
		return newMenuPanel("STARBLASTER", lines, []menuButton{
			{"Start", func() {
				g.session.OpenCharacterSelect()
				g.refresh()
			}},
		})
	case game.CharacterSelect:
		var buttons []menuButton
		for i, stats := range g.session.Archetypes() {
			index := i
			label := fmt.Sprintf("%-12s spd %2.0f  rate %.0f/s  dmg %3.0f  hp %3.0f  def %2.0f%%  [%s]",
				stats.Name, stats.Speed, stats.FireRate, stats.Damage, stats.MaxHealth, stats.Defense, stats.SpecialName)
			buttons = append(buttons, menuButton{label, func() {
				if err := g.session.SelectArchetype(index); err != nil {
					return
				}
				g.refresh()
			}})
		}
		return newMenuPanel("Choose your ship", nil, buttons)
	case game.Paused:
		return newMenuPanel("Paused", nil, []menuButton{
			{"Resume", func() {
				g.session.TogglePause()
				g.refresh()
			}},
			{"Main Menu", func() {
				g.session.ReturnToMainMenu()
				g.refresh()
			}},
		})
	case game.GameOver:
		lines := []string{fmt.Sprintf("Final score: %d", g.session.FinalScore()), ""}
		lines = append(lines, highScoreLines(g.highScore)...)
		return newMenuPanel("Game Over", lines, []menuButton{
			{"Main Menu", func() {
				g.session.ReturnToMainMenu()
				g.refresh()
			}},
		})
	default:
		return nil
	}
}

func highScoreLines(table []scores.Entry) []string {
	if len(table) == 0 {
		return []string{"no scores yet"}
	}
	lines := make([]string, 0, len(table))
	for i, e := range table {
		lines = append(lines, fmt.Sprintf("%2d. %-12s %8d", i+1, e.Name, e.Score))
	}
	return lines
}

// newMenuPanel builds a centered panel with a title, static lines and a
// column of buttons, using colored nine-slices and the built-in basic font.
func newMenuPanel(title string, lines []string, buttons []menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: menuTextColor}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, menuTextColor),
		widget.TextOpts.WidgetOpts(centered),
	))
	for _, line := range lines {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, menuDimColor),
			widget.TextOpts.WidgetOpts(centered),
		))
	}
	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: hoverImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
