package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starblaster/combat"
	"github.com/milk9111/starblaster/common"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/system"
	"github.com/milk9111/starblaster/game"
	"github.com/milk9111/starblaster/prefabs"
	"github.com/milk9111/starblaster/scores"
)

type Options struct {
	Tuning  *prefabs.Tuning
	Policy  *system.BossPolicy
	RNG     combat.RNG
	Palette *prefabs.PaletteSpec
	Store   scores.Store
	Watcher *prefabs.Watcher
	Name    string
	Debug   bool
}

// Game adapts a game.Session to ebiten's Update/Draw loop.
type Game struct {
	session *game.Session
	store   scores.Store
	watcher *prefabs.Watcher
	palette *prefabs.PaletteSpec
	name    string
	debug   bool

	frame     game.Frame
	highScore []scores.Entry

	ui      *ebitenui.UI
	uiState game.State
	uiDirty bool
}

func NewGame(opts Options) (*Game, error) {
	session, err := game.NewSession(opts.Tuning, opts.Policy, opts.RNG)
	if err != nil {
		return nil, err
	}
	g := &Game{
		session: session,
		store:   opts.Store,
		watcher: opts.Watcher,
		palette: opts.Palette,
		name:    opts.Name,
		debug:   opts.Debug,
		uiDirty: true,
	}
	if g.store != nil {
		table, err := g.store.Load()
		if err != nil {
			log.Printf("%v", err)
		}
		g.highScore = table
	}
	g.frame = session.Frame()
	return g, nil
}

func (g *Game) Update() error {
	g.pollWatcher()

	dt := 1000 / float64(ebiten.TPS())
	g.frame = g.session.Step(dt, readIntents())
	for _, evt := range g.frame.Events {
		if evt.Type == ecs.EventGameOver {
			g.submitScore(int(evt.Value))
		}
	}

	if g.frame.State != g.uiState {
		g.uiDirty = true
	}
	if g.uiDirty {
		g.ui = NewMenuUI(g, g.frame.State)
		g.uiState = g.frame.State
		g.uiDirty = false
	}
	if g.ui != nil {
		g.ui.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawFrame(screen, g.frame, g.palette)
	if g.frame.State == game.Running || g.frame.State == game.Paused || g.frame.State == game.GameOver {
		drawHUD(screen, g.frame.HUD)
		drawAnnouncements(screen, g.frame.Announcements)
	}
	if g.ui != nil {
		g.ui.Draw(screen)
	}
	if g.debug {
		drawDebug(screen, fmt.Sprintf("FPS: %.2f  entities: %d  kinds: %d  t=%.0fms", ebiten.ActualFPS(), len(g.frame.Entities), component.Registered(), g.session.Now()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	arena := g.session.Tuning().Arena
	if arena.Width <= 0 || arena.Height <= 0 {
		return common.BaseWidth, common.BaseHeight
	}
	return arena.Width, arena.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// refresh rebuilds the menu and snapshot after a menu action changed the
// session outside Step.
func (g *Game) refresh() {
	g.frame = g.session.Frame()
	g.uiDirty = true
}

func (g *Game) submitScore(score int) {
	if g.store == nil {
		return
	}
	table, err := g.store.Submit(scores.Entry{Name: g.name, Score: score})
	if err != nil {
		log.Printf("%v", err)
		g.highScore = scores.Insert(g.highScore, scores.Entry{Name: g.name, Score: score})
		return
	}
	g.highScore = table
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		log.Printf("prefabs: watch: %v", err)
	}
	if changed.Empty() {
		return
	}
	if err := g.session.Reload(changed); err != nil {
		log.Printf("prefabs: reload %v: %v", changed.Files, err)
		return
	}
	if g.debug {
		log.Printf("prefabs: reloaded %v", changed.Files)
	}
}
