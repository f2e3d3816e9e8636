// Command termblaster plays the arena in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/system"
	"github.com/milk9111/starblaster/game"
	"github.com/milk9111/starblaster/prefabs"
	"github.com/milk9111/starblaster/scores"
)

const tickInterval = time.Second / 60

var (
	newScreen = tcell.NewScreen
	openStore = scores.Open
)

type app struct {
	screen  tcell.Screen
	session *game.Session
	store   scores.Store
	watcher *prefabs.Watcher
	view    *view
	keys    *keyHold
	name    string
	preset  int

	table    []scores.Entry
	lastTick time.Time
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	name := flag.String("name", "PLAYER", "name recorded with high scores")
	backend := flag.String("scores", "gdata", "high-score backend: gdata or sqlite")
	dbPath := flag.String("db", "", "sqlite file for -scores sqlite")
	watch := flag.Bool("watch", false, "reload prefabs/ tuning and scripts when they change")
	archetype := flag.Int("archetype", -1, "start straight away with archetype 0-3")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	// the screen owns stdout; logs go to a file or nowhere
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "termblaster: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", *seed)

	a, err := newApp(*seed, *name, *backend, *dbPath, *watch, *archetype)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termblaster: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}

func newApp(seed int64, name, backend, dbPath string, watch bool, preset int) (*app, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}
	policy, err := system.LoadBossPolicy(system.DefaultBossPolicy)
	if err != nil {
		return nil, err
	}
	palette, err := prefabs.LoadPalette()
	if err != nil {
		log.Printf("palette: %v", err)
	}
	session, err := game.NewSession(tuning, policy, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	store, err := openStore(backend, dbPath)
	if err != nil {
		log.Printf("%v (high scores kept in memory)", err)
		store = scores.NewGDataStore(nil)
	}
	table, err := store.Load()
	if err != nil {
		log.Printf("%v", err)
	}

	var watcher *prefabs.Watcher
	if watch {
		if watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts"); err != nil {
			log.Printf("prefabs: watch: %v", err)
			watcher = nil
		}
	}

	screen, err := newScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		closeResources(store, watcher)
		return nil, fmt.Errorf("screen: %w", err)
	}

	return &app{
		screen:  screen,
		session: session,
		store:   store,
		watcher: watcher,
		view:    &view{screen: screen, palette: palette},
		keys:    newKeyHold(),
		name:    name,
		preset:  preset,
		table:   table,
	}, nil
}

func (a *app) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	if a.preset >= 0 {
		a.session.OpenCharacterSelect()
		_ = a.session.SelectArchetype(a.preset)
	}
	a.lastTick = time.Now()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			a.tick(now)
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act := actionFor(ev)
		if act == actionQuit {
			return false
		}
		switch a.session.State() {
		case game.MainMenu:
			if act == actionConfirm || act == actionFire {
				a.session.OpenCharacterSelect()
			}
		case game.CharacterSelect:
			if ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '4' {
				_ = a.session.SelectArchetype(int(ev.Rune() - '1'))
			}
		case game.Paused, game.GameOver:
			if act == actionMenu {
				a.session.ReturnToMainMenu()
				return true
			}
		}
		if act != actionNone {
			a.keys.press(act, time.Now())
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) tick(now time.Time) {
	a.pollWatcher()

	dt := float64(now.Sub(a.lastTick)) / float64(time.Millisecond)
	a.lastTick = now
	frame := a.session.Step(dt, a.keys.intents(now))

	for _, evt := range frame.Events {
		if evt.Type == ecs.EventGameOver {
			a.submit(int(evt.Value))
		}
	}

	arena := a.session.Tuning().Arena
	a.view.draw(frame, arena.Width, arena.Height, a.session.FinalScore(), a.table, a.archetypeNames())
}

func (a *app) archetypeNames() []string {
	var names []string
	for _, stats := range a.session.Archetypes() {
		names = append(names, fmt.Sprintf("%-12s hp %3.0f  dmg %3.0f  [%s]", stats.Name, stats.MaxHealth, stats.Damage, stats.SpecialName))
	}
	return names
}

func (a *app) submit(score int) {
	table, err := a.store.Submit(scores.Entry{Name: a.name, Score: score})
	if err != nil {
		log.Printf("%v", err)
		a.table = scores.Insert(a.table, scores.Entry{Name: a.name, Score: score})
		return
	}
	a.table = table
}

func (a *app) pollWatcher() {
	if a.watcher == nil {
		return
	}
	changed, err := a.watcher.Poll()
	if err != nil {
		log.Printf("prefabs: watch: %v", err)
	}
	if changed.Empty() {
		return
	}
	if err := a.session.Reload(changed); err != nil {
		log.Printf("prefabs: reload %v: %v", changed.Files, err)
	}
}

func (a *app) cleanup() {
	a.screen.Fini()
	closeResources(a.store, a.watcher)
}

func closeResources(store scores.Store, watcher *prefabs.Watcher) {
	if watcher != nil {
		_ = watcher.Close()
	}
	if store != nil {
		if err := store.Close(); err != nil {
			log.Printf("%v", err)
		}
	}
}
