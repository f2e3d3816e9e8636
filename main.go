package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starblaster/ecs/system"
	"github.com/milk9111/starblaster/prefabs"
	"github.com/milk9111/starblaster/scores"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	name := flag.String("name", "PLAYER", "name recorded with high scores")
	backend := flag.String("scores", "gdata", "high-score backend: gdata or sqlite")
	dbPath := flag.String("db", "", "sqlite file for -scores sqlite")
	watch := flag.Bool("watch", false, "reload prefabs/ tuning and scripts when they change")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *debug {
		log.Printf("seed %d", *seed)
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}
	policy, err := system.LoadBossPolicy(system.DefaultBossPolicy)
	if err != nil {
		log.Fatal(err)
	}
	palette, err := prefabs.LoadPalette()
	if err != nil {
		log.Printf("palette: %v (using defaults)", err)
	}

	store, err := scores.Open(*backend, *dbPath)
	if err != nil {
		log.Printf("%v (high scores kept in memory)", err)
		store = scores.NewGDataStore(nil)
	}
	defer store.Close()

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefabs: watch: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(tuning.Arena.Width), int(tuning.Arena.Height))
	ebiten.SetWindowTitle("starblaster")

	g, err := NewGame(Options{
		Tuning:  tuning,
		Policy:  policy,
		RNG:     rand.New(rand.NewSource(*seed)),
		Palette: palette,
		Store:   store,
		Watcher: watcher,
		Name:    *name,
		Debug:   *debug,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
