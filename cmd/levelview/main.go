package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"bomb-grid/internal/game"
	"bomb-grid/internal/level"
	"bomb-grid/internal/logger"
	"bomb-grid/internal/maps"
	"bomb-grid/internal/render"
)

const (
	defaultLevelsDir = "assets/levels"
)

func main() {
	logger.Init()
	log := logger.Log

	levelsDir := flag.String("levels", defaultLevelsDir, "directory of map_<level>_<index>.txt files")
	start := flag.Int("level", 1, "level to open")
	mapIndex := flag.Int("map", 0, "map index within the level")
	ticks := flag.Int("ticks", 0, "run this many ticks then print one frame; 0 plays live until interrupted")
	seed := flag.Uint64("seed", 0, "random seed; 0 uses the process generator")
	spritesDir := flag.String("sprites", "", "directory of <sprite>.png overrides")
	var bombs bombList
	flag.Var(&bombs, "bomb", "place a bomb at x,y[,range] before the first tick (repeatable)")
	flag.Parse()

	var rng maps.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	monsters := game.NewMonsters(rng)
	reg, err := level.LoadRegistry(*levelsDir, monsters)
	if err != nil {
		log.Fatalf("Failed to load levels from %s: %v", *levelsDir, err)
	}
	defer reg.Close()

	for _, n := range reg.Numbers() {
		l, _ := reg.Level(n)
		for i := 0; i < l.MapCount(); i++ {
			m := l.Map(i)
			if rng != nil {
				m.SetRand(rng)
			}
			log.WithFields(logrus.Fields{
				"level": n, "map": m.Name, "width": m.Width(), "height": m.Height(),
				"monsters": m.Monsters().Len(),
			}).Info("map loaded")
		}
	}

	world, err := game.NewWorld(reg, *start, monsters)
	if err != nil {
		log.Fatalf("World error: %v", err)
	}
	if *mapIndex < 0 || *mapIndex >= world.Level().MapCount() {
		log.Fatalf("Level %d has no map %d", *start, *mapIndex)
	}
	world.Level().SetCurrentMap(*mapIndex)
	if err := placeBombs(world, bombs); err != nil {
		log.Fatalf("Error: %v", err)
	}

	sprites := render.DefaultSprites()
	if *spritesDir != "" {
		if sprites, err = render.LoadSpriteSet(*spritesDir); err != nil {
			log.Fatalf("Failed to load sprites from %s: %v", *spritesDir, err)
		}
	}
	engine := render.NewEngine(sprites)
	gameLoop := game.NewGameLoop(world)

	if *ticks > 0 {
		blasts := 0
		for i := 0; i < *ticks; i++ {
			blasts += len(gameLoop.Tick())
		}
		log.WithFields(logrus.Fields{"ticks": *ticks, "blasts": blasts}).Info("simulation done")
		fmt.Print(render.ClearScreen(), engine.DrawMap(world.CurrentMap()), "\n")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Print(render.HideCursor(), render.ClearScreen())
	defer fmt.Print(render.ShowCursor(), render.Reset, "\n")

	log.Infof("Playing level %d map %d, press Ctrl-C to stop", *start, *mapIndex)
	gameLoop.Run(ctx, func(tick uint64) {
		fmt.Print(engine.DrawMap(world.CurrentMap()))
	})
	log.WithField("ticks", gameLoop.Ticks()).Info("stopped")
}
