package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/cosmosraiders/collision"
	"github.com/milk9111/cosmosraiders/common"
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/ecs/components"
	"github.com/milk9111/cosmosraiders/ecs/systems"
	"github.com/milk9111/cosmosraiders/prefabs"
	"golang.org/x/image/colornames"
)

type Game struct {
	debug      bool
	configPath string

	spec     *prefabs.RaidersSpec
	input    *components.InputState
	matrices *collision.Matrices
	round    *systems.Round
	cells    []*ebiten.Image
	watcher  *prefabs.Watcher
}

func NewGame(configPath string, debug bool) (*Game, error) {
	g := &Game{
		debug:      debug,
		configPath: configPath,
		input:      &components.InputState{},
		matrices:   collision.Load(),
		cells:      loadSpriteCells(),
	}
	spec, err := g.loadSpec()
	if err != nil {
		return nil, err
	}
	g.spec = spec
	if err := g.restart(); err != nil {
		return nil, err
	}
	g.startWatcher()
	return g, nil
}

func (g *Game) loadSpec() (*prefabs.RaidersSpec, error) {
	if g.configPath == "" {
		return prefabs.LoadRaidersSpec()
	}
	data, err := os.ReadFile(g.configPath)
	if err != nil {
		return nil, fmt.Errorf("game: read config: %w", err)
	}
	spec, err := prefabs.DecodeRaidersSpec(data)
	if err != nil {
		return nil, err
	}
	if err := prefabs.ApplyEnv(spec); err != nil {
		return nil, err
	}
	return spec, spec.Validate()
}

func (g *Game) restart() error {
	r, err := systems.NewRound(context.Background(), g.spec, g.input, g.matrices)
	if err != nil {
		return err
	}
	r.Swarm.Verbose = g.debug
	g.round = r
	return nil
}

// startWatcher watches the on-disk prefab directories, if any. Without them
// the game simply runs on the embedded tunables.
func (g *Game) startWatcher() {
	var dirs []string
	for _, dir := range []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if g.configPath != "" {
		dirs = append(dirs, filepath.Dir(g.configPath))
	}
	if len(dirs) == 0 {
		return
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("game: prefab watcher disabled: %v", err)
		return
	}
	g.watcher = w
}

// applyReloads restarts the round with fresh tunables when a watched file
// changed. A broken file keeps the current tunables.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: %s changed", name)
			changed = true
			continue
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: prefab watcher: %v", err)
			continue
		default:
		}
		break
	}
	if !changed {
		return
	}
	spec, err := g.loadSpec()
	if err != nil {
		log.Printf("game: reload tunables: %v", err)
		return
	}
	g.spec = spec
	if err := g.restart(); err != nil {
		log.Printf("game: restart round: %v", err)
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.applyReloads()

	w := g.round.World
	if w.Round().Over || w.Aliens().Len() == 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return g.restart()
		}
		return nil
	}

	pollInput(g.input)
	w.Update(1.0 / float64(ebiten.TPS()))

	if g.debug {
		for _, evt := range w.LastEvents() {
			if evt.Kind == ecs.EventAlienDestroyed {
				log.Printf("game: %s destroyed, score %d", evt.Entity, w.Round().Score)
			}
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	w := g.round.World
	for _, id := range ecs.IntersectEntities(w.Sprites(), w.Transforms()) {
		sprite, _ := w.Sprites().Get(id)
		tr, _ := w.Transforms().Get(id)
		if sprite.Index < 0 || sprite.Index >= len(g.cells) {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(toScreen(tr.Pos))
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(g.cells[sprite.Index], op)
	}

	if g.debug {
		g.round.Spatial.Index.DebugDraw(&indexDrawer{screen: screen})
	}

	round := w.Round()
	msg := fmt.Sprintf("Score: %d", round.Score)
	switch {
	case round.Over:
		msg += "    GAME OVER - press R"
	case w.Aliens().Len() == 0:
		msg += "    CLEARED - press R"
	}
	if g.debug {
		msg += fmt.Sprintf("\nTPS: %.2f  entities: %d  swarm: %s  index: %d (stale <= %d)",
			ebiten.ActualTPS(), w.EntityCount(), g.round.Swarm.State,
			g.round.Spatial.Index.Len(), g.round.Spatial.Refresher.Staleness())
	}
	ebitenutil.DebugPrint(screen, msg)
}

// toScreen converts a sprite center in field space (origin centered, y up)
// to the top-left of its cell on screen.
func toScreen(p common.Vec2) (float64, float64) {
	x := p.X + common.FieldWidth/2 - common.SpriteHalfW
	y := common.FieldHeight/2 - p.Y - common.SpriteHalfH
	return x, y
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.FieldWidth, common.FieldHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
