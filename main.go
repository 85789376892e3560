package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cosmosraiders/common"
	"github.com/milk9111/cosmosraiders/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	configPath := flag.String("config", "", "tunables yaml to load instead of prefabs/raiders.yaml")
	scale := flag.Int("scale", 2, "window scale")
	flag.Parse()

	if err := prefabs.LoadEnv(); err != nil {
		log.Fatalf("main: %v", err)
	}

	game, err := NewGame(*configPath, *debug)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(common.FieldWidth**scale, common.FieldHeight**scale)
	ebiten.SetWindowTitle("cosmos raiders")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
