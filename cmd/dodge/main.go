//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"dodge/internal/app"
	"dodge/internal/core"
	"dodge/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gameCfg, err := cfg.GameConfig()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Dodge")

	session := game.NewSession(gameCfg, cfg.RNG())
	g := app.New(app.NewDriver(session, core.SystemClock{}))
	size := gameCfg.Size()

	ebiten.SetWindowTitle(app.Title)
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(int(float64(size.W)*cfg.Scale), int(float64(size.H)*cfg.Scale))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("final score %d", session.Score())
}
