//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"log"

	"dodge/internal/app"
	_ "dodge/internal/backend/raylib"
	_ "dodge/internal/backend/terminal"
	"dodge/internal/core"
	"dodge/internal/game"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindBackend(flag.CommandLine)
	flag.Parse()

	gameCfg, err := cfg.GameConfig()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Dodge")

	w, err := app.OpenWindow(cfg.Backend, gameCfg.Size())
	if err != nil {
		log.Fatal(err)
	}
	session := game.NewSession(gameCfg, cfg.RNG())
	if err := app.Run(w, app.NewDriver(session, core.SystemClock{}), cfg.FPS); err != nil {
		log.Fatal(err)
	}
	log.Printf("final score %d", session.Score())
}
