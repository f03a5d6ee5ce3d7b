// cmd/circle/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-magic-circle/internal/config"
	"go-magic-circle/internal/defs"
	"go-magic-circle/internal/state"
	"go-magic-circle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromMenu = false // true — начинать с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	endpoint := flag.String("endpoint", "", "hand detector HTTP endpoint (empty: built-in demo cycle)")
	streamURL := flag.String("stream", "", "MJPEG webcam stream URL (empty: synthetic frames)")
	replayPath := flag.String("replay", "", "gesture replay file (.jsonl)")
	seed := flag.Int64("seed", 0, "particle layout seed (0: time-based)")
	ornamentsPath := flag.String("ornaments", "", "ornament definitions JSON (empty: built-in)")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if err := defs.LoadOrnamentDefinitions(*ornamentsPath); err != nil {
		log.Fatalf("failed to load ornament definitions: %v", err)
	}

	fontFace, err := ui.LoadFace(config.FontSize)
	if err != nil {
		log.Printf("font unavailable, glyphs disabled: %v", err)
		fontFace = nil
	}

	opts := state.Options{
		Endpoint:   *endpoint,
		StreamURL:  *streamURL,
		ReplayPath: *replayPath,
		Seed:       *seed,
	}

	sm := state.NewStateMachine()
	if startFromMenu {
		sm.SetState(state.NewMenuState(sm, opts, fontFace))
	} else {
		sm.SetState(state.NewVisualState(sm, opts, fontFace))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Magic Circle")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
