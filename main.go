package main

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"ultrapong/audio"
	"ultrapong/engine"
	"ultrapong/game"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	playFrameDelay = 16 // ~60 Hz while the simulation runs
	menuFrameDelay = 33 // the menu idles at ~30 Hz
)

var (
	colorWhite = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	colorGray  = sdl.Color{R: 50, G: 50, B: 50, A: 255}
)

func main() {
	eng, err := engine.NewEngine("Ultra!Pong HDR 1.0A", game.ArenaWidth, game.ArenaHeight)
	if err != nil {
		log.Fatalf("Engine initialization failed: %v", err)
	}
	defer eng.Shutdown()

	if err := ttf.Init(); err != nil {
		log.Fatalf("TTF initialization failed: %v", err)
	}
	defer ttf.Quit()

	// Two sizes: big for titles and scores, small for prompts.
	bigFont, err := ttf.OpenFont("arial.ttf", 74)
	if err != nil {
		log.Fatalf("Failed to open font: %v", err)
	}
	defer bigFont.Close()
	smallFont, err := ttf.OpenFont("arial.ttf", 36)
	if err != nil {
		log.Fatalf("Failed to open font: %v", err)
	}
	defer smallFont.Close()

	// Audio is optional: with no device the game runs silent.
	var sink audio.Sink
	if s, err := audio.NewOtoSink(); err != nil {
		log.Printf("Audio unavailable, running silent: %v", err)
		sink = audio.NullSink{}
	} else {
		sink = s
	}
	sounds := audio.NewDispatcher(sink)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	match := game.NewMatch(rng)

	for eng.Running {
		in := engine.Poll()
		if in.Quit {
			break
		}
		for _, key := range in.Keys {
			if cmd, ok := commandForKey(match.Phase, key); ok {
				match.Handle(cmd)
			}
		}
		if match.Done {
			break
		}

		sounds.Dispatch(match.Tick(float32(in.MouseY)))

		snap := match.Snapshot()
		eng.Clear()
		render(eng, bigFont, smallFont, snap)
		eng.Present()

		if snap.Phase == game.PhaseMenu {
			sdl.Delay(menuFrameDelay)
		} else {
			sdl.Delay(playFrameDelay)
		}
	}
}

// commandForKey maps a pressed key to a phase command. The same key can
// mean different things in different phases: Escape quits from the menu but
// toggles pause during play.
func commandForKey(phase game.Phase, key sdl.Keycode) (game.Command, bool) {
	switch phase {
	case game.PhaseMenu:
		switch key {
		case sdl.K_RETURN, sdl.K_KP_ENTER:
			return game.CmdStartGame, true
		case sdl.K_ESCAPE:
			return game.CmdQuit, true
		}
	case game.PhasePlaying, game.PhasePaused:
		switch key {
		case sdl.K_p, sdl.K_ESCAPE:
			return game.CmdTogglePause, true
		}
	case game.PhaseGameOver:
		switch key {
		case sdl.K_y:
			return game.CmdConfirmReplay, true
		case sdl.K_n:
			return game.CmdDeclineReplay, true
		}
	}
	return 0, false
}

func render(eng *engine.Engine, bigFont, smallFont *ttf.Font, snap game.Snapshot) {
	if snap.Phase == game.PhaseMenu {
		renderMenu(eng, bigFont, smallFont)
		return
	}

	renderArena(eng, bigFont, snap)

	cx := int32(game.ArenaWidth / 2)
	cy := int32(game.ArenaHeight / 2)
	switch snap.Phase {
	case game.PhasePaused:
		engine.DrawTextCentered(eng.Renderer, smallFont, "PAUSED", cx, cy-20, colorWhite)
		engine.DrawTextCentered(eng.Renderer, smallFont, "Press P to Resume", cx, cy+20, colorWhite)
	case game.PhaseGameOver:
		engine.DrawTextCentered(eng.Renderer, bigFont, fmt.Sprintf("%s Wins!", snap.Winner), cx, cy-30, colorWhite)
		engine.DrawTextCentered(eng.Renderer, smallFont, "Play Again? (Y/N)", cx, cy+20, colorWhite)
	}

	eng.Window.SetTitle(fmt.Sprintf("Ultra!Pong HDR 1.0A - Player: %d | AI: %d", snap.PlayerScore, snap.AIScore))
}

func renderArena(eng *engine.Engine, scoreFont *ttf.Font, snap game.Snapshot) {
	r := eng.Renderer

	engine.DrawVLine(r, game.ArenaWidth/2, 0, game.ArenaHeight, 50, 50, 50, 255)

	// Blue player paddle, red AI paddle, white ball.
	engine.DrawRect(r, int32(snap.Player.X), int32(snap.Player.Y),
		int32(snap.Player.W), int32(snap.Player.H), 0, 0, 255, 255)
	engine.DrawRect(r, int32(snap.AIPaddle.X), int32(snap.AIPaddle.Y),
		int32(snap.AIPaddle.W), int32(snap.AIPaddle.H), 255, 0, 0, 255)
	engine.DrawCircle(r, int32(snap.Ball.X+snap.Ball.W/2), int32(snap.Ball.Y+snap.Ball.H/2),
		int32(snap.Ball.W/2), 255, 255, 255, 255)

	engine.DrawTextCentered(r, scoreFont, strconv.Itoa(snap.PlayerScore), game.ArenaWidth/4, 50, colorWhite)
	engine.DrawTextCentered(r, scoreFont, strconv.Itoa(snap.AIScore), 3*game.ArenaWidth/4, 50, colorWhite)
}

func renderMenu(eng *engine.Engine, bigFont, smallFont *ttf.Font) {
	r := eng.Renderer
	cx := int32(game.ArenaWidth / 2)
	third := int32(game.ArenaHeight / 3)

	engine.DrawTextCentered(r, bigFont, "Ultra!Pong HDR 1.0A", cx, third, colorWhite)
	engine.DrawTextCentered(r, smallFont, "[C] Team Flames 20XX", cx, third+60, colorGray)
	engine.DrawTextCentered(r, smallFont, "[C] Enhanced 2024-2025", cx, third+90, colorGray)
	engine.DrawTextCentered(r, smallFont, "ENTER: Start Game   ESC: Quit", cx, game.ArenaHeight/2+50, colorWhite)
}
