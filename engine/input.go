package engine

import "github.com/veandco/go-sdl2/sdl"

// Input is one frame's worth of sampled input: any quit request, the keys
// that went down this frame, and the current pointer position.
type Input struct {
	Quit   bool
	Keys   []sdl.Keycode
	MouseY int32
}

// Poll drains the SDL event queue and samples the mouse. Key repeats are
// ignored; the game wants discrete presses.
func Poll() Input {
	var in Input
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			in.Quit = true
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
				in.Keys = append(in.Keys, ev.Keysym.Sym)
			}
		}
	}
	_, y, _ := sdl.GetMouseState()
	in.MouseY = y
	return in
}
