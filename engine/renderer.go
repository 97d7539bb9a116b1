package engine

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// DrawRect draws a filled rectangle with the specified color.
func DrawRect(renderer *sdl.Renderer, x, y, w, h int32, r, g, b, a uint8) error {
	renderer.SetDrawColor(r, g, b, a)
	rect := sdl.Rect{X: x, Y: y, W: w, H: h}
	return renderer.FillRect(&rect)
}

// DrawCircle draws a filled circle. If the gfx call fails it falls back to
// a plain square.
func DrawCircle(renderer *sdl.Renderer, cx, cy, radius int32, r, g, b, a uint8) {
	if ok := gfx.FilledCircleRGBA(renderer, cx, cy, radius, r, g, b, a); !ok {
		renderer.SetDrawColor(r, g, b, a)
		rect := sdl.Rect{X: cx - radius, Y: cy - radius, W: radius * 2, H: radius * 2}
		renderer.FillRect(&rect)
	}
}

// DrawVLine draws a one-pixel vertical line.
func DrawVLine(renderer *sdl.Renderer, x, y1, y2 int32, r, g, b, a uint8) {
	gfx.VlineRGBA(renderer, x, y1, y2, r, g, b, a)
}

// DrawText renders text with its top-left corner at (x, y).
func DrawText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) error {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return err
	}
	defer surface.Free()
	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()
	rect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	return renderer.Copy(texture, nil, &rect)
}

// DrawTextCentered renders text centered on (cx, cy).
func DrawTextCentered(renderer *sdl.Renderer, font *ttf.Font, text string, cx, cy int32, color sdl.Color) error {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return err
	}
	defer surface.Free()
	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()
	rect := sdl.Rect{X: cx - surface.W/2, Y: cy - surface.H/2, W: surface.W, H: surface.H}
	return renderer.Copy(texture, nil, &rect)
}
