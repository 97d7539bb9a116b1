package game

// Ball is the volleyed ball. Position is the top-left corner of its
// bounding square; velocity is in pixels per tick.
type Ball struct {
	X, Y   float32
	VX, VY float32
	Size   int32 // diameter
}

func NewBall() *Ball {
	b := &Ball{Size: BallRadius * 2}
	b.Center()
	return b
}

// Center places the ball in the middle of the arena without touching its
// velocity.
func (b *Ball) Center() {
	b.X = float32(ArenaWidth)/2 - float32(b.Size)/2
	b.Y = float32(ArenaHeight)/2 - float32(b.Size)/2
}

func (b *Ball) CenterY() float32 { return b.Y + float32(b.Size)/2 }
func (b *Ball) Right() float32   { return b.X + float32(b.Size) }
func (b *Ball) Bottom() float32  { return b.Y + float32(b.Size) }
