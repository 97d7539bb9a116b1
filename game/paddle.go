package game

// Paddle is one of the two paddles. Position is the top-left corner; only
// the vertical coordinate ever changes after construction.
type Paddle struct {
	X, Y          float32
	Width, Height int32
	Owner         Owner
}

// NewPaddle creates a paddle on its owner's side of the arena, vertically
// centered.
func NewPaddle(owner Owner) *Paddle {
	p := &Paddle{Width: PaddleWidth, Height: PaddleHeight, Owner: owner}
	if owner == OwnerPlayer {
		p.X = PaddleMargin
	} else {
		p.X = ArenaWidth - PaddleMargin - PaddleWidth
	}
	p.CenterVertically()
	return p
}

func (p *Paddle) CenterVertically() {
	p.Y = float32(ArenaHeight)/2 - float32(p.Height)/2
}

func (p *Paddle) CenterY() float32 { return p.Y + float32(p.Height)/2 }
func (p *Paddle) Right() float32   { return p.X + float32(p.Width) }
func (p *Paddle) Bottom() float32  { return p.Y + float32(p.Height) }

// SetCenterY moves the paddle so its vertical center sits at y, then clamps.
func (p *Paddle) SetCenterY(y float32) {
	p.Y = y - float32(p.Height)/2
	p.ClampToArena()
}

// MoveBy shifts the paddle vertically, then clamps.
func (p *Paddle) MoveBy(dy float32) {
	p.Y += dy
	p.ClampToArena()
}

// ClampToArena keeps the paddle fully inside the arena's vertical bounds.
// Every mutation goes through this.
func (p *Paddle) ClampToArena() {
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y+float32(p.Height) > ArenaHeight {
		p.Y = ArenaHeight - float32(p.Height)
	}
}
