package game

// stepResult carries everything one physics step produced besides the
// mutated ball: sounds to trigger and, at most once per tick, a point.
type stepResult struct {
	Sounds []SoundEvent
	Scored bool
	Scorer Owner
}

// stepPhysics advances the ball one tick and resolves collisions. The order
// matters: integrate, paddles (player first), vertical speed normalization,
// walls, then exits. A wall hit on a tick that already hit a paddle stays
// silent so a corner graze plays a single sound.
func (m *Match) stepPhysics() stepResult {
	var res stepResult
	b := m.Ball

	b.X += b.VX
	b.Y += b.VY

	paddleHit := false
	if overlaps(b, m.Player) {
		paddleHit = true
		res.Sounds = append(res.Sounds, SoundPaddleHit)
		// Flush against the paddle face so the ball never sticks inside.
		b.X = m.Player.Right()
		b.VX = minf(absf(b.VX)*HitSpeedupFactor, MaxBallSpeedX)
		b.VY = bounceVY(b, m.Player)
	} else if overlaps(b, m.AI) {
		paddleHit = true
		res.Sounds = append(res.Sounds, SoundPaddleHit)
		b.X = m.AI.X - float32(b.Size)
		b.VX = -minf(absf(b.VX)*HitSpeedupFactor, MaxBallSpeedX)
		b.VY = bounceVY(b, m.AI)
	}

	if paddleHit {
		if absf(b.VY) > MaxBallSpeedY {
			b.VY = copysignf(MaxBallSpeedY, b.VY)
		} else if b.VY != 0 && absf(b.VY) < MinBallSpeedY {
			// A nonzero crawl would stall the rally. Exact zero stays: a
			// center hit is a straight shot.
			b.VY = copysignf(MinBallSpeedY, b.VY)
		}
	}

	if b.Y <= 0 {
		b.Y = 0
		b.VY = -b.VY
		if !paddleHit {
			res.Sounds = append(res.Sounds, SoundWallHit)
		}
	} else if b.Bottom() >= ArenaHeight {
		b.Y = ArenaHeight - float32(b.Size)
		b.VY = -b.VY
		if !paddleHit {
			res.Sounds = append(res.Sounds, SoundWallHit)
		}
	}

	if b.X <= 0 {
		res.Scored = true
		res.Scorer = OwnerAI
		res.Sounds = append(res.Sounds, SoundScore)
	} else if b.Right() >= ArenaWidth {
		res.Scored = true
		res.Scorer = OwnerPlayer
		res.Sounds = append(res.Sounds, SoundScore)
	}

	return res
}

// overlaps is a simple AABB test between the ball and a paddle.
func overlaps(b *Ball, p *Paddle) bool {
	return b.X <= p.Right() &&
		b.Right() >= p.X &&
		b.Bottom() >= p.Y &&
		b.Y <= p.Bottom()
}

// bounceVY maps the impact offset from the paddle center to a vertical
// speed: an edge hit sends the ball off steeply, a dead-center hit exactly
// flat.
func bounceVY(b *Ball, p *Paddle) float32 {
	offset := (b.CenterY() - p.CenterY()) / (float32(p.Height) / 2)
	return offset * BallServeSpeedY * BounceAngleFactor
}
