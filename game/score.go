package game

// applyScore runs the scoring state machine for a point won by scorer.
// Exactly one of two things happens: the match ends, or the ball is served
// again.
func (m *Match) applyScore(scorer Owner) {
	switch scorer {
	case OwnerPlayer:
		m.PlayerScore++
	case OwnerAI:
		m.AIScore++
	}

	if m.PlayerScore >= WinningScore || m.AIScore >= WinningScore {
		m.Phase = PhaseGameOver
		m.Winner = scorer.String()
		m.Ball.Center()
		m.Ball.VX = 0
		m.Ball.VY = 0
		return
	}

	// The side that conceded serves next.
	m.serve(scorer == OwnerAI)
}

// serve recenters the ball and assigns its opening velocity. A player serve
// sends the ball rightward, an AI serve leftward; the vertical sign is
// random for variety.
func (m *Match) serve(byPlayer bool) {
	m.Ball.Center()
	if byPlayer {
		m.Ball.VX = BallServeSpeedX
	} else {
		m.Ball.VX = -BallServeSpeedX
	}
	if m.rng.Intn(2) == 0 {
		m.Ball.VY = BallServeSpeedY
	} else {
		m.Ball.VY = -BallServeSpeedY
	}
}
