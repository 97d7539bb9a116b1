package game

// Arena and entity geometry, in pixels.
const (
	ArenaWidth  = 600
	ArenaHeight = 400

	PaddleWidth  = 15
	PaddleHeight = 80
	PaddleMargin = 30 // gap between a paddle and its side wall

	BallRadius = 8
)

// Gameplay tuning. Speeds are in pixels per tick, one tick per frame.
const (
	WinningScore = 5

	BallServeSpeedX = 4
	BallServeSpeedY = 4

	HitSpeedupFactor  = 1.07 // horizontal speed gain on every paddle hit
	MaxBallSpeedX     = 10
	MaxBallSpeedY     = 8
	MinBallSpeedY     = 1 // floor for nonzero vertical speed after a paddle hit
	BounceAngleFactor = 1.7

	AIPaddleSpeed = 6
)
