package game

// AITrackingStep returns the vertical displacement the AI paddle should
// make this tick: up to AIPaddleSpeed toward the ball, with a half-speed
// deadzone so an already-aligned paddle does not jitter. Greedy tracking,
// no prediction.
func AITrackingStep(paddleCenterY, ballCenterY float32) float32 {
	const deadzone = AIPaddleSpeed / 2.0
	if paddleCenterY < ballCenterY-deadzone {
		return AIPaddleSpeed
	}
	if paddleCenterY > ballCenterY+deadzone {
		return -AIPaddleSpeed
	}
	return 0
}
