package game

import (
	"math/rand"
	"testing"
)

func TestStartFromMenuResetsMatch(t *testing.T) {
	m := NewMatch(rand.New(rand.NewSource(20)))
	m.PlayerScore = 3
	m.AIScore = 2
	m.Winner = "AI"

	m.Handle(CmdStartGame)

	if m.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want PhasePlaying", m.Phase)
	}
	if m.PlayerScore != 0 || m.AIScore != 0 {
		t.Errorf("scores not reset: %d-%d", m.PlayerScore, m.AIScore)
	}
	if m.Winner != "" {
		t.Errorf("winner not cleared: %q", m.Winner)
	}
	if absf(m.Ball.VX) != BallServeSpeedX || absf(m.Ball.VY) != BallServeSpeedY {
		t.Errorf("ball not served: velocity (%v, %v)", m.Ball.VX, m.Ball.VY)
	}
	if m.Player.CenterY() != ArenaHeight/2 || m.AI.CenterY() != ArenaHeight/2 {
		t.Error("paddles not recentered")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	m := newTestMatch(21)
	m.Ball.VX, m.Ball.VY = 4, 4

	m.Handle(CmdTogglePause)
	if m.Phase != PhasePaused {
		t.Fatalf("phase = %v, want PhasePaused", m.Phase)
	}

	before := *m.Ball
	if sounds := m.Tick(0); sounds != nil {
		t.Errorf("paused tick produced sounds: %v", sounds)
	}
	if *m.Ball != before {
		t.Error("ball moved while paused")
	}

	m.Handle(CmdTogglePause)
	if m.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want PhasePlaying after unpause", m.Phase)
	}
	m.Tick(m.Player.CenterY())
	if *m.Ball == before {
		t.Error("ball did not move after unpausing")
	}
}

func TestGameOverReplayAndDecline(t *testing.T) {
	m := newTestMatch(22)
	m.Phase = PhaseGameOver
	m.PlayerScore = WinningScore
	m.Winner = "Player"

	m.Handle(CmdConfirmReplay)
	if m.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want PhasePlaying after replay", m.Phase)
	}
	if m.PlayerScore != 0 || m.AIScore != 0 {
		t.Errorf("scores not reset on replay: %d-%d", m.PlayerScore, m.AIScore)
	}

	m.Phase = PhaseGameOver
	m.Handle(CmdDeclineReplay)
	if !m.Done {
		t.Error("declining a replay should end the process")
	}
}

func TestQuitWorksInEveryPhase(t *testing.T) {
	for _, phase := range []Phase{PhaseMenu, PhasePlaying, PhasePaused, PhaseGameOver} {
		m := NewMatch(rand.New(rand.NewSource(23)))
		m.Phase = phase
		m.Handle(CmdQuit)
		if !m.Done {
			t.Errorf("CmdQuit ignored in phase %v", phase)
		}
	}
}

func TestCommandsIgnoredOutOfPhase(t *testing.T) {
	m := NewMatch(rand.New(rand.NewSource(24)))

	m.Handle(CmdConfirmReplay)
	m.Handle(CmdTogglePause)
	if m.Phase != PhaseMenu {
		t.Errorf("phase = %v, menu should ignore replay and pause commands", m.Phase)
	}

	m.Handle(CmdStartGame)
	m.Handle(CmdStartGame) // no-op while playing
	if m.Phase != PhasePlaying {
		t.Errorf("phase = %v, want PhasePlaying", m.Phase)
	}
}

func TestFirstServerChosenUniformly(t *testing.T) {
	m := NewMatch(rand.New(rand.NewSource(42)))
	right, left := 0, 0
	for i := 0; i < 1000; i++ {
		m.Reset()
		if m.Ball.VX > 0 {
			right++
		} else {
			left++
		}
	}
	if right < 400 || left < 400 {
		t.Errorf("first server skewed: %d right serves, %d left serves", right, left)
	}
}

func TestPlayerPaddleClampedToArena(t *testing.T) {
	m := newTestMatch(25)
	m.Ball.VX, m.Ball.VY = 0, 0

	m.Tick(-100)
	if m.Player.Y != 0 {
		t.Errorf("paddle above the arena: Y = %v", m.Player.Y)
	}
	m.Tick(ArenaHeight + 100)
	if m.Player.Bottom() != ArenaHeight {
		t.Errorf("paddle below the arena: bottom = %v", m.Player.Bottom())
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	m := newTestMatch(26)
	m.PlayerScore = 2
	m.AIScore = 4
	m.Winner = "AI"
	m.Phase = PhaseGameOver

	snap := m.Snapshot()
	if snap.PlayerScore != 2 || snap.AIScore != 4 {
		t.Errorf("snapshot scores = %d-%d", snap.PlayerScore, snap.AIScore)
	}
	if snap.Phase != PhaseGameOver || snap.Winner != "AI" {
		t.Errorf("snapshot phase/winner = %v/%q", snap.Phase, snap.Winner)
	}
	if snap.Ball.W != float32(m.Ball.Size) || snap.Ball.X != m.Ball.X {
		t.Error("snapshot ball rect does not match the ball")
	}
	if snap.Player.X != m.Player.X || snap.AIPaddle.X != m.AI.X {
		t.Error("snapshot paddle rects do not match the paddles")
	}
}
