package game

import "math/rand"

// Phase is the top-level mode of the game.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// Match owns every piece of simulation state. All mutation happens on the
// loop goroutine; anything that draws gets a value Snapshot instead.
type Match struct {
	Ball   *Ball
	Player *Paddle
	AI     *Paddle

	PlayerScore int
	AIScore     int

	Phase  Phase
	Winner string // set on the transition into PhaseGameOver
	Done   bool   // set when the process should exit

	rng *rand.Rand
}

// NewMatch creates a match sitting at the menu. The random source drives
// serve direction and first-server choice, so tests can seed it.
func NewMatch(rng *rand.Rand) *Match {
	return &Match{
		Ball:   NewBall(),
		Player: NewPaddle(OwnerPlayer),
		AI:     NewPaddle(OwnerAI),
		Phase:  PhaseMenu,
		rng:    rng,
	}
}

// Reset returns the match to a fresh 0-0 state: paddles centered, winner
// cleared, first server chosen uniformly at random.
func (m *Match) Reset() {
	m.PlayerScore = 0
	m.AIScore = 0
	m.Winner = ""
	m.Player.CenterVertically()
	m.AI.CenterVertically()
	m.serve(m.rng.Intn(2) == 0)
}

// Handle applies one discrete input command to the phase state machine.
// Commands that do not apply to the current phase are ignored.
func (m *Match) Handle(cmd Command) {
	if cmd == CmdQuit {
		m.Done = true
		return
	}
	switch m.Phase {
	case PhaseMenu:
		if cmd == CmdStartGame {
			m.Reset()
			m.Phase = PhasePlaying
		}
	case PhasePlaying:
		if cmd == CmdTogglePause {
			m.Phase = PhasePaused
		}
	case PhasePaused:
		if cmd == CmdTogglePause {
			m.Phase = PhasePlaying
		}
	case PhaseGameOver:
		switch cmd {
		case CmdConfirmReplay:
			m.Reset()
			m.Phase = PhasePlaying
		case CmdDeclineReplay:
			m.Done = true
		}
	}
}

// Tick advances the simulation one frame and returns the sounds it
// produced. playerTargetY is the sampled pointer position the player paddle
// tracks. Outside PhasePlaying the simulation is frozen.
func (m *Match) Tick(playerTargetY float32) []SoundEvent {
	if m.Phase != PhasePlaying {
		return nil
	}

	res := m.stepPhysics()
	if res.Scored {
		m.applyScore(res.Scorer)
	}

	m.Player.SetCenterY(playerTargetY)
	m.AI.MoveBy(AITrackingStep(m.AI.CenterY(), m.Ball.CenterY()))

	return res.Sounds
}

// RectF is an axis-aligned rectangle in arena coordinates.
type RectF struct {
	X, Y, W, H float32
}

// Snapshot is the draw-ready view of the match handed out once per tick.
// It is a plain value: the renderer never touches live state.
type Snapshot struct {
	Ball        RectF
	Player      RectF
	AIPaddle    RectF
	PlayerScore int
	AIScore     int
	Phase       Phase
	Winner      string
}

func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Ball:        RectF{m.Ball.X, m.Ball.Y, float32(m.Ball.Size), float32(m.Ball.Size)},
		Player:      RectF{m.Player.X, m.Player.Y, float32(m.Player.Width), float32(m.Player.Height)},
		AIPaddle:    RectF{m.AI.X, m.AI.Y, float32(m.AI.Width), float32(m.AI.Height)},
		PlayerScore: m.PlayerScore,
		AIScore:     m.AIScore,
		Phase:       m.Phase,
		Winner:      m.Winner,
	}
}
