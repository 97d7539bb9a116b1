package game

// Command is a discrete input action consumed by the phase state machine.
// Commands are already decoupled from the physical device that produced
// them; the mapping from keys to commands lives with the input layer.
type Command int

const (
	CmdStartGame Command = iota
	CmdQuit
	CmdTogglePause
	CmdConfirmReplay
	CmdDeclineReplay
)

// SoundEvent identifies a sound effect triggered by the simulation. The
// physics step returns these instead of talking to an audio backend.
type SoundEvent int

const (
	SoundPaddleHit SoundEvent = iota
	SoundWallHit
	SoundScore
)

// Owner tags which side a paddle or a point belongs to.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerAI
)

func (o Owner) String() string {
	if o == OwnerAI {
		return "AI"
	}
	return "Player"
}
