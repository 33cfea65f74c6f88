package entity

// Status is the game-wide state. It only ever moves from StatusPlaying to
// one of the terminal values, never back.
type Status string

const (
	StatusPlaying    Status = "playing"
	StatusPlayer1Won Status = "player1_won"
	StatusPlayer2Won Status = "player2_won"
	StatusDraw       Status = "draw"
)

func (that Status) IsPlaying() bool {
	return that == StatusPlaying
}

func (that Status) IsFinished() bool {
	return that != StatusPlaying
}

func (that Status) IsDraw() bool {
	return that == StatusDraw
}
