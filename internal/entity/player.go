package entity

// Player is one of the two seats in a game. Name never changes after
// construction; Winner flips to true at most once, when that player's
// winning line is detected.
type Player struct {
	Name   string `json:"name"`
	Winner bool   `json:"winner,omitempty"`
}

func (that *Player) IsWinner() bool {
	return that.Winner
}
