package entity

// Player identifies a seat. Two-player games use P1 and P2, Ludo may use all four.
type Player string

const (
	NoPlayer Player = ""
	P1       Player = "P1"
	P2       Player = "P2"
	P3       Player = "P3"
	P4       Player = "P4"
)

var Seats = [...]Player{P1, P2, P3, P4}

// Opponent of a two-player seat.
func (that Player) Opponent() Player {
	switch that {
	case P1:
		return P2
	case P2:
		return P1
	default:
		return NoPlayer
	}
}

func (that Player) IsNone() bool {
	return that == NoPlayer
}
