package entity

import (
	"errors"
	"fmt"
	"slices"
)

// Kind names a game in the hub.
type Kind string

const (
	Chess            Kind = "chess"
	Checkers         Kind = "checkers"
	Reversi          Kind = "reversi"
	Morris           Kind = "morris"
	ConnectFour      Kind = "connect-four"
	Ludo             Kind = "ludo"
	TicTacToe        Kind = "tictactoe"
	SnakesAndLadders Kind = "snakes-and-ladders"
)

var Kinds = []Kind{Chess, Checkers, Reversi, Morris, ConnectFour, Ludo, TicTacToe, SnakesAndLadders}

const (
	ResultNone = ""
	ResultWin  = "win"
	ResultDraw = "draw"
)

var (
	ErrUnknownResult = errors.New("unknown game result")
	ErrUnknownKind   = errors.New("unknown game kind")
)

func ParseKind(name string) (Kind, error) {
	kind := Kind(name)
	if !slices.Contains(Kinds, kind) {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, name)
	}

	return kind, nil
}

// Outcome is the terminal status of a game. The zero value means the game is still running.
type Outcome struct {
	Result string `json:"result,omitempty"`
	Winner Player `json:"winner,omitempty"`
}

func Win(player Player) Outcome {
	return Outcome{Result: ResultWin, Winner: player}
}

func Draw() Outcome {
	return Outcome{Result: ResultDraw}
}

func (that Outcome) IsOver() bool {
	return that.Result != ResultNone
}

func (that Outcome) IsWin() bool {
	return that.Result == ResultWin
}

func (that Outcome) IsDraw() bool {
	return that.Result == ResultDraw
}

func (that Outcome) Validate() error {
	switch that.Result {
	case ResultNone, ResultDraw:
		return nil
	case ResultWin:
		if that.Winner.IsNone() {
			return fmt.Errorf("%w: win without winner", ErrUnknownResult)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownResult, that.Result)
	}
}

func (that Outcome) String() string {
	switch that.Result {
	case ResultWin:
		return "win " + string(that.Winner)
	case ResultDraw:
		return ResultDraw
	default:
		return "ongoing"
	}
}

// Variant selects what a session plays: the game, how many seats and which of them the computer controls.
type Variant struct {
	Game     Kind     `json:"game"`
	Players  int      `json:"players,omitempty"`
	Computer []Player `json:"computer,omitempty"`
}

func (that Variant) IsComputer(player Player) bool {
	return slices.Contains(that.Computer, player)
}

// SeatCount returns the number of seats, defaulting to two.
func (that Variant) SeatCount() int {
	if that.Players == 0 {
		return 2
	}

	return that.Players
}
