package ludo

import (
	"fmt"
	"slices"
)

type Color string

const (
	Red    Color = "red"
	Green  Color = "green"
	Yellow Color = "yellow"
	Blue   Color = "blue"
)

const (
	Base        = -1
	TrackLength = 52
	HomeStart   = 100
	Goal        = HomeStart + homeLength - 1
	Tokens      = 4
	Six         = 6

	homeLength = 6

	// lapSteps is how far a token travels on the shared track before turning into its home lane.
	lapSteps = 50
)

var StartIndex = map[Color]int{Red: 0, Green: 13, Yellow: 26, Blue: 39}

var SafeCells = []int{0, 8, 13, 21, 26, 34, 39, 47}

// colorsFor lists the colors in play in turn order.
func colorsFor(players int) ([]Color, error) {
	switch players {
	case 2:
		return []Color{Red, Yellow}, nil
	case 3:
		return []Color{Red, Green, Yellow}, nil
	case 4:
		return []Color{Red, Green, Yellow, Blue}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrPlayerCount, players)
	}
}

func IsSafe(pos int) bool {
	return slices.Contains(SafeCells, pos)
}

func onTrack(pos int) bool {
	return pos >= 0 && pos < TrackLength
}

func validPosition(pos int) bool {
	return pos == Base || onTrack(pos) || (pos >= HomeStart && pos <= Goal)
}

// target is where a token of color on pos lands after roll. ok is false when it cannot move.
func target(color Color, pos, roll int) (int, bool) {
	if !validPosition(pos) {
		panic(fmt.Sprintf("ludo: token position %d out of range", pos))
	}

	switch {
	case pos == Goal:
		return pos, false
	case pos == Base:
		if roll != Six {
			return pos, false
		}
		return StartIndex[color], true
	case pos >= HomeStart:
		if pos+roll > Goal {
			return pos, false
		}
		return pos + roll, true
	}

	start := StartIndex[color]

	steps := pos - start
	if pos < start {
		steps = TrackLength - start + pos
	}

	if steps+roll <= lapSteps {
		return (pos + roll) % TrackLength, true
	}

	return HomeStart + roll - (lapSteps - steps) - 1, true
}
