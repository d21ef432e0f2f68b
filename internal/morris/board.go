package morris

import "github.com/rocketscienceinc/boardgames-hub/internal/entity"

const (
	Nodes      = 24
	PiecesEach = 9
	flyingAt   = 3
)

// Adjacency lists the neighbours of each node, numbered ring by ring from the outer top left.
var Adjacency = [Nodes][]int{
	0:  {1, 9},
	1:  {0, 2, 4},
	2:  {1, 14},
	3:  {4, 10},
	4:  {1, 3, 5, 7},
	5:  {4, 13},
	6:  {7, 11},
	7:  {4, 6, 8},
	8:  {7, 12},
	9:  {0, 10, 21},
	10: {3, 9, 11, 18},
	11: {6, 10, 15},
	12: {8, 13, 17},
	13: {5, 12, 14, 20},
	14: {2, 13, 23},
	15: {11, 16},
	16: {15, 17, 19},
	17: {12, 16},
	18: {10, 19},
	19: {16, 18, 20, 22},
	20: {13, 19},
	21: {9, 22},
	22: {19, 21, 23},
	23: {14, 22},
}

var Mills = [16][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11},
	{12, 13, 14}, {15, 16, 17}, {18, 19, 20}, {21, 22, 23},
	{0, 9, 21}, {3, 10, 18}, {6, 11, 15}, {1, 4, 7},
	{16, 19, 22}, {8, 12, 17}, {5, 13, 20}, {2, 14, 23},
}

// Board holds the owner of each node.
type Board [Nodes]entity.Player

func (that Board) Count(player entity.Player) int {
	count := 0
	for _, owner := range that {
		if owner == player {
			count++
		}
	}

	return count
}

// InMill reports whether the piece on node is part of a complete line of its owner.
func (that *Board) InMill(node int) bool {
	owner := that[node]
	if owner.IsNone() {
		return false
	}

	for _, mill := range Mills {
		if mill[0] != node && mill[1] != node && mill[2] != node {
			continue
		}

		if that[mill[0]] == owner && that[mill[1]] == owner && that[mill[2]] == owner {
			return true
		}
	}

	return false
}

// removable lists victim's pieces that may be taken. Pieces in a mill are protected
// unless every piece of victim stands in one.
func (that *Board) removable(victim entity.Player) []int {
	var free, all []int

	for node, owner := range that {
		if owner != victim {
			continue
		}

		all = append(all, node)
		if !that.InMill(node) {
			free = append(free, node)
		}
	}

	if len(free) > 0 {
		return free
	}

	return all
}
