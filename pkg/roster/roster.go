package roster

import "fmt"

// A Player is the identity of one attending player. Identity is the roster
// ordinal, not the name: duplicate names are allowed and treated as distinct
// players.
type Player struct {
	Name   string
	Number int // 1-based position in the roster
}

func (player Player) String() string {
	return player.Name
}

// New builds a roster from the given display names, preserving their order.
func New(names []string) []Player {
	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{Name: name, Number: i + 1}
	}

	return players
}

// Numbered builds an anonymous roster of the given size, named P1..Pn.
func Numbered(count int) []Player {
	players := make([]Player, count)
	for i := range players {
		players[i] = Player{Name: fmt.Sprintf("P%d", i+1), Number: i + 1}
	}

	return players
}
