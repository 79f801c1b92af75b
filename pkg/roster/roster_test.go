package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	players := New([]string{"Ari", "Bo", "Cam"})
	assert.Len(t, players, 3)
	assert.Equal(t, Player{Name: "Ari", Number: 1}, players[0])
	assert.Equal(t, Player{Name: "Cam", Number: 3}, players[2])
}

func TestNewDuplicateNames(t *testing.T) {
	// Duplicate names stay distinct players: the ordinal is the identity.
	players := New([]string{"Sam", "Sam"})
	assert.Equal(t, players[0].Name, players[1].Name)
	assert.NotEqual(t, players[0].Number, players[1].Number)
}

func TestNumbered(t *testing.T) {
	players := Numbered(6)
	assert.Len(t, players, 6)
	assert.Equal(t, "P1", players[0].Name)
	assert.Equal(t, "P6", players[5].Name)
	assert.Equal(t, 6, players[5].Number)
}
