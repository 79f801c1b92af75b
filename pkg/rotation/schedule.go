package rotation

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"laptudirm.com/x/rotation/pkg/roster"
)

var (
	ErrInvalidRoster = errors.New("invalid roster")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config is the geometry of a single game. The zero value is not usable;
// start from DefaultConfig and override what the caller needs.
type Config struct {
	GameDuration time.Duration // total playing time, excluding breaks
	Quarters     int           // number of equal game periods
	Capacity     int           // players on court at the same time
	MinStint     time.Duration // shortest span a player stays on court
}

// DefaultConfig is the standard game this tool was written for: a 40 minute
// basketball game of 4 quarters with 5 players on court and stints of at
// least two and a half minutes.
func DefaultConfig() Config {
	return Config{
		GameDuration: 40 * time.Minute,
		Quarters:     4,
		Capacity:     5,
		MinStint:     150 * time.Second,
	}
}

// Slots derives the slot geometry for the config: the largest slot count
// which splits the game into whole slots no shorter than the minimum stint,
// with the same number of slots in every quarter.
func (config Config) Slots() (int, time.Duration, error) {
	switch {
	case config.GameDuration <= 0:
		return 0, 0, fmt.Errorf("%w: game duration must be positive", ErrInvalidConfig)
	case config.Quarters <= 0:
		return 0, 0, fmt.Errorf("%w: quarter count must be positive", ErrInvalidConfig)
	case config.Capacity <= 0:
		return 0, 0, fmt.Errorf("%w: court capacity must be positive", ErrInvalidConfig)
	case config.MinStint <= 0:
		return 0, 0, fmt.Errorf("%w: minimum stint must be positive", ErrInvalidConfig)
	}

	// Slots are kept to whole seconds so the game clock stays printable.
	max_slots := int(config.GameDuration / config.MinStint)
	for slot_count := max_slots; slot_count >= config.Quarters; slot_count-- {
		if slot_count%config.Quarters != 0 ||
			config.GameDuration%(time.Duration(slot_count)*time.Second) != 0 {
			continue
		}

		return slot_count, config.GameDuration / time.Duration(slot_count), nil
	}

	return 0, 0, fmt.Errorf(
		"%w: %s can't be split into whole slots of at least %s across %d quarters",
		ErrInvalidConfig, config.GameDuration, config.MinStint, config.Quarters,
	)
}

// A Schedule is a complete rotation plan: for every time slot, which players
// are on court and which on-court position each of them occupies. It is
// immutable once returned by Generate.
type Schedule struct {
	Config Config
	Roster []roster.Player

	SlotCount    int
	SlotDuration time.Duration

	// OnCourt[slot][player] reports whether the player is on court
	// during the given slot.
	OnCourt [][]bool

	// Positions[position][slot] is the roster index of the player
	// occupying the given on-court position during the given slot.
	Positions [][]int

	// PlayerSlots[player] is the total number of slots the player
	// spends on court.
	PlayerSlots []int

	// Rotations is the total number of substitution events: changes of
	// occupant in an on-court position between consecutive slots.
	Rotations int
}

// Generate computes a rotation schedule for the given players. It is a pure
// function: the same roster and config always produce the same schedule.
//
// Playing time is balanced to within a single slot, with any leftover slots
// going to the players earliest in the roster. Substitutions are spread
// across the game by preferring the longest-rested players among equals, so
// nobody sits out a long unbroken streak.
func Generate(players []roster.Player, config Config) (*Schedule, error) {
	slot_count, slot_duration, err := config.Slots()
	if err != nil {
		return nil, err
	}

	player_count := len(players)
	switch {
	case player_count < config.Capacity:
		return nil, fmt.Errorf(
			"%w: need at least %d players to fill the court, got %d",
			ErrInvalidRoster, config.Capacity, player_count,
		)

	case player_count > slot_count*config.Capacity:
		// More players than player-slots: someone would necessarily
		// spend the whole game on the bench.
		return nil, fmt.Errorf(
			"%w: %d players can't all get court time in %d player-slots",
			ErrInvalidRoster, player_count, slot_count*config.Capacity,
		)
	}

	sched := &Schedule{
		Config: config,
		Roster: players,

		SlotCount:    slot_count,
		SlotDuration: slot_duration,

		OnCourt: make([][]bool, slot_count),
	}

	played := make([]int, player_count) // slots on court so far
	rested := make([]int, player_count) // consecutive slots on bench
	order := make([]int, player_count)

	for slot := 0; slot < slot_count; slot++ {
		// Pick the players with the least court time, preferring the
		// longest-rested and then the earliest in the roster among
		// equals. The roster-order tie-break is what makes leftover
		// slots land on the front of the roster.
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			a, b := order[i], order[j]
			if played[a] != played[b] {
				return played[a] < played[b]
			}
			if rested[a] != rested[b] {
				return rested[a] > rested[b]
			}
			return a < b
		})

		on_court := make([]bool, player_count)
		for _, player := range order[:config.Capacity] {
			on_court[player] = true
		}

		for player := range players {
			if on_court[player] {
				played[player]++
				rested[player] = 0
			} else {
				rested[player]++
			}
		}

		sched.OnCourt[slot] = on_court
	}

	sched.PlayerSlots = played
	sched.fillPositions()

	return sched, nil
}
