package rotation

// fillPositions maps the per-slot court groups onto fixed position rows.
// A player who stays on court keeps their position between slots; entrants
// fill the vacated positions in roster order. A substitution is therefore
// a change of occupant in a position row between consecutive slots, which
// is what downstream renderers compact on.
func (sched *Schedule) fillPositions() {
	capacity := sched.Config.Capacity

	sched.Positions = make([][]int, capacity)
	for position := range sched.Positions {
		sched.Positions[position] = make([]int, sched.SlotCount)
	}

	// Opening lineup, in roster order. Not counted as substitutions.
	position := 0
	for player := range sched.Roster {
		if sched.OnCourt[0][player] {
			sched.Positions[position][0] = player
			position++
		}
	}

	for slot := 1; slot < sched.SlotCount; slot++ {
		vacated := make([]int, 0, capacity)
		for position := 0; position < capacity; position++ {
			prev := sched.Positions[position][slot-1]
			if sched.OnCourt[slot][prev] {
				sched.Positions[position][slot] = prev
			} else {
				vacated = append(vacated, position)
			}
		}

		next := 0
		for player := range sched.Roster {
			if !sched.OnCourt[slot][player] || sched.OnCourt[slot-1][player] {
				continue
			}

			sched.Positions[vacated[next]][slot] = player
			next++
		}

		sched.Rotations += next
	}
}

// Entered reports whether the occupant of the given position is new in the
// given slot, i.e. whether a substitution (or the opening lineup) put them
// there.
func (sched *Schedule) Entered(position, slot int) bool {
	return slot == 0 ||
		sched.Positions[position][slot] != sched.Positions[position][slot-1]
}
