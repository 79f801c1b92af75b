package output

import (
	"fmt"
	"io"
	"strings"

	"laptudirm.com/x/rotation/pkg/rotation"
)

// Markdown writes the schedule as a markdown document: a summary list, the
// slot-by-slot court matrix, a per-position substitution table which only
// names a player when the occupant of their position changes, and a
// per-player minutes summary.
func Markdown(w io.Writer, sched *rotation.Schedule) error {
	var doc strings.Builder

	fmt.Fprintf(&doc, "# Rotation Schedule - %d Players\n\n", len(sched.Roster))

	doc.WriteString("## Summary\n\n")
	fmt.Fprintf(
		&doc, "- **Total game duration:** %.0f minutes (%d quarters)\n",
		sched.Config.GameDuration.Minutes(), sched.Config.Quarters,
	)
	fmt.Fprintf(&doc, "- **Players attending:** %d\n", len(sched.Roster))
	fmt.Fprintf(&doc, "- **Minutes per player:** %s\n", rotation.Minutes(sched.AverageMinutes()))
	fmt.Fprintf(&doc, "- **Stint duration:** %s minutes\n", rotation.Minutes(sched.SlotDuration))
	fmt.Fprintf(&doc, "- **Number of substitutions:** %d\n\n", sched.Rotations)

	doc.WriteString("## Rotation Schedule\n\n")

	doc.WriteString("| Slot | Quarter | Time |")
	for _, player := range sched.Roster {
		fmt.Fprintf(&doc, " %s |", player.Name)
	}
	doc.WriteString("\n|------|---------|------|")
	doc.WriteString(strings.Repeat("----|", len(sched.Roster)))
	doc.WriteString("\n")

	for slot := 0; slot < sched.SlotCount; slot++ {
		fmt.Fprintf(
			&doc, "| %d | Q%d | %s-%s |",
			slot+1, sched.Quarter(slot),
			rotation.Clock(sched.SlotStart(slot)),
			rotation.Clock(sched.SlotEnd(slot)),
		)

		for player := range sched.Roster {
			if sched.OnCourt[slot][player] {
				doc.WriteString(" ✅ |")
			} else {
				doc.WriteString(" ⬜ |")
			}
		}

		doc.WriteString("\n")
	}

	doc.WriteString("\n## Substitutions\n\n")

	doc.WriteString("| Position |")
	for slot := 0; slot < sched.SlotCount; slot++ {
		fmt.Fprintf(&doc, " %s |", rotation.Clock(sched.SlotStart(slot)))
	}
	doc.WriteString("\n|----------|")
	doc.WriteString(strings.Repeat("----|", sched.SlotCount))
	doc.WriteString("\n")

	for position := 0; position < sched.Config.Capacity; position++ {
		fmt.Fprintf(&doc, "| %d |", position+1)
		for slot := 0; slot < sched.SlotCount; slot++ {
			// Only name the occupant when they enter the position,
			// so substitutions stand out at a glance.
			if sched.Entered(position, slot) {
				fmt.Fprintf(&doc, " %s |", sched.Roster[sched.Positions[position][slot]].Name)
			} else {
				doc.WriteString("  |")
			}
		}
		doc.WriteString("\n")
	}

	doc.WriteString("\n## Player Minutes Summary\n\n")
	doc.WriteString("| Player | Total Minutes | Stints |\n")
	doc.WriteString("|--------|---------------|--------|\n")

	for player, identity := range sched.Roster {
		fmt.Fprintf(
			&doc, "| %s | %s | %d |\n",
			identity.Name,
			rotation.Minutes(sched.PlayerMinutes(player)),
			sched.PlayerStints(player),
		)
	}

	_, err := io.WriteString(w, doc.String())
	return err
}
