package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"laptudirm.com/x/rotation/pkg/rotation"
)

// CSV writes the schedule as a csv document: a commented summary header
// followed by one record per slot, with a 1/0 on-court flag per player.
func CSV(w io.Writer, sched *rotation.Schedule) error {
	_, err := fmt.Fprintf(
		w,
		"# Rotation Schedule for %d Players\n"+
			"# Minutes per player: %s\n"+
			"# Stint duration: %s minutes\n\n",
		len(sched.Roster),
		rotation.Minutes(sched.AverageMinutes()),
		rotation.Minutes(sched.SlotDuration),
	)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)

	header := []string{"Slot", "Quarter", "Start", "End", "Duration (min)"}
	for _, player := range sched.Roster {
		header = append(header, player.Name)
	}
	_ = writer.Write(header)

	for slot := 0; slot < sched.SlotCount; slot++ {
		record := []string{
			strconv.Itoa(slot + 1),
			strconv.Itoa(sched.Quarter(slot)),
			rotation.Clock(sched.SlotStart(slot)),
			rotation.Clock(sched.SlotEnd(slot)),
			rotation.Minutes(sched.SlotDuration),
		}

		for player := range sched.Roster {
			if sched.OnCourt[slot][player] {
				record = append(record, "1")
			} else {
				record = append(record, "0")
			}
		}

		_ = writer.Write(record)
	}

	writer.Flush()
	return writer.Error()
}
