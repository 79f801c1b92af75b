// Copyright © 2025 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rotation

import (
	"fmt"
	"time"
)

// PlayerMinutes is the total court time of the given player.
func (sched *Schedule) PlayerMinutes(player int) time.Duration {
	return time.Duration(sched.PlayerSlots[player]) * sched.SlotDuration
}

// TotalCourtTime is the total player-time handed out over the game, which
// always equals game duration times court capacity.
func (sched *Schedule) TotalCourtTime() time.Duration {
	total := time.Duration(0)
	for player := range sched.Roster {
		total += sched.PlayerMinutes(player)
	}

	return total
}

// AverageMinutes is the court time every player would get under perfectly
// fractional fairness.
func (sched *Schedule) AverageMinutes() time.Duration {
	return sched.TotalCourtTime() / time.Duration(len(sched.Roster))
}

// MinutesSpread is the difference in court time between the most and the
// least played player. At most one slot duration.
func (sched *Schedule) MinutesSpread() time.Duration {
	min, max := sched.PlayerMinutes(0), sched.PlayerMinutes(0)
	for player := range sched.Roster {
		minutes := sched.PlayerMinutes(player)
		if minutes < min {
			min = minutes
		}
		if minutes > max {
			max = minutes
		}
	}

	return max - min
}

// PlayerStints is the number of separate on-court spans of the given player.
func (sched *Schedule) PlayerStints(player int) int {
	stints := 0
	for slot := 0; slot < sched.SlotCount; slot++ {
		if sched.OnCourt[slot][player] &&
			(slot == 0 || !sched.OnCourt[slot-1][player]) {
			stints++
		}
	}

	return stints
}

// Quarter is the 1-based game period the given slot falls in.
func (sched *Schedule) Quarter(slot int) int {
	return slot*sched.Config.Quarters/sched.SlotCount + 1
}

// SlotStart is the game clock at the start of the given slot.
func (sched *Schedule) SlotStart(slot int) time.Duration {
	return time.Duration(slot) * sched.SlotDuration
}

// SlotEnd is the game clock at the end of the given slot.
func (sched *Schedule) SlotEnd(slot int) time.Duration {
	return time.Duration(slot+1) * sched.SlotDuration
}

// Clock formats a game-clock offset as MM:SS.
func Clock(offset time.Duration) string {
	seconds := int(offset / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Minutes formats a duration as decimal minutes, like "2.5".
func Minutes(duration time.Duration) string {
	return fmt.Sprintf("%.1f", duration.Minutes())
}
