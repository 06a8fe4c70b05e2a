package problemgen

import "fmt"

// minuteSlots are the minute positions a clock exercise can show.
var minuteSlots = []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55}

// ClockTime is a clock reading exercise.
type ClockTime struct {
	ID      string
	Hours   int // 1..12
	Minutes int // multiple of 5
}

// Check reports whether the reading matches.
func (c ClockTime) Check(hours, minutes int) bool {
	return hours == c.Hours && minutes == c.Minutes
}

// String renders the time as h:mm.
func (c ClockTime) String() string {
	return fmt.Sprintf("%d:%02d", c.Hours, c.Minutes)
}

// ClockTimes generates s.Count random times on a 12-hour dial.
func ClockTimes(s ClockSettings, r Rand) []ClockTime {
	if s.Count <= 0 {
		return []ClockTime{}
	}
	out := make([]ClockTime, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		hours := r.IntN(12)
		if hours == 0 {
			hours = 12
		}
		out = append(out, ClockTime{
			ID:      fmt.Sprintf("clock-%d-%s", i, shortID()),
			Hours:   hours,
			Minutes: minuteSlots[r.IntN(len(minuteSlots))],
		})
	}
	return out
}
