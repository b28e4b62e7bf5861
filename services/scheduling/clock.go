package scheduling

import "fmt"

// SlotInterval is the booking granularity in minutes. Every offered slot
// starts on a SlotInterval boundary within its window.
const SlotInterval = 30

// TimeToMinutes parses a 24-hour "HH:MM" string into minutes from midnight.
// Every character position is checked, so inputs like "9:30" or "09:3x"
// are rejected rather than coerced.
func TimeToMinutes(t string) (int, error) {
	if len(t) != 5 || t[2] != ':' ||
		!isDigit(t[0]) || !isDigit(t[1]) || !isDigit(t[3]) || !isDigit(t[4]) {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", t)
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", t)
	}
	return h*60 + m, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// MinutesToTime renders minutes from midnight as a zero-padded "HH:MM"
// string. Values are wrapped into a single day.
func MinutesToTime(mins int) string {
	mins = ((mins % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// WindowSlots expands a half-open [start, end) window into slot start times
// at SlotInterval steps. The slot landing exactly on end is excluded. An
// inverted or malformed window yields no slots.
func WindowSlots(startTime, endTime string) []string {
	start, err := TimeToMinutes(startTime)
	if err != nil {
		return nil
	}
	end, err := TimeToMinutes(endTime)
	if err != nil {
		return nil
	}
	var slots []string
	for t := start; t < end; t += SlotInterval {
		slots = append(slots, MinutesToTime(t))
	}
	return slots
}
