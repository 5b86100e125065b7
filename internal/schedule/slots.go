// Package schedule derives bookable time slots and financial aggregates from
// settings and appointments. Everything here is a pure function over explicit
// inputs; the package owns no state and never mutates its arguments.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultSlotMinutes is the booking granularity: one slot per half hour.
const DefaultSlotMinutes = 30

// GenerateSlots emits every "HH:mm" time point t with start <= t < end,
// stepping by intervalMinutes. An inverted or empty window, a non-positive
// interval or unparseable bounds all yield an empty sequence; the calendar
// degrades to "closed" rather than failing.
func GenerateSlots(start, end string, intervalMinutes int) []string {
	startMin, ok := parseMinutes(start)
	if !ok {
		return nil
	}
	endMin, ok := parseMinutes(end)
	if !ok {
		return nil
	}
	if intervalMinutes <= 0 || endMin <= startMin {
		return nil
	}

	slots := make([]string, 0, (endMin-startMin)/intervalMinutes)
	for m := startMin; m < endMin; m += intervalMinutes {
		slots = append(slots, formatMinutes(m))
	}
	return slots
}

// IsWorkDay reports whether t falls on a configured work day
// (0 = Sunday .. 6 = Saturday). An empty workDays set fails open: every day
// is a work day, so a misconfigured shop never loses its whole calendar.
func IsWorkDay(t time.Time, workDays []int) bool {
	if len(workDays) == 0 {
		return true
	}
	day := int(t.Weekday())
	for _, d := range workDays {
		if d == day {
			return true
		}
	}
	return false
}

// WeekDays returns 14 consecutive calendar dates starting from the Sunday on
// or before anchor: the current week plus the next, for the calendar strip.
func WeekDays(anchor time.Time) []time.Time {
	sunday := anchor.AddDate(0, 0, -int(anchor.Weekday()))
	sunday = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, anchor.Location())

	days := make([]time.Time, 14)
	for i := range days {
		days[i] = sunday.AddDate(0, 0, i)
	}
	return days
}

func parseMinutes(hm string) (int, bool) {
	h, m, ok := strings.Cut(hm, ":")
	if !ok {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
