package schedule

import (
	"sort"

	"barber-agenda/internal/domain"
)

// Slot is one time point of a day's grid. Appointment is nil when the slot
// is free; occupancy requires a non-cancelled appointment whose time equals
// the slot string exactly.
type Slot struct {
	Time        string
	Appointment *domain.Appointment
}

func (s Slot) Occupied() bool {
	return s.Appointment != nil
}

// BuildDay classifies each slot of a day against that day's appointments.
// If two non-cancelled appointments share a time — a data-integrity
// violation the store does not prevent — the earliest-created (then
// lowest-id) one wins deterministically; the grid must render, not crash.
// Use DuplicateTimes to surface the anomaly.
func BuildDay(slots []string, appointments []domain.Appointment) []Slot {
	byTime := make(map[string]domain.Appointment, len(appointments))
	for _, a := range appointments {
		if a.IsCancelled() {
			continue
		}
		cur, ok := byTime[a.Time]
		if !ok || wins(a, cur) {
			byTime[a.Time] = a
		}
	}

	day := make([]Slot, len(slots))
	for i, t := range slots {
		day[i] = Slot{Time: t}
		if a, ok := byTime[t]; ok {
			apt := a
			day[i].Appointment = &apt
		}
	}
	return day
}

// DuplicateTimes lists the times claimed by more than one non-cancelled
// appointment, sorted, so callers can log the integrity violation.
func DuplicateTimes(appointments []domain.Appointment) []string {
	seen := make(map[string]int)
	for _, a := range appointments {
		if !a.IsCancelled() {
			seen[a.Time]++
		}
	}

	var dups []string
	for t, n := range seen {
		if n > 1 {
			dups = append(dups, t)
		}
	}
	sort.Strings(dups)
	return dups
}

func wins(a, b domain.Appointment) bool {
	if a.CreatedAt != b.CreatedAt {
		return a.CreatedAt < b.CreatedAt
	}
	return a.ID < b.ID
}
