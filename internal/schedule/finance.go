package schedule

import "barber-agenda/internal/domain"

// Summary aggregates the whole appointment collection for the finance view.
// Cancelled appointments are excluded from every figure.
type Summary struct {
	TotalRevenue   domain.Money
	PaidRevenue    domain.Money
	PendingRevenue domain.Money
	AverageTicket  domain.Money
	Count          int
}

// DayStats summarizes a single day for the agenda header.
type DayStats struct {
	Revenue   domain.Money
	Total     int
	Completed int
}

// DailyRevenue sums prices of a day's non-cancelled appointments. Zero for
// an empty day.
func DailyRevenue(appointments []domain.Appointment) domain.Money {
	var total domain.Money
	for _, a := range appointments {
		if a.CountsForRevenue() {
			total = total.Add(a.Price)
		}
	}
	return total
}

// Summarize computes the finance totals. AverageTicket is 0 when nothing
// qualifies; it never divides by zero.
func Summarize(appointments []domain.Appointment) Summary {
	var s Summary
	for _, a := range appointments {
		if !a.CountsForRevenue() {
			continue
		}
		s.Count++
		s.TotalRevenue = s.TotalRevenue.Add(a.Price)
		if a.PaymentStatus == domain.PaymentPaid {
			s.PaidRevenue = s.PaidRevenue.Add(a.Price)
		}
	}
	s.PendingRevenue = s.TotalRevenue - s.PaidRevenue
	s.AverageTicket = s.TotalRevenue.DivRound(s.Count)
	return s
}

// Stats gathers the day counters shown above the agenda.
func Stats(appointments []domain.Appointment) DayStats {
	var st DayStats
	for _, a := range appointments {
		if !a.CountsForRevenue() {
			continue
		}
		st.Total++
		st.Revenue = st.Revenue.Add(a.Price)
		if a.Status == domain.StatusCompleted {
			st.Completed++
		}
	}
	return st
}
