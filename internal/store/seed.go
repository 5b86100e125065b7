package store

import "barber-agenda/internal/domain"

// defaultCatalog is the starter service list seeded on first run and after a
// reset, so the agenda is never empty on a fresh install.
func defaultCatalog() []domain.Service {
	return []domain.Service{
		{ID: "1", Name: "Corte Cabelo", DurationMinutes: 30, Price: domain.MoneyFromAmount(35)},
		{ID: "2", Name: "Barba", DurationMinutes: 20, Price: domain.MoneyFromAmount(25)},
		{ID: "3", Name: "Combo (Corte + Barba)", DurationMinutes: 50, Price: domain.MoneyFromAmount(50)},
		{ID: "4", Name: "Sobrancelha", DurationMinutes: 10, Price: domain.MoneyFromAmount(10)},
	}
}
