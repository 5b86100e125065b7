package store

import (
	"sort"

	"barber-agenda/internal/domain"
	"barber-agenda/internal/pkg/errs"
	"barber-agenda/internal/pkg/patch"
)

type NewAppointment struct {
	ClientID      string
	ServiceIDs    []string
	Date          string
	Time          string
	Price         domain.Money
	PaymentMethod domain.PaymentMethod
	Notes         string
}

type AppointmentPatch struct {
	ClientID      *string
	ServiceIDs    *[]string
	Date          *string
	Time          *string
	Price         *domain.Money
	PaymentStatus *domain.PaymentStatus
	PaymentMethod *domain.PaymentMethod
	Notes         *string
}

// AddAppointment books a slot. The price is stored as given — a snapshot
// decoupled from later catalog edits. Status starts SCHEDULED, payment
// PENDING.
func (s *Store) AddAppointment(in NewAppointment) (domain.Appointment, error) {
	apt := domain.Appointment{
		ID:            s.ids.NewID(),
		ClientID:      in.ClientID,
		ServiceIDs:    copySlice(in.ServiceIDs),
		Date:          in.Date,
		Time:          in.Time,
		Status:        domain.InitialStatus(),
		Price:         in.Price,
		PaymentStatus: domain.PaymentPending,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CreatedAt:     s.now(),
	}
	if err := apt.Validate(); err != nil {
		return domain.Appointment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(copySlice(s.appointments), apt)
	if err := s.persist(keyAppointments, next); err != nil {
		return domain.Appointment{}, err
	}
	s.appointments = next
	return apt, nil
}

// UpdateAppointment is the edit path: set fields are merged and the merged
// record re-runs the same validation as creation. Unknown id is a silent
// no-op.
func (s *Store) UpdateAppointment(id string, p AppointmentPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.appointments, id, func(a domain.Appointment) string { return a.ID })
	if i < 0 {
		return nil
	}

	next := copySlice(s.appointments)
	apt := next[i]
	apt.ClientID = patch.Coalesce(p.ClientID, apt.ClientID)
	if p.ServiceIDs != nil {
		apt.ServiceIDs = copySlice(*p.ServiceIDs)
	}
	apt.Date = patch.Coalesce(p.Date, apt.Date)
	apt.Time = patch.Coalesce(p.Time, apt.Time)
	apt.Price = patch.Coalesce(p.Price, apt.Price)
	apt.PaymentStatus = patch.Coalesce(p.PaymentStatus, apt.PaymentStatus)
	apt.PaymentMethod = patch.Coalesce(p.PaymentMethod, apt.PaymentMethod)
	apt.Notes = patch.Coalesce(p.Notes, apt.Notes)
	if err := apt.Validate(); err != nil {
		return err
	}
	next[i] = apt

	if err := s.persist(keyAppointments, next); err != nil {
		return err
	}
	s.appointments = next
	return nil
}

// DeleteAppointment hard-removes the record. Cancelling instead retains it
// with status CANCELLED; see CancelAppointment.
func (s *Store) DeleteAppointment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.appointments, id, func(a domain.Appointment) string { return a.ID })
	if i < 0 {
		return nil
	}

	next := append(copySlice(s.appointments[:i]), s.appointments[i+1:]...)
	if err := s.persist(keyAppointments, next); err != nil {
		return err
	}
	s.appointments = next
	return nil
}

// CancelAppointment moves a scheduled appointment to CANCELLED, which
// excludes it from revenue and frees its slot.
func (s *Store) CancelAppointment(id string) error {
	return s.transition(id, (*domain.Appointment).Cancel)
}

// CompleteAppointment moves a scheduled appointment to COMPLETED.
func (s *Store) CompleteAppointment(id string) error {
	return s.transition(id, (*domain.Appointment).Complete)
}

func (s *Store) transition(id string, fn func(*domain.Appointment) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.appointments, id, func(a domain.Appointment) string { return a.ID })
	if i < 0 {
		return errs.Mark(errs.Newf("appointment %s", id), errs.ErrNotFound)
	}

	next := copySlice(s.appointments)
	if err := fn(&next[i]); err != nil {
		return err
	}

	if err := s.persist(keyAppointments, next); err != nil {
		return err
	}
	s.appointments = next
	return nil
}

// SetPaymentStatus toggles payment state independently of scheduling state.
func (s *Store) SetPaymentStatus(id string, status domain.PaymentStatus, method domain.PaymentMethod) error {
	return s.UpdateAppointment(id, AppointmentPatch{
		PaymentStatus: &status,
		PaymentMethod: &method,
	})
}

func (s *Store) AppointmentByID(id string) (domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexByID(s.appointments, id, func(a domain.Appointment) string { return a.ID })
	if i < 0 {
		return domain.Appointment{}, errs.Mark(errs.Newf("appointment %s", id), errs.ErrNotFound)
	}
	return deepCopy(s.appointments[i]), nil
}

func (s *Store) Appointments() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.appointments)
}

// AppointmentsByDate returns the day's appointments ordered by time
// ascending. Lexicographic order is correct because HH:mm is fixed-width
// zero-padded.
func (s *Store) AppointmentsByDate(date string) []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Appointment
	for _, a := range s.appointments {
		if a.Date == date {
			out = append(out, deepCopy(a))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}
