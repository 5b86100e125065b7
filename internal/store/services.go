package store

import (
	"barber-agenda/internal/domain"
	"barber-agenda/internal/pkg/errs"
	"barber-agenda/internal/pkg/patch"
)

type NewService struct {
	Name            string
	DurationMinutes int
	Price           domain.Money
}

type ServicePatch struct {
	Name            *string
	DurationMinutes *int
	Price           *domain.Money
}

func (s *Store) AddService(in NewService) (domain.Service, error) {
	service := domain.Service{
		ID:              s.ids.NewID(),
		Name:            in.Name,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
	}
	if err := service.Validate(); err != nil {
		return domain.Service{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(copySlice(s.services), service)
	if err := s.persist(keyServices, next); err != nil {
		return domain.Service{}, err
	}
	s.services = next
	return service, nil
}

// UpdateService changes the catalog only. Appointments keep the price that
// was snapshotted when they were booked.
func (s *Store) UpdateService(id string, p ServicePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.services, id, func(v domain.Service) string { return v.ID })
	if i < 0 {
		return nil
	}

	next := copySlice(s.services)
	svc := next[i]
	svc.Name = patch.Coalesce(p.Name, svc.Name)
	svc.DurationMinutes = patch.Coalesce(p.DurationMinutes, svc.DurationMinutes)
	svc.Price = patch.Coalesce(p.Price, svc.Price)
	if err := svc.Validate(); err != nil {
		return err
	}
	next[i] = svc

	if err := s.persist(keyServices, next); err != nil {
		return err
	}
	s.services = next
	return nil
}

func (s *Store) DeleteService(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.services, id, func(v domain.Service) string { return v.ID })
	if i < 0 {
		return nil
	}

	next := append(copySlice(s.services[:i]), s.services[i+1:]...)
	if err := s.persist(keyServices, next); err != nil {
		return err
	}
	s.services = next
	return nil
}

func (s *Store) ServiceByID(id string) (domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexByID(s.services, id, func(v domain.Service) string { return v.ID })
	if i < 0 {
		return domain.Service{}, errs.Mark(errs.Newf("service %s", id), errs.ErrNotFound)
	}
	return deepCopy(s.services[i]), nil
}

func (s *Store) Services() []domain.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.services)
}
