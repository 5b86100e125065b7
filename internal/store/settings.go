package store

import (
	"barber-agenda/internal/domain"
	"barber-agenda/internal/pkg/patch"
)

type SettingsPatch struct {
	ShopName      *string
	ShopPhone     *string
	WorkStartTime *string
	WorkEndTime   *string
	WorkDays      *[]int
}

func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.settings)
}

// UpdateSettings merges set fields into the singleton settings record.
func (s *Store) UpdateSettings(p SettingsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := deepCopy(s.settings)
	next.ShopName = patch.Coalesce(p.ShopName, next.ShopName)
	next.ShopPhone = patch.Coalesce(p.ShopPhone, next.ShopPhone)
	next.WorkStartTime = patch.Coalesce(p.WorkStartTime, next.WorkStartTime)
	next.WorkEndTime = patch.Coalesce(p.WorkEndTime, next.WorkEndTime)
	if p.WorkDays != nil {
		next.WorkDays = copySlice(*p.WorkDays)
	}

	if p.WorkStartTime != nil && !domain.ValidTime(next.WorkStartTime) {
		return domain.ErrInvalidTime
	}
	if p.WorkEndTime != nil && !domain.ValidTime(next.WorkEndTime) {
		return domain.ErrInvalidTime
	}

	if err := s.persist(keySettings, next); err != nil {
		return err
	}
	s.settings = next
	return nil
}
