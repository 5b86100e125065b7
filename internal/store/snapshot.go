package store

import (
	"encoding/json"
	"time"

	"barber-agenda/internal/domain"
	"barber-agenda/internal/pkg/errs"
)

// Export returns a full snapshot of all collections plus settings, stamped
// with the export time and the current snapshot version.
func (s *Store) Export() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := deepCopy(s.settings)
	return domain.Snapshot{
		Clients:      orEmpty(deepCopy(s.clients)),
		Services:     orEmpty(deepCopy(s.services)),
		Appointments: orEmpty(deepCopy(s.appointments)),
		Settings:     &settings,
		ExportDate:   s.clock.Now().UTC().Format(time.RFC3339),
		Version:      domain.SnapshotVersion,
	}
}

// ExportJSON renders the snapshot pretty-printed, the shape backup files
// have always had.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "encode snapshot"), errs.ErrStorage)
	}
	return data, nil
}

// ImportJSON replaces state wholesale from a backup document. It is
// all-or-nothing: malformed JSON, a non-object document or an unsupported
// version reject the import before any state is touched. Top-level keys that
// are absent leave the corresponding collection unchanged.
func (s *Store) ImportJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errs.Mark(errs.Wrap(err, "decode snapshot"), errs.ErrParse)
	}

	// Exports before versioning was introduced carry no version field;
	// they are accepted as version 1.0.
	if v, ok := raw["version"]; ok {
		var version string
		if err := json.Unmarshal(v, &version); err != nil {
			return errs.Mark(errs.Wrap(err, "decode snapshot version"), errs.ErrParse)
		}
		if version != "" && version != domain.SnapshotVersion {
			return errs.Mark(errs.Newf("snapshot version %q", version), errs.ErrUnsupportedVersion)
		}
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return errs.Mark(errs.Wrap(err, "decode snapshot"), errs.ErrParse)
	}
	return s.Import(snap)
}

// Import applies a parsed snapshot. Nil slices and nil settings mean "keep
// the current value".
func (s *Store) Import(snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients := s.clients
	if snap.Clients != nil {
		clients = deepCopy(snap.Clients)
	}
	services := s.services
	if snap.Services != nil {
		services = deepCopy(snap.Services)
	}
	appointments := s.appointments
	if snap.Appointments != nil {
		appointments = deepCopy(snap.Appointments)
	}
	settings := s.settings
	if snap.Settings != nil {
		settings = deepCopy(*snap.Settings)
	}

	if err := s.persistAll(clients, services, appointments, settings); err != nil {
		return err
	}

	s.clients = clients
	s.services = services
	s.appointments = appointments
	s.settings = settings
	s.log.Info("imported snapshot",
		"clients", len(clients), "services", len(services), "appointments", len(appointments))
	return nil
}

// ResetAll wipes every collection, restores default settings and re-seeds
// the default catalog. Destructive and unconditional; confirmation belongs
// to the caller.
func (s *Store) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients := []domain.Client{}
	services := defaultCatalog()
	appointments := []domain.Appointment{}
	settings := domain.DefaultSettings()

	if err := s.persistAll(clients, services, appointments, settings); err != nil {
		return err
	}

	s.clients = clients
	s.services = services
	s.appointments = appointments
	s.settings = settings
	s.log.Info("reset all data to factory state")
	return nil
}

func (s *Store) persistAll(
	clients []domain.Client,
	services []domain.Service,
	appointments []domain.Appointment,
	settings domain.Settings,
) error {
	if err := s.persist(keyClients, clients); err != nil {
		return err
	}
	if err := s.persist(keyServices, services); err != nil {
		return err
	}
	if err := s.persist(keyAppointments, appointments); err != nil {
		return err
	}
	return s.persist(keySettings, settings)
}
