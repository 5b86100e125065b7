package store

import (
	"barber-agenda/internal/domain"
	"barber-agenda/internal/pkg/errs"
	"barber-agenda/internal/pkg/patch"
)

type NewClient struct {
	Name  string
	Phone string
	Notes string
}

// ClientPatch merges set fields into an existing client; nil fields are left
// untouched.
type ClientPatch struct {
	Name  *string
	Phone *string
	Notes *string
}

func (s *Store) AddClient(in NewClient) (domain.Client, error) {
	client := domain.Client{
		ID:        s.ids.NewID(),
		Name:      in.Name,
		Phone:     in.Phone,
		Notes:     in.Notes,
		CreatedAt: s.now(),
	}
	if err := client.Validate(); err != nil {
		return domain.Client{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(copySlice(s.clients), client)
	if err := s.persist(keyClients, next); err != nil {
		return domain.Client{}, err
	}
	s.clients = next
	return client, nil
}

// UpdateClient is a silent no-op when id is unknown; the same policy applies
// to every collection.
func (s *Store) UpdateClient(id string, p ClientPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.clients, id, func(c domain.Client) string { return c.ID })
	if i < 0 {
		return nil
	}

	next := copySlice(s.clients)
	c := next[i]
	c.Name = patch.Coalesce(p.Name, c.Name)
	c.Phone = patch.Coalesce(p.Phone, c.Phone)
	c.Notes = patch.Coalesce(p.Notes, c.Notes)
	if err := c.Validate(); err != nil {
		return err
	}
	next[i] = c

	if err := s.persist(keyClients, next); err != nil {
		return err
	}
	s.clients = next
	return nil
}

// DeleteClient removes the client without touching appointments that
// reference it; dangling references render as "removed client".
func (s *Store) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.clients, id, func(c domain.Client) string { return c.ID })
	if i < 0 {
		return nil
	}

	next := append(copySlice(s.clients[:i]), s.clients[i+1:]...)
	if err := s.persist(keyClients, next); err != nil {
		return err
	}
	s.clients = next
	return nil
}

func (s *Store) ClientByID(id string) (domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexByID(s.clients, id, func(c domain.Client) string { return c.ID })
	if i < 0 {
		return domain.Client{}, errs.Mark(errs.Newf("client %s", id), errs.ErrNotFound)
	}
	return deepCopy(s.clients[i]), nil
}

func (s *Store) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.clients)
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func indexByID[T any](in []T, id string, key func(T) string) int {
	for i, v := range in {
		if key(v) == id {
			return i
		}
	}
	return -1
}
