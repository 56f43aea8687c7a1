package store

import "github.com/kevinaaaquil/oct-library/models"

// Librarians returns the staff list. It is fixed when the store is created.
func (s *Store) Librarians() []models.Librarian {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.librarians
}
