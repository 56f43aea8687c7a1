package store

import (
	"github.com/kevinaaaquil/oct-library/models"
)

func closedDateID(c models.ClosedDate) string { return c.ID }

func (s *Store) ClosedDates() []models.ClosedDate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closedDates
}

// SetClosedDates replaces the closures calendar.
func (s *Store) SetClosedDates(dates []models.ClosedDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setClosedDatesLocked(dates)
}

func (s *Store) setClosedDatesLocked(dates []models.ClosedDate) error {
	if err := s.validate.Slice(dates); err != nil {
		return err
	}
	if err := checkUniqueIDs(dates, closedDateID, "closed date"); err != nil {
		return err
	}
	s.closedDates = cloneNonNil(dates)
	s.logger.Debug("closed dates replaced", "count", len(s.closedDates))
	return nil
}

func (s *Store) UpdateClosedDate(id string, c models.ClosedDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = id
	next, err := replaced(s.closedDates, closedDateID, id, c, "closed date")
	if err != nil {
		return err
	}
	return s.setClosedDatesLocked(next)
}

func (s *Store) AddClosedDate(c models.ClosedDate) (models.ClosedDate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = newID()
	}
	next, err := appended(s.closedDates, closedDateID, c, "closed date")
	if err != nil {
		return models.ClosedDate{}, err
	}
	if err := s.setClosedDatesLocked(next); err != nil {
		return models.ClosedDate{}, err
	}
	return c, nil
}

func (s *Store) DeleteClosedDate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := without(s.closedDates, closedDateID, id, "closed date")
	if err != nil {
		return err
	}
	return s.setClosedDatesLocked(next)
}
