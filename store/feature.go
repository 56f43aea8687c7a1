package store

import (
	"github.com/kevinaaaquil/oct-library/models"
)

func (s *Store) Feature() models.MonthlyFeature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feature
}

// SetFeature replaces the monthly feature.
func (s *Store) SetFeature(f models.MonthlyFeature) error {
	if err := s.validate.Struct(f); err != nil {
		return err
	}
	f.Books = cloneNonNil(f.Books)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feature = f
	s.logger.Debug("feature replaced", "title", f.Title)
	return nil
}

// FeatureBooks resolves the feature's related book ids against the catalogue, in feature order.
// Ids without a matching book are skipped.
func (s *Store) FeatureBooks() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ResolveBooks(s.books, s.feature.Books)
}

// ResolveBooks looks ids up in books, keeping the order of ids and skipping misses.
func ResolveBooks(books []models.Book, ids []string) []models.Book {
	out := make([]models.Book, 0, len(ids))
	for _, id := range ids {
		if i := indexByID(books, bookID, id); i >= 0 {
			out = append(out, books[i])
		}
	}
	return out
}
