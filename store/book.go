package store

import (
	"github.com/kevinaaaquil/oct-library/models"
)

func bookID(b models.Book) string { return b.ID }

func (s *Store) Books() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.books
}

// SetBooks replaces the catalogue.
func (s *Store) SetBooks(books []models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setBooksLocked(books)
}

func (s *Store) setBooksLocked(books []models.Book) error {
	if err := s.validate.Slice(books); err != nil {
		return err
	}
	if err := checkUniqueIDs(books, bookID, "book"); err != nil {
		return err
	}
	s.books = cloneNonNil(books)
	s.logger.Debug("books replaced", "count", len(s.books))
	return nil
}

// BookByID returns the book with id.
func (s *Store) BookByID(id string) (models.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.books, bookID, id); i >= 0 {
		return s.books[i], true
	}
	return models.Book{}, false
}

// RecommendedBooks returns books flagged for the recommended section, in catalogue order.
func (s *Store) RecommendedBooks() []models.Book {
	return Recommended(s.Books())
}

// NewBooks returns books flagged as new arrivals, in catalogue order.
func (s *Store) NewBooks() []models.Book {
	return NewArrivals(s.Books())
}

// Recommended filters books down to the recommended section, keeping order.
func Recommended(books []models.Book) []models.Book {
	return filterBooks(books, func(b models.Book) bool { return b.IsRecommended })
}

// NewArrivals filters books down to the new-arrivals section, keeping order.
func NewArrivals(books []models.Book) []models.Book {
	return filterBooks(books, func(b models.Book) bool { return b.IsNew })
}

func filterBooks(books []models.Book, keep func(models.Book) bool) []models.Book {
	out := []models.Book{}
	for _, b := range books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// UpdateBook replaces the book with id. The id itself cannot change.
func (s *Store) UpdateBook(id string, b models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = id
	next, err := replaced(s.books, bookID, id, b, "book")
	if err != nil {
		return err
	}
	return s.setBooksLocked(next)
}

// AddBook appends b, generating an id when it has none, and returns the stored record.
func (s *Store) AddBook(b models.Book) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		b.ID = newID()
	}
	next, err := appended(s.books, bookID, b, "book")
	if err != nil {
		return models.Book{}, err
	}
	if err := s.setBooksLocked(next); err != nil {
		return models.Book{}, err
	}
	return b, nil
}

// DeleteBook removes the book with id. Feature references to it are left to dangle.
func (s *Store) DeleteBook(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := without(s.books, bookID, id, "book")
	if err != nil {
		return err
	}
	return s.setBooksLocked(next)
}
