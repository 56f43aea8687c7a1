// Package store owns the site's content collections.
//
// Collections are replaced wholesale: every setter validates the new value,
// stores a private copy and leaves the other collections untouched. Slices
// returned by getters are shared with the store and must be treated as read-only.
package store

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/kevinaaaquil/oct-library/models"
	"github.com/kevinaaaquil/oct-library/seed"
	"github.com/kevinaaaquil/oct-library/validation"
)

// Snapshot is a consistent view of every collection at one moment.
type Snapshot struct {
	Books       []models.Book           `json:"books"`
	News        []models.NewsItem       `json:"news"`
	ClosedDates []models.ClosedDate     `json:"closedDates"`
	Feature     models.MonthlyFeature   `json:"feature"`
	Librarians  []models.Librarian      `json:"librarians"`
	Survey      []models.SurveyQuestion `json:"survey"`
}

type Store struct {
	mu sync.RWMutex

	books       []models.Book
	news        []models.NewsItem
	closedDates []models.ClosedDate
	feature     models.MonthlyFeature
	librarians  []models.Librarian
	survey      []models.SurveyQuestion

	validate *validation.Validator
	logger   *slog.Logger
}

// New creates a store holding initial. Every collection is validated as if it had been set.
func New(initial Snapshot, logger *slog.Logger) (*Store, error) {
	s := &Store{
		librarians: slices.Clone(initial.Librarians),
		validate:   validation.New(),
		logger:     logger,
	}
	if err := s.SetBooks(initial.Books); err != nil {
		return nil, err
	}
	if err := s.SetNews(initial.News); err != nil {
		return nil, err
	}
	if err := s.SetClosedDates(initial.ClosedDates); err != nil {
		return nil, err
	}
	if err := s.SetFeature(initial.Feature); err != nil {
		return nil, err
	}
	if err := s.SetSurvey(initial.Survey); err != nil {
		return nil, err
	}
	logger.Info("content store ready",
		"books", len(s.books),
		"news", len(s.news),
		"closed_dates", len(s.closedDates),
		"survey_questions", len(s.survey),
	)
	return s, nil
}

// Seeded returns the collections the site starts with.
func Seeded() Snapshot {
	return Snapshot{
		Books:       seed.Books(),
		News:        seed.News(),
		ClosedDates: seed.ClosedDates(),
		Feature:     seed.Feature(),
		Librarians:  seed.Librarians(),
		Survey:      seed.Survey(),
	}
}

// Snapshot returns every collection under a single read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Books:       s.books,
		News:        s.news,
		ClosedDates: s.closedDates,
		Feature:     s.feature,
		Librarians:  s.librarians,
		Survey:      s.survey,
	}
}
