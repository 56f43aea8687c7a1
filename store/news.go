package store

import (
	"github.com/kevinaaaquil/oct-library/models"
)

func newsID(n models.NewsItem) string { return n.ID }

func (s *Store) News() []models.NewsItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.news
}

// SetNews replaces the bulletins.
func (s *Store) SetNews(news []models.NewsItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setNewsLocked(news)
}

func (s *Store) setNewsLocked(news []models.NewsItem) error {
	if err := s.validate.Slice(news); err != nil {
		return err
	}
	if err := checkUniqueIDs(news, newsID, "news"); err != nil {
		return err
	}
	s.news = cloneNonNil(news)
	s.logger.Debug("news replaced", "count", len(s.news))
	return nil
}

func (s *Store) NewsByID(id string) (models.NewsItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.news, newsID, id); i >= 0 {
		return s.news[i], true
	}
	return models.NewsItem{}, false
}

func (s *Store) UpdateNews(id string, n models.NewsItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = id
	next, err := replaced(s.news, newsID, id, n, "news")
	if err != nil {
		return err
	}
	return s.setNewsLocked(next)
}

func (s *Store) AddNews(n models.NewsItem) (models.NewsItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.ID == "" {
		n.ID = newID()
	}
	next, err := appended(s.news, newsID, n, "news")
	if err != nil {
		return models.NewsItem{}, err
	}
	if err := s.setNewsLocked(next); err != nil {
		return models.NewsItem{}, err
	}
	return n, nil
}

func (s *Store) DeleteNews(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := without(s.news, newsID, id, "news")
	if err != nil {
		return err
	}
	return s.setNewsLocked(next)
}
