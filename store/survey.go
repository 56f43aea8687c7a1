package store

import (
	"github.com/kevinaaaquil/oct-library/models"
)

func questionID(q models.SurveyQuestion) string { return q.ID }

func (s *Store) Survey() []models.SurveyQuestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.survey
}

// SetSurvey replaces the questionnaire.
func (s *Store) SetSurvey(questions []models.SurveyQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setSurveyLocked(questions)
}

func (s *Store) setSurveyLocked(questions []models.SurveyQuestion) error {
	if err := s.validate.Slice(questions); err != nil {
		return err
	}
	if err := checkUniqueIDs(questions, questionID, "survey question"); err != nil {
		return err
	}
	s.survey = cloneNonNil(questions)
	s.logger.Debug("survey replaced", "count", len(s.survey))
	return nil
}

func (s *Store) UpdateQuestion(id string, q models.SurveyQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = id
	next, err := replaced(s.survey, questionID, id, q, "survey question")
	if err != nil {
		return err
	}
	return s.setSurveyLocked(next)
}

func (s *Store) AddQuestion(q models.SurveyQuestion) (models.SurveyQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q.ID == "" {
		q.ID = newID()
	}
	next, err := appended(s.survey, questionID, q, "survey question")
	if err != nil {
		return models.SurveyQuestion{}, err
	}
	if err := s.setSurveyLocked(next); err != nil {
		return models.SurveyQuestion{}, err
	}
	return q, nil
}

func (s *Store) DeleteQuestion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := without(s.survey, questionID, id, "survey question")
	if err != nil {
		return err
	}
	return s.setSurveyLocked(next)
}
