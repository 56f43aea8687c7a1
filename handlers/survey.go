package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/kevinaaaquil/oct-library/overlay"
	"github.com/kevinaaaquil/oct-library/store"
)

// SurveyHandler accepts survey submissions. Answers are not kept.
type SurveyHandler struct {
	Store  *store.Store
	Logger *slog.Logger
}

// answerField is the form field carrying the answer to question id.
func answerField(id string) string {
	return "answer_" + id
}

// Submit serves POST /survey and closes the survey modal.
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	questions := h.Store.Survey()
	answered := 0
	for _, q := range questions {
		if strings.TrimSpace(r.PostFormValue(answerField(q.ID))) != "" {
			answered++
		}
	}
	h.Logger.Info("survey submitted", "answered", answered, "questions", len(questions))
	http.Redirect(w, r, pageURL(overlay.Close(), r.FormValue(monthParam)), http.StatusSeeOther)
}
