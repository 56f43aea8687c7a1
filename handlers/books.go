package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kevinaaaquil/oct-library/middleware"
	"github.com/kevinaaaquil/oct-library/overlay"
	"github.com/kevinaaaquil/oct-library/selection"
)

// BooksHandler toggles the visitor's reserved and want-to-read selections.
// Ids are not checked against the catalogue.
type BooksHandler struct {
	Sessions *middleware.Sessions
	Logger   *slog.Logger
}

func (h *BooksHandler) ToggleReserve(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "reserve", func(s *middleware.Session) *selection.Set { return &s.Reserved })
}

func (h *BooksHandler) ToggleWantToRead(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "want_to_read", func(s *middleware.Session) *selection.Set { return &s.WantToRead })
}

func (h *BooksHandler) toggle(w http.ResponseWriter, r *http.Request, list string, pick func(*middleware.Session) *selection.Set) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "invalid book id", http.StatusBadRequest)
		return
	}
	sess := middleware.SessionFromContext(r.Context())
	set := pick(&sess)
	*set = set.Toggle(id)
	if err := h.Sessions.Save(w, sess); err != nil {
		h.Logger.Error("save session", "error", err)
		http.Error(w, "failed to save selection", http.StatusInternalServerError)
		return
	}
	h.Logger.Debug("selection toggled", "list", list, "book_id", id, "selected", set.Has(id))
	http.Redirect(w, r, pageURL(overlay.Open(overlay.BookDetail, id), r.FormValue(monthParam)), http.StatusSeeOther)
}
