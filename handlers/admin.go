package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kevinaaaquil/oct-library/apperr"
	"github.com/kevinaaaquil/oct-library/models"
	"github.com/kevinaaaquil/oct-library/overlay"
	"github.com/kevinaaaquil/oct-library/store"
)

// AdminHandler serves the admin modal's forms. Every change replaces one
// collection wholesale; the page is re-rendered with the error on failure.
type AdminHandler struct {
	Store   *store.Store
	Pages   *PagesHandler
	Logger  *slog.Logger
	Enabled bool
}

// adminCollection binds a form collection name to its store helpers.
type adminCollection struct {
	add    func(s *store.Store, r *http.Request) (string, error)
	update func(s *store.Store, id string, r *http.Request) error
	remove func(s *store.Store, id string) error
}

var adminCollections = map[string]adminCollection{
	"books": {
		add: func(s *store.Store, r *http.Request) (string, error) {
			b, err := s.AddBook(bookFromForm(r))
			return b.ID, err
		},
		update: func(s *store.Store, id string, r *http.Request) error { return s.UpdateBook(id, bookFromForm(r)) },
		remove: (*store.Store).DeleteBook,
	},
	"news": {
		add: func(s *store.Store, r *http.Request) (string, error) {
			n, err := s.AddNews(newsFromForm(r))
			return n.ID, err
		},
		update: func(s *store.Store, id string, r *http.Request) error { return s.UpdateNews(id, newsFromForm(r)) },
		remove: (*store.Store).DeleteNews,
	},
	"closed-dates": {
		add: func(s *store.Store, r *http.Request) (string, error) {
			c, err := s.AddClosedDate(closedDateFromForm(r))
			return c.ID, err
		},
		update: func(s *store.Store, id string, r *http.Request) error {
			return s.UpdateClosedDate(id, closedDateFromForm(r))
		},
		remove: (*store.Store).DeleteClosedDate,
	},
	"survey": {
		add: func(s *store.Store, r *http.Request) (string, error) {
			q, err := s.AddQuestion(questionFromForm(r))
			return q.ID, err
		},
		update: func(s *store.Store, id string, r *http.Request) error {
			return s.UpdateQuestion(id, questionFromForm(r))
		},
		remove: (*store.Store).DeleteQuestion,
	},
}

// Guard hides the admin routes when admin editing is switched off.
func (h *AdminHandler) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Enabled {
			http.Error(w, apperr.ErrDisabled.Message, apperr.ErrDisabled.HTTPStatus())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Add serves POST /admin/{collection}.
func (h *AdminHandler) Add(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "collection")
	c, ok := adminCollections[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !h.parse(w, r) {
		return
	}
	id, err := c.add(h.Store, r)
	h.finish(w, r, err, "added", name, id, &adminFailure{Collection: name, Values: r.PostForm})
}

// Update serves POST /admin/{collection}/{id}.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	name, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")
	c, ok := adminCollections[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !h.parse(w, r) {
		return
	}
	h.finish(w, r, c.update(h.Store, id, r), "updated", name, id, &adminFailure{Collection: name, ID: id, Values: r.PostForm})
}

// Delete serves POST /admin/{collection}/{id}/delete.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")
	c, ok := adminCollections[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.finish(w, r, c.remove(h.Store, id), "deleted", name, id, &adminFailure{})
}

// Feature serves POST /admin/feature.
func (h *AdminHandler) Feature(w http.ResponseWriter, r *http.Request) {
	if !h.parse(w, r) {
		return
	}
	f := models.MonthlyFeature{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Subtitle:    r.PostFormValue("subtitle"),
		Description: r.PostFormValue("description"),
		Content:     r.PostFormValue("content"),
		ImageURL:    strings.TrimSpace(r.PostFormValue("imageUrl")),
		Books:       splitIDs(r.PostFormValue("books")),
	}
	h.finish(w, r, h.Store.SetFeature(f), "replaced", "feature", "", &adminFailure{Collection: "feature", Values: r.PostForm})
}

func (h *AdminHandler) parse(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	return true
}

// finish redirects back to the admin modal on success, keeping the calendar month.
// Store errors re-render the admin modal with the error and its status; failure says
// which form to refill with the submitted values.
func (h *AdminHandler) finish(w http.ResponseWriter, r *http.Request, err error, action, collection, id string, failure *adminFailure) {
	if err == nil {
		h.Logger.Info("content "+action, "collection", collection, "id", id)
		http.Redirect(w, r, pageURL(overlay.Navigate(overlay.Admin), r.FormValue(monthParam)), http.StatusSeeOther)
		return
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		h.Logger.Error("admin change failed", "collection", collection, "id", id, "error", err)
		appErr = apperr.Wrap(err, apperr.CodeInternal, "変更を保存できませんでした")
	}
	h.Logger.Warn("admin change rejected", "collection", collection, "id", id, "code", appErr.Code)
	failure.Err = appErr
	h.Pages.render(w, r, appErr.HTTPStatus(), overlay.Navigate(overlay.Admin), failure)
}

func bookFromForm(r *http.Request) models.Book {
	return models.Book{
		ID:            strings.TrimSpace(r.PostFormValue("id")),
		Title:         strings.TrimSpace(r.PostFormValue("title")),
		Author:        strings.TrimSpace(r.PostFormValue("author")),
		Description:   r.PostFormValue("description"),
		CoverURL:      strings.TrimSpace(r.PostFormValue("coverUrl")),
		Category:      strings.TrimSpace(r.PostFormValue("category")),
		IsNew:         checked(r.PostFormValue("isNew")),
		IsRecommended: checked(r.PostFormValue("isRecommended")),
	}
}

func newsFromForm(r *http.Request) models.NewsItem {
	return models.NewsItem{
		ID:           strings.TrimSpace(r.PostFormValue("id")),
		Date:         strings.TrimSpace(r.PostFormValue("date")),
		Title:        strings.TrimSpace(r.PostFormValue("title")),
		Content:      r.PostFormValue("content"),
		PDFURL:       strings.TrimSpace(r.PostFormValue("pdfUrl")),
		FileName:     strings.TrimSpace(r.PostFormValue("fileName")),
		ThumbnailURL: strings.TrimSpace(r.PostFormValue("thumbnailUrl")),
	}
}

func closedDateFromForm(r *http.Request) models.ClosedDate {
	return models.ClosedDate{
		ID:     strings.TrimSpace(r.PostFormValue("id")),
		Date:   strings.TrimSpace(r.PostFormValue("date")),
		Reason: strings.TrimSpace(r.PostFormValue("reason")),
	}
}

func questionFromForm(r *http.Request) models.SurveyQuestion {
	return models.SurveyQuestion{
		ID:   strings.TrimSpace(r.PostFormValue("id")),
		Text: strings.TrimSpace(r.PostFormValue("text")),
		Type: models.QuestionType(r.PostFormValue("type")),
	}
}

// checked reads an HTML checkbox value.
func checked(v string) bool {
	return v == "on" || v == "true"
}

// splitIDs reads a comma or whitespace separated id list, keeping order.
func splitIDs(s string) []string {
	ids := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '、' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
	if ids == nil {
		return []string{}
	}
	return ids
}
