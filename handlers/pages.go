package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/kevinaaaquil/oct-library/apperr"
	"github.com/kevinaaaquil/oct-library/calendar"
	"github.com/kevinaaaquil/oct-library/middleware"
	"github.com/kevinaaaquil/oct-library/models"
	"github.com/kevinaaaquil/oct-library/overlay"
	"github.com/kevinaaaquil/oct-library/store"
)

const monthParam = "month"

// PagesHandler renders the site's single page with whichever modal the URL asks for.
type PagesHandler struct {
	Store        *store.Store
	Renderer     *Renderer
	Logger       *slog.Logger
	Now          func() time.Time
	AdminEnabled bool
}

// adminFailure is a rejected admin submission, echoed back into the form it came from.
// ID is empty for add forms and for the feature form.
type adminFailure struct {
	Err        *apperr.Error
	Collection string
	ID         string
	Values     url.Values
}

// pageView is everything the layout and the modal templates read.
type pageView struct {
	Content      store.Snapshot
	Recommended  []models.Book
	NewArrivals  []models.Book
	Calendar     calendar.Month
	Session      middleware.Session
	Overlay      overlay.State
	AdminEnabled bool

	// Filled by the open modal's prepare step.
	Book         *models.Book
	IsReserved   bool
	IsBookmarked bool
	News         *models.NewsItem
	FeatureBooks []models.Book
	AdminError   *apperr.Error

	Modal      template.HTML
	ModalTitle string

	month   string
	failure *adminFailure
}

// newPageView derives the page from one content snapshot so every section agrees.
func newPageView(snap store.Snapshot, sess middleware.Session, state overlay.State, month string, now time.Time) *pageView {
	month = cleanMonth(month)
	return &pageView{
		Content:     snap,
		Recommended: store.Recommended(snap.Books),
		NewArrivals: store.NewArrivals(snap.Books),
		Calendar:    calendar.Build(calendar.ParseMonth(month, now), now, snap.ClosedDates),
		Session:     sess,
		Overlay:     state,
		month:       month,
	}
}

// cleanMonth keeps month only when it is a valid YYYY-MM value.
func cleanMonth(month string) string {
	if _, err := time.Parse(calendar.MonthLayout, month); err != nil {
		return ""
	}
	return month
}

// pageURL is the page URL showing state, with the calendar on month when set.
func pageURL(state overlay.State, month string) string {
	q := state.Query()
	if m := cleanMonth(month); m != "" {
		q.Set(monthParam, m)
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

// Link returns the page URL with the given modal open, keeping the calendar month.
func (v *pageView) Link(kind overlay.Kind, id string) string {
	return pageURL(overlay.Open(kind, id), v.month)
}

// CloseLink returns the page URL with no modal open.
func (v *pageView) CloseLink() string {
	return v.Link(overlay.None, "")
}

// MonthLink returns the page URL showing month in the calendar, keeping the open modal.
func (v *pageView) MonthLink(month string) string {
	return pageURL(v.Overlay, month)
}

// Month is the calendar month carried by the URL, or "".
func (v *pageView) Month() string {
	return v.month
}

// Field returns the value to show in an admin form field: the rejected submission
// when it came from this record's form, the stored value otherwise.
func (v *pageView) Field(collection, id, field, stored string) string {
	if v.failureFor(collection, id) {
		return v.failure.Values.Get(field)
	}
	return stored
}

// Checked is Field for checkboxes.
func (v *pageView) Checked(collection, id, field string, stored bool) bool {
	if v.failureFor(collection, id) {
		return checked(v.failure.Values.Get(field))
	}
	return stored
}

func (v *pageView) failureFor(collection, id string) bool {
	return v.failure != nil && v.failure.Values != nil && v.failure.Collection == collection && v.failure.ID == id
}

// Home serves GET /. The modal comes from ?modal=KIND&id=ID and the calendar month from ?month=YYYY-MM.
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, overlay.FromQuery(r.URL.Query()), nil)
}

// render builds the view for state and writes the page with status. A non-nil failure
// is shown in the admin modal.
func (h *PagesHandler) render(w http.ResponseWriter, r *http.Request, status int, state overlay.State, failure *adminFailure) {
	v := newPageView(h.Store.Snapshot(), middleware.SessionFromContext(r.Context()), state, r.FormValue(monthParam), h.Now())
	v.AdminEnabled = h.AdminEnabled
	if failure != nil {
		v.failure = failure
		v.AdminError = failure.Err
	}

	if state.IsOpen() {
		m, ok := modals[state.Kind]
		if !ok {
			h.Logger.Error("no modal registered", "kind", state.Kind)
			v.Overlay = overlay.Close()
		} else {
			if m.prepare != nil {
				m.prepare(v)
			}
			html, err := h.Renderer.Fragment(m.template, v)
			if err != nil {
				h.Logger.Error("render modal", "kind", state.Kind, "error", err)
				http.Error(w, "failed to render page", http.StatusInternalServerError)
				return
			}
			v.Modal = html
			v.ModalTitle = m.title
		}
	}

	h.Renderer.Page(w, status, v)
}
