package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinaaaquil/oct-library/middleware"
	"github.com/kevinaaaquil/oct-library/models"
	"github.com/kevinaaaquil/oct-library/overlay"
	"github.com/kevinaaaquil/oct-library/service"
	"github.com/kevinaaaquil/oct-library/store"
	"github.com/kevinaaaquil/oct-library/utils"
)

var fixedNow = time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC)

type testSite struct {
	handler http.Handler
	store   *store.Store
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSite(t *testing.T, adminEnabled bool) *testSite {
	t.Helper()
	return newTestSiteWith(t, func(d *Deps) { d.AdminEnabled = adminEnabled })
}

// newTestSiteWith builds a site over the seed content; configure adjusts the deps first.
func newTestSiteWith(t *testing.T, configure func(d *Deps)) *testSite {
	t.Helper()
	logger := testLogger()
	st, err := store.New(store.Seeded(), logger)
	require.NoError(t, err)
	sealer, err := utils.NewSealer([]byte("handlers-test"), "session")
	require.NoError(t, err)

	d := Deps{
		Store:       st,
		Sessions:    middleware.NewSessions(sealer, false, logger),
		Assets:      service.NewAssetLinks(nil, time.Minute, logger),
		Logger:      logger,
		Now:         func() time.Time { return fixedNow },
		CORSOrigins: []string{"*"},
	}
	configure(&d)
	if d.Limiter == nil {
		d.Limiter = middleware.NewKeyedLimiter(1000, 1000)
	}
	t.Cleanup(d.Limiter.Stop)

	h, err := NewRouter(d)
	require.NoError(t, err)
	return &testSite{handler: h, store: st}
}

func (s *testSite) get(t *testing.T, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testSite) post(t *testing.T, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", middleware.SessionCookieName)
	return nil
}

func TestModalRegistry_CoversEveryOpenKind(t *testing.T) {
	rd, err := NewRenderer(service.NewAssetLinks(nil, time.Minute, testLogger()), testLogger())
	require.NoError(t, err)

	for _, kind := range overlay.Kinds {
		if kind == overlay.None {
			continue
		}
		m, ok := modals[kind]
		if assert.True(t, ok, "no modal for %s", kind) {
			assert.True(t, rd.Has(m.template), "template %s missing", m.template)
			assert.NotEmpty(t, m.title)
		}
	}
	_, ok := modals[overlay.None]
	assert.False(t, ok)
}

func TestHome_RendersSectionsWithoutModal(t *testing.T) {
	site := newTestSite(t, true)
	rec := site.get(t, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "珈琲と本")
	assert.Contains(t, body, "図書館通信 5月号")
	assert.Contains(t, body, `class="badge pdf"`)
	assert.Contains(t, body, "薫風香る、読書の季節")
	assert.Contains(t, body, "未来への建築")
	assert.Contains(t, body, "忘れられたレシピ")
	assert.Contains(t, body, "2024年5月")
	assert.NotContains(t, body, `role="dialog"`)
	assert.NotContains(t, body, "<script>")
}

func TestHome_EveryModalRenders(t *testing.T) {
	site := newTestSite(t, true)

	for _, kind := range overlay.Kinds {
		if kind == overlay.None {
			continue
		}
		t.Run(string(kind), func(t *testing.T) {
			q := overlay.Open(kind, "1").Query()
			rec := site.get(t, "/?"+q.Encode())

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, `role="dialog"`)
			assert.Contains(t, body, "modal-"+string(kind))
			assert.Contains(t, body, `href="/"`, "close link")
			assert.Contains(t, body, "modal=ACCESS")
			assert.Contains(t, body, "modal=LIBRARIAN")
			assert.Contains(t, body, "modal=CALENDAR")
			assert.Contains(t, body, "modal=SURVEY")
		})
	}
}

func TestHome_UnknownModalKindRendersClosed(t *testing.T) {
	site := newTestSite(t, true)
	rec := site.get(t, "/?modal=BOGUS")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `role="dialog"`)
}

func TestToggleReserve_RoundTrip(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.post(t, "/books/2/reserve", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?id=2&modal=BOOK_DETAIL", rec.Header().Get("Location"))
	cookie := sessionCookie(t, rec)

	page := site.get(t, "/?modal=BOOK_DETAIL&id=2", cookie).Body.String()
	assert.Contains(t, page, `data-reserved="true"`)
	assert.Contains(t, page, `data-bookmarked="false"`)
	assert.Contains(t, page, "予約済")

	rec = site.post(t, "/books/2/reserve", nil, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	page = site.get(t, "/?modal=BOOK_DETAIL&id=2", sessionCookie(t, rec)).Body.String()
	assert.Contains(t, page, `data-reserved="false"`)
}

func TestToggleWantToRead_IndependentOfReserve(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.post(t, "/books/3/want-to-read", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookie := sessionCookie(t, rec)

	page := site.get(t, "/?modal=BOOK_DETAIL&id=3", cookie).Body.String()
	assert.Contains(t, page, `data-reserved="false"`)
	assert.Contains(t, page, `data-bookmarked="true"`)

	// The recommended shelf shows the badge too.
	home := site.get(t, "/", cookie).Body.String()
	assert.Contains(t, home, `class="badge want"`)
}

func TestBookDetail_UnknownIDRendersEmpty(t *testing.T) {
	site := newTestSite(t, true)
	rec := site.get(t, "/?modal=BOOK_DETAIL&id=999")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `book-detail empty`)
}

func TestNewsDetail_RendersSanitisedContentAndPDF(t *testing.T) {
	site := newTestSite(t, true)
	body := site.get(t, "/?modal=NEWS_DETAIL&id=n1").Body.String()

	assert.Contains(t, body, `data-news-id="n1"`)
	assert.Contains(t, body, `class="rt-box-info"`)
	assert.Contains(t, body, "dummy.pdf")
	assert.Contains(t, body, "oct_news_2024_05.pdf")
}

func TestFeatureModal_RelatedBooksInFeatureOrder(t *testing.T) {
	site := newTestSite(t, true)
	body := site.get(t, "/?modal=FEATURE").Body.String()

	section := body[strings.Index(body, "feature-books"):]
	first := strings.Index(section, "忘れられたレシピ")
	second := strings.Index(section, "静寂の森")
	require.True(t, first >= 0 && second >= 0)
	assert.Less(t, first, second)
}

func TestCalendar_MonthParamAndClosures(t *testing.T) {
	site := newTestSite(t, true)

	body := site.get(t, "/?modal=CALENDAR&month=2024-05").Body.String()
	assert.Contains(t, body, "2024年5月の休館日")
	assert.Contains(t, body, "館内整理日")
	assert.Contains(t, body, "特別整理期間")
	assert.Contains(t, body, "month=2024-06")

	body = site.get(t, "/?month=2024-06").Body.String()
	assert.Contains(t, body, "2024年6月")
	assert.NotContains(t, body, "館内整理日")

	body = site.get(t, "/?month=garbage").Body.String()
	assert.Contains(t, body, "2024年5月")
}

func TestSurvey_SubmitClosesModal(t *testing.T) {
	site := newTestSite(t, true)

	page := site.get(t, "/?modal=SURVEY").Body.String()
	assert.Contains(t, page, `name="answer_q1"`)
	for _, choice := range models.SurveyChoices {
		assert.Contains(t, page, choice)
	}

	rec := site.post(t, "/survey", url.Values{"answer_q1": {"ほぼ毎日"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestForms_KeepCalendarMonth(t *testing.T) {
	site := newTestSite(t, true)

	page := site.get(t, "/?modal=BOOK_DETAIL&id=2&month=2024-06").Body.String()
	assert.Contains(t, page, `<input type="hidden" name="month" value="2024-06">`)
	assert.Contains(t, page, "2024年6月")

	rec := site.post(t, "/books/2/reserve", url.Values{"month": {"2024-06"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?id=2&modal=BOOK_DETAIL&month=2024-06", rec.Header().Get("Location"))

	rec = site.post(t, "/survey", url.Values{"month": {"2024-06"}, "answer_q1": {"ほぼ毎日"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?month=2024-06", rec.Header().Get("Location"))

	rec = site.post(t, "/admin/closed-dates/c1", url.Values{"month": {"2024-06"}, "date": {"2024-05-14"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?modal=ADMIN&month=2024-06", rec.Header().Get("Location"))

	// A malformed month is dropped rather than echoed into the redirect.
	rec = site.post(t, "/books/2/want-to-read", url.Values{"month": {"2024-13"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?id=2&modal=BOOK_DETAIL", rec.Header().Get("Location"))

	page = site.get(t, "/?modal=ADMIN").Body.String()
	assert.NotContains(t, page, `name="month"`)
}

func TestAdmin_UpdateReplacesOnlyThatCollection(t *testing.T) {
	site := newTestSite(t, true)
	newsBefore := site.store.News()
	datesBefore := site.store.ClosedDates()
	surveyBefore := site.store.Survey()

	rec := site.post(t, "/admin/books/2", url.Values{
		"title":         {"未来への建築 改訂版"},
		"author":        {"James Wright"},
		"isRecommended": {"on"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?modal=ADMIN", rec.Header().Get("Location"))
	b, ok := site.store.BookByID("2")
	require.True(t, ok)
	assert.Equal(t, "未来への建築 改訂版", b.Title)
	assert.True(t, b.IsRecommended)
	assert.False(t, b.IsNew)

	assert.Same(t, &newsBefore[0], &site.store.News()[0])
	assert.Same(t, &datesBefore[0], &site.store.ClosedDates()[0])
	assert.Same(t, &surveyBefore[0], &site.store.Survey()[0])
}

func TestAdmin_ValidationFailureRerenders(t *testing.T) {
	site := newTestSite(t, true)
	before := site.store.ClosedDates()

	rec := site.post(t, "/admin/closed-dates/c1", url.Values{"date": {"2024/05/13"}, "reason": {"館内整理日"}})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `role="alert"`)
	assert.Contains(t, body, `data-code="VALIDATION"`)
	assert.Contains(t, body, "modal-ADMIN")
	assert.Contains(t, body, `value="2024/05/13"`)
	assert.Same(t, &before[0], &site.store.ClosedDates()[0])
}

func TestAdmin_RejectedAddEchoesInput(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.post(t, "/admin/books", url.Values{
		"title":         {""},
		"author":        {"著者X"},
		"category":      {"随筆"},
		"isRecommended": {"on"},
		"month":         {"2024-06"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="著者X"`)
	assert.Contains(t, body, `value="随筆"`)
	assert.Contains(t, body, `name="isRecommended" checked`)
	assert.Contains(t, body, `<input type="hidden" name="month" value="2024-06">`)
	assert.Len(t, site.store.Books(), 3)

	// Stored records keep their own values.
	assert.Contains(t, body, `value="静寂の森"`)
	assert.Equal(t, 1, strings.Count(body, `value="著者X"`))
}

func TestAdmin_RejectedFeatureEchoesInput(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.post(t, "/admin/feature", url.Values{"title": {""}, "subtitle": {"下書きの副題"}, "books": {"3, 1"}})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="下書きの副題"`)
	assert.Contains(t, body, `value="3, 1"`)
	assert.NotEqual(t, "下書きの副題", site.store.Feature().Subtitle)
}

func TestAdmin_AddAndDelete(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.post(t, "/admin/books", url.Values{"title": {"新しい本"}, "isNew": {"on"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	books := site.store.Books()
	require.Len(t, books, 4)
	added := books[3]
	assert.NotEmpty(t, added.ID)
	assert.True(t, added.IsNew)

	rec = site.post(t, "/admin/books/"+added.ID+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Len(t, site.store.Books(), 3)

	rec = site.post(t, "/admin/books/1", url.Values{"id": {"1"}, "title": {"x"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = site.post(t, "/admin/news", url.Values{"id": {"n1"}, "date": {"2024-06-01"}, "title": {"重複"}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = site.post(t, "/admin/survey/nope/delete", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = site.post(t, "/admin/widgets", url.Values{"title": {"x"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdmin_Feature(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.post(t, "/admin/feature", url.Values{
		"title":    {"雨の日の本"},
		"subtitle": {"しっとり読む"},
		"books":    {"2, 9, 1"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	f := site.store.Feature()
	assert.Equal(t, "雨の日の本", f.Title)
	assert.Equal(t, []string{"2", "9", "1"}, f.Books)
	assert.Equal(t, []string{"2", "1"}, models.BookIDs(site.store.FeatureBooks()))

	rec = site.post(t, "/admin/feature", url.Values{"title": {""}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "雨の日の本", site.store.Feature().Title)
}

func TestAdmin_Disabled(t *testing.T) {
	site := newTestSite(t, false)

	rec := site.post(t, "/admin/books/1", url.Values{"title": {"x"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	b, _ := site.store.BookByID("1")
	assert.Equal(t, "静寂の森", b.Title)

	body := site.get(t, "/?modal=ADMIN").Body.String()
	assert.Contains(t, body, "管理機能は無効になっています")
	assert.NotContains(t, body, `action="/admin/books"`)
}

func TestHealthAndHeaders(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.get(t, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	page := site.get(t, "/")
	assert.Equal(t, "DENY", page.Header().Get("X-Frame-Options"))

	api := site.get(t, "/api/books")
	assert.Equal(t, http.StatusOK, api.Code)
	assert.Empty(t, api.Header().Get("X-Frame-Options"))
}

func TestRateLimit_ForwardedForIgnoredUnlessTrusted(t *testing.T) {
	site := newTestSiteWith(t, func(d *Deps) {
		d.AdminEnabled = true
		d.Limiter = middleware.NewKeyedLimiter(0.0001, 1)
	})

	codes := map[int]int{}
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/survey", strings.NewReader("answer_q1=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		site.handler.ServeHTTP(rec, req)
		codes[rec.Code]++
	}

	assert.Equal(t, 1, codes[http.StatusSeeOther])
	assert.Equal(t, 49, codes[http.StatusTooManyRequests])
}

func TestRateLimit_TrustedProxyKeysOnForwardedFor(t *testing.T) {
	site := newTestSiteWith(t, func(d *Deps) {
		d.Limiter = middleware.NewKeyedLimiter(0.0001, 1)
		d.TrustProxy = true
	})

	post := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/survey", nil)
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		site.handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusSeeOther, post("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("198.51.100.1"))
	assert.Equal(t, http.StatusSeeOther, post("198.51.100.2"))
}

func TestNewPageView_ShelvesFollowSnapshot(t *testing.T) {
	snap := store.Snapshot{Books: []models.Book{
		{ID: "a", Title: "A", IsRecommended: true},
		{ID: "b", Title: "B", IsNew: true},
		{ID: "c", Title: "C", IsNew: true, IsRecommended: true},
	}}

	v := newPageView(snap, middleware.Session{}, overlay.Close(), "2024-06", fixedNow)

	assert.Equal(t, []string{"a", "c"}, models.BookIDs(v.Recommended))
	assert.Equal(t, []string{"b", "c"}, models.BookIDs(v.NewArrivals))
	assert.Equal(t, "2024-06", v.Month())
	assert.Equal(t, "/?id=b&modal=BOOK_DETAIL&month=2024-06", v.Link(overlay.BookDetail, "b"))

	v = newPageView(snap, middleware.Session{}, overlay.Close(), "June", fixedNow)
	assert.Empty(t, v.Month())
	assert.Equal(t, "/", v.CloseLink())
}
