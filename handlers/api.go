package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kevinaaaquil/oct-library/apperr"
	"github.com/kevinaaaquil/oct-library/calendar"
	"github.com/kevinaaaquil/oct-library/models"
	"github.com/kevinaaaquil/oct-library/store"
)

// ContentAPI serves the site's content as JSON. The admin operations replace
// whole collections and are only registered when admin editing is enabled.
type ContentAPI struct {
	Store        *store.Store
	Logger       *slog.Logger
	Now          func() time.Time
	AdminEnabled bool
}

// === DTOs ===

type ContentOutput struct {
	Body store.Snapshot
}

type BooksOutput struct {
	Body []models.Book
}

type BookOutput struct {
	Body models.Book
}

type NewsListOutput struct {
	Body []models.NewsItem
}

type NewsOutput struct {
	Body models.NewsItem
}

type IDInput struct {
	ID string `path:"id" doc:"Record ID"`
}

type CalendarInput struct {
	Month string `query:"month" doc:"Month as YYYY-MM; defaults to the current month"`
}

type CalendarOutput struct {
	Body calendar.Month
}

type ReplaceBooksInput struct {
	Body []models.Book
}

type ReplaceNewsInput struct {
	Body []models.NewsItem
}

type ReplaceClosedDatesInput struct {
	Body []models.ClosedDate
}

type ClosedDatesOutput struct {
	Body []models.ClosedDate
}

type ReplaceSurveyInput struct {
	Body []models.SurveyQuestion
}

type SurveyOutput struct {
	Body []models.SurveyQuestion
}

type FeatureInput struct {
	Body models.MonthlyFeature
}

type FeatureOutput struct {
	Body models.MonthlyFeature
}

// Register adds the content operations to api.
func (a *ContentAPI) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getContent",
		Method:      http.MethodGet,
		Path:        "/api/content",
		Summary:     "Get all content",
		Description: "Returns every content collection as one consistent snapshot",
		Tags:        []string{"Content"},
	}, a.handleGetContent)

	huma.Register(api, huma.Operation{
		OperationID: "listBooks",
		Method:      http.MethodGet,
		Path:        "/api/books",
		Summary:     "List books",
		Tags:        []string{"Books"},
	}, a.handleListBooks)

	huma.Register(api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/books/{id}",
		Summary:     "Get book",
		Tags:        []string{"Books"},
	}, a.handleGetBook)

	huma.Register(api, huma.Operation{
		OperationID: "listNews",
		Method:      http.MethodGet,
		Path:        "/api/news",
		Summary:     "List news",
		Tags:        []string{"News"},
	}, a.handleListNews)

	huma.Register(api, huma.Operation{
		OperationID: "getNews",
		Method:      http.MethodGet,
		Path:        "/api/news/{id}",
		Summary:     "Get news item",
		Tags:        []string{"News"},
	}, a.handleGetNews)

	huma.Register(api, huma.Operation{
		OperationID: "getCalendar",
		Method:      http.MethodGet,
		Path:        "/api/calendar",
		Summary:     "Get calendar month",
		Description: "Returns the month grid with closed days marked",
		Tags:        []string{"Calendar"},
	}, a.handleGetCalendar)

	if !a.AdminEnabled {
		return
	}

	huma.Register(api, huma.Operation{
		OperationID: "replaceBooks",
		Method:      http.MethodPut,
		Path:        "/api/admin/books",
		Summary:     "Replace books",
		Tags:        []string{"Admin"},
	}, a.handleReplaceBooks)

	huma.Register(api, huma.Operation{
		OperationID: "replaceNews",
		Method:      http.MethodPut,
		Path:        "/api/admin/news",
		Summary:     "Replace news",
		Tags:        []string{"Admin"},
	}, a.handleReplaceNews)

	huma.Register(api, huma.Operation{
		OperationID: "replaceClosedDates",
		Method:      http.MethodPut,
		Path:        "/api/admin/closed-dates",
		Summary:     "Replace closed dates",
		Tags:        []string{"Admin"},
	}, a.handleReplaceClosedDates)

	huma.Register(api, huma.Operation{
		OperationID: "replaceSurvey",
		Method:      http.MethodPut,
		Path:        "/api/admin/survey",
		Summary:     "Replace survey questions",
		Tags:        []string{"Admin"},
	}, a.handleReplaceSurvey)

	huma.Register(api, huma.Operation{
		OperationID: "replaceFeature",
		Method:      http.MethodPut,
		Path:        "/api/admin/feature",
		Summary:     "Replace monthly feature",
		Tags:        []string{"Admin"},
	}, a.handleReplaceFeature)
}

// === Handlers ===

func (a *ContentAPI) handleGetContent(_ context.Context, _ *struct{}) (*ContentOutput, error) {
	return &ContentOutput{Body: a.Store.Snapshot()}, nil
}

func (a *ContentAPI) handleListBooks(_ context.Context, _ *struct{}) (*BooksOutput, error) {
	return &BooksOutput{Body: a.Store.Books()}, nil
}

func (a *ContentAPI) handleGetBook(_ context.Context, input *IDInput) (*BookOutput, error) {
	b, ok := a.Store.BookByID(input.ID)
	if !ok {
		return nil, apperr.NotFoundf("book %q not found", input.ID)
	}
	return &BookOutput{Body: b}, nil
}

func (a *ContentAPI) handleListNews(_ context.Context, _ *struct{}) (*NewsListOutput, error) {
	return &NewsListOutput{Body: a.Store.News()}, nil
}

func (a *ContentAPI) handleGetNews(_ context.Context, input *IDInput) (*NewsOutput, error) {
	n, ok := a.Store.NewsByID(input.ID)
	if !ok {
		return nil, apperr.NotFoundf("news item %q not found", input.ID)
	}
	return &NewsOutput{Body: n}, nil
}

func (a *ContentAPI) handleGetCalendar(_ context.Context, input *CalendarInput) (*CalendarOutput, error) {
	now := a.Now()
	month := calendar.Build(calendar.ParseMonth(input.Month, now), now, a.Store.ClosedDates())
	return &CalendarOutput{Body: month}, nil
}

func (a *ContentAPI) handleReplaceBooks(_ context.Context, input *ReplaceBooksInput) (*BooksOutput, error) {
	if err := a.Store.SetBooks(input.Body); err != nil {
		return nil, err
	}
	a.Logger.Info("content replaced", "collection", "books", "count", len(input.Body))
	return &BooksOutput{Body: a.Store.Books()}, nil
}

func (a *ContentAPI) handleReplaceNews(_ context.Context, input *ReplaceNewsInput) (*NewsListOutput, error) {
	if err := a.Store.SetNews(input.Body); err != nil {
		return nil, err
	}
	a.Logger.Info("content replaced", "collection", "news", "count", len(input.Body))
	return &NewsListOutput{Body: a.Store.News()}, nil
}

func (a *ContentAPI) handleReplaceClosedDates(_ context.Context, input *ReplaceClosedDatesInput) (*ClosedDatesOutput, error) {
	if err := a.Store.SetClosedDates(input.Body); err != nil {
		return nil, err
	}
	a.Logger.Info("content replaced", "collection", "closed_dates", "count", len(input.Body))
	return &ClosedDatesOutput{Body: a.Store.ClosedDates()}, nil
}

func (a *ContentAPI) handleReplaceSurvey(_ context.Context, input *ReplaceSurveyInput) (*SurveyOutput, error) {
	if err := a.Store.SetSurvey(input.Body); err != nil {
		return nil, err
	}
	a.Logger.Info("content replaced", "collection", "survey", "count", len(input.Body))
	return &SurveyOutput{Body: a.Store.Survey()}, nil
}

func (a *ContentAPI) handleReplaceFeature(_ context.Context, input *FeatureInput) (*FeatureOutput, error) {
	if err := a.Store.SetFeature(input.Body); err != nil {
		return nil, err
	}
	a.Logger.Info("content replaced", "collection", "feature")
	return &FeatureOutput{Body: a.Store.Feature()}, nil
}
