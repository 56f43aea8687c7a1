package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kevinaaaquil/oct-library/calendar"
	"github.com/kevinaaaquil/oct-library/models"
	"github.com/kevinaaaquil/oct-library/richtext"
	"github.com/kevinaaaquil/oct-library/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// bookCardView is the data for the book_card template.
type bookCardView struct {
	Page *pageView
	Book models.Book
}

// Renderer executes the embedded page and modal templates.
type Renderer struct {
	templates *template.Template
	logger    *slog.Logger
}

func NewRenderer(assets *service.AssetLinks, logger *slog.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"rich":     richtext.HTML,
		"excerpt":  richtext.Excerpt,
		"markdown": richtext.Markdown,
		"asset":    assets.URL,
		"download": assets.Download,
		"weekdays": func() [7]string { return calendar.Weekdays },
		"ratings":  func() []int { return models.RatingScale },
		"choices":  func() []string { return models.SurveyChoices },
		"questionTypes": func() []models.QuestionType {
			return models.ValidQuestionTypes
		},
		"join": strings.Join,
		"bookCard": func(page *pageView, b models.Book) bookCardView {
			return bookCardView{Page: page, Book: b}
		},
	}
	t, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t, logger: logger}, nil
}

// Has reports whether a template with the given name was parsed.
func (rd *Renderer) Has(name string) bool {
	return rd.templates.Lookup(name) != nil
}

// Fragment executes a named template into HTML for embedding in the page.
func (rd *Renderer) Fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := rd.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Page writes a full page. Output is buffered so a failed template never sends half a page.
func (rd *Renderer) Page(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := rd.templates.ExecuteTemplate(&buf, "layout", data); err != nil {
		rd.logger.Error("render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
