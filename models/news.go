package models

// NewsItem is a bulletin. Content is rich-text HTML and is sanitised before rendering.
type NewsItem struct {
	ID           string `json:"id" validate:"required"`
	Date         string `json:"date" validate:"required" doc:"Publication date, YYYY-MM-DD"`
	Title        string `json:"title" validate:"required"`
	Content      string `json:"content" required:"false" doc:"Rich-text HTML"`
	PDFURL       string `json:"pdfUrl,omitempty"`
	FileName     string `json:"fileName,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// HasPDF reports whether the bulletin has a downloadable PDF edition.
func (n NewsItem) HasPDF() bool {
	return n.PDFURL != ""
}
