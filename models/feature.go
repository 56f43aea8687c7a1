package models

// MonthlyFeature is the singleton editorial shown in the hero and the feature modal.
// Books lists related book ids in display order; ids that do not resolve are skipped.
type MonthlyFeature struct {
	Title       string   `json:"title" validate:"required"`
	Subtitle    string   `json:"subtitle" required:"false"`
	Description string   `json:"description" required:"false" doc:"Plain text, rendered as Markdown"`
	Content     string   `json:"content" required:"false" doc:"Rich-text HTML"`
	ImageURL    string   `json:"imageUrl" required:"false"`
	Books       []string `json:"books" required:"false" doc:"Related book ids in display order"`
}
