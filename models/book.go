package models

// Book is a catalogue entry shown in the recommended and new-arrival sections.
type Book struct {
	ID            string `json:"id" validate:"required" doc:"Book identifier, unique within the catalogue"`
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" required:"false"`
	Description   string `json:"description" required:"false"`
	CoverURL      string `json:"coverUrl" required:"false"`
	Category      string `json:"category" required:"false"`
	IsNew         bool   `json:"isNew" required:"false" doc:"Listed under new arrivals"`
	IsRecommended bool   `json:"isRecommended" required:"false" doc:"Listed under this month's recommendations"`
}

// BookIDs returns the ids of books in order.
func BookIDs(books []Book) []string {
	ids := make([]string, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}
