package models

type Librarian struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}
