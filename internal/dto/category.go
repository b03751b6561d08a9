package dto

// CategoryResponse pairs a category id with its label resolved for the
// requested language.
type CategoryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
