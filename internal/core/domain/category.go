package domain

// CategoryTranslation holds the per-language labels for one category.
// Category ids are matched case-insensitively.
type CategoryTranslation struct {
	ID           string            `json:"id"`
	Translations map[string]string `json:"translations"` // language tag -> label
}
