package services

import "context"

// CategorySvcFacade resolves category ids into localized labels.
type CategorySvcFacade interface {
	// GetCategoryTranslation resolves one category id. The final fallback is
	// the raw id itself, so an unknown id is not an error.
	GetCategoryTranslation(ctx context.Context, categoryID, language string) (string, error)

	// GetAllCategoryIDs lists every category id with translations.
	GetAllCategoryIDs(ctx context.Context) ([]string, error)

	// GetAllCategoryTranslations resolves every category label for language.
	GetAllCategoryTranslations(ctx context.Context, language string) (map[string]string, error)
}
