package services

import (
	"context"

	"github.com/localecart/catalog_backend/internal/core/domain"
)

// LocalizationSvc resolves localized display text for catalog entities.
type LocalizationSvc interface {
	// Resolve walks the fallback chain (exact tag, base subtag, default
	// language) for key. A zero LocalizedText means nothing resolved and the
	// caller should use the entity's stored defaults.
	Resolve(key, language string) domain.LocalizedText

	// AddTranslation registers a translation for key. Loader-facing; entries
	// are immutable snapshots once the catalog load completes.
	AddTranslation(key, language string, text domain.LocalizedText)

	// AvailableLanguages lists the languages the catalog ships display names for.
	AvailableLanguages() []domain.Language
}

// LanguagePreferenceSvc manages the caller's active language selection.
type LanguagePreferenceSvc interface {
	CurrentLanguage() string

	// SetLanguage updates the active language, persists it and notifies
	// subscribers. Setting the already-active value is a no-op.
	SetLanguage(ctx context.Context, languageCode string) error
}

// LocalizationSvcFacade combines translation resolution with the language
// preference operations.
type LocalizationSvcFacade interface {
	LocalizationSvc
	LanguagePreferenceSvc
}
