package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/localecart/catalog_backend/internal/apperrors"
	"github.com/localecart/catalog_backend/internal/core/domain"
	"github.com/localecart/catalog_backend/internal/core/ports"
	"github.com/localecart/catalog_backend/internal/middleware"
	"github.com/localecart/catalog_backend/pkg/eventbus"
	"golang.org/x/text/language"
)

// DefaultLanguages are the languages the catalog ships out of the box.
var DefaultLanguages = []domain.Language{
	{Code: "en", Name: "English"},
	{Code: "fr", Name: "Français"},
	{Code: "es", Name: "Español"},
	{Code: "de", Name: "Deutsch"},
}

// LocalizationService owns the translation store and the active language
// preference. Translations are added incrementally by loaders and treated
// as immutable snapshots once the catalog load completes.
type LocalizationService struct {
	prefs ports.PreferenceStore

	mu           sync.RWMutex
	translations map[string]map[string]domain.LocalizedText // entity key -> language tag -> text
	languages    []domain.Language

	prefMu  sync.Mutex
	current string
	changed *eventbus.Bus[domain.LanguageChangedEvent]
}

// NewLocalizationService creates a LocalizationService. defaultLanguage
// seeds the active preference; blank means domain.DefaultLanguage. A nil
// languages slice falls back to DefaultLanguages.
func NewLocalizationService(prefs ports.PreferenceStore, defaultLanguage string, languages []domain.Language) *LocalizationService {
	if defaultLanguage == "" {
		defaultLanguage = domain.DefaultLanguage
	}
	if languages == nil {
		languages = DefaultLanguages
	}
	return &LocalizationService{
		prefs:        prefs,
		translations: make(map[string]map[string]domain.LocalizedText),
		languages:    languages,
		current:      defaultLanguage,
		changed:      eventbus.New[domain.LanguageChangedEvent](),
	}
}

// AddTranslation registers the localized text for an entity key.
func (s *LocalizationService) AddTranslation(key, lang string, text domain.LocalizedText) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byLang, ok := s.translations[key]
	if !ok {
		byLang = make(map[string]domain.LocalizedText)
		s.translations[key] = byLang
	}
	byLang[lang] = text
}

// Resolve walks the fallback chain for key: exact tag as supplied, then the
// two-letter base subtag, then the default language. Each field resolves
// independently, and an empty field never satisfies a step. A blank lang
// skips straight to the default language. The zero value means nothing
// resolved; product callers then use their stored defaults.
func (s *LocalizationService) Resolve(key, lang string) domain.LocalizedText {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byLang, ok := s.translations[key]
	if !ok {
		return domain.LocalizedText{}
	}

	var resolved domain.LocalizedText
	for _, candidate := range fallbackChain(lang) {
		text, ok := byLang[candidate]
		if !ok {
			continue
		}
		if resolved.Name == "" {
			resolved.Name = text.Name
		}
		if resolved.Unit == "" {
			resolved.Unit = text.Unit
		}
		if resolved.Name != "" && resolved.Unit != "" {
			break
		}
	}
	return resolved
}

// AvailableLanguages lists the supported languages with display names.
func (s *LocalizationService) AvailableLanguages() []domain.Language {
	out := make([]domain.Language, len(s.languages))
	copy(out, s.languages)
	return out
}

// CurrentLanguage returns the active language preference.
func (s *LocalizationService) CurrentLanguage() string {
	s.prefMu.Lock()
	defer s.prefMu.Unlock()
	return s.current
}

// SetLanguage updates the active language. The code must be one of the
// supported languages. Setting the already-active value is a no-op. On a
// real change the value is persisted first and one LanguageChangedEvent is
// published; a persistence failure propagates and suppresses the
// notification while the in-memory value stays updated.
func (s *LocalizationService) SetLanguage(ctx context.Context, languageCode string) error {
	if languageCode == "" {
		return fmt.Errorf("%w: language code is required", apperrors.ErrValidation)
	}
	if !s.isSupported(languageCode) {
		return fmt.Errorf("%w: unsupported language %q", apperrors.ErrValidation, languageCode)
	}

	s.prefMu.Lock()
	defer s.prefMu.Unlock()
	if s.current == languageCode {
		return nil
	}

	previous := s.current
	s.current = languageCode

	if s.prefs != nil {
		if err := s.prefs.Set(ctx, languageCode); err != nil {
			return fmt.Errorf("failed to persist language preference: %w", err)
		}
	}

	middleware.GetLoggerFromCtx(ctx).Info("Active language changed",
		slog.String("previous", previous), slog.String("current", languageCode))
	s.changed.Publish(domain.LanguageChangedEvent{Previous: previous, Current: languageCode})
	return nil
}

// RestorePreference adopts a previously persisted language preference
// without firing a change notification. Intended for startup.
func (s *LocalizationService) RestorePreference(ctx context.Context) error {
	if s.prefs == nil {
		return nil
	}
	value, ok, err := s.prefs.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read language preference: %w", err)
	}
	if !ok || value == "" {
		return nil
	}

	s.prefMu.Lock()
	defer s.prefMu.Unlock()
	s.current = value
	return nil
}

// SubscribeLanguageChanged registers a handler for language change events.
// Delivery is fire-and-forget with no ordering guarantee.
func (s *LocalizationService) SubscribeLanguageChanged(handler func(domain.LanguageChangedEvent)) {
	s.changed.Subscribe(handler)
}

func (s *LocalizationService) isSupported(code string) bool {
	for _, l := range s.languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// fallbackChain lists the language tags to try, most specific first, always
// ending with the default language. Blank input skips the locale steps.
func fallbackChain(lang string) []string {
	if lang == "" {
		return []string{domain.DefaultLanguage}
	}

	chain := []string{lang}
	if base := baseSubtag(lang); base != "" && base != lang {
		chain = append(chain, base)
	}
	if lang != domain.DefaultLanguage {
		chain = append(chain, domain.DefaultLanguage)
	}
	return chain
}

// baseSubtag derives the two-letter language subtag of a culture tag,
// e.g. "de-DE" -> "de". Tags x/text cannot parse fall back to truncating
// at the first hyphen.
func baseSubtag(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		if i := strings.IndexByte(lang, '-'); i > 0 {
			return strings.ToLower(lang[:i])
		}
		return strings.ToLower(lang)
	}
	base, _ := tag.Base()
	return base.String()
}
