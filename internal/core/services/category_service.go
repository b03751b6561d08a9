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
)

// CategoryService resolves category ids into localized labels. The category
// table is loaded once on first use; ids match case-insensitively.
type CategoryService struct {
	loader ports.CategoryLoader

	loadMu     sync.Mutex
	loaded     bool
	categories []domain.CategoryTranslation
	byID       map[string]int // lower-cased id -> index into categories
}

// NewCategoryService creates a CategoryService over the given loader.
func NewCategoryService(loader ports.CategoryLoader) *CategoryService {
	return &CategoryService{loader: loader}
}

func (s *CategoryService) ensureLoaded(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.loaded {
		return nil
	}

	records, err := s.loader.LoadCategories(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to load categories: %v", apperrors.ErrNotLoaded, err)
	}

	byID := make(map[string]int, len(records))
	for i, c := range records {
		if c.ID == "" {
			return fmt.Errorf("%w: category record with blank id", apperrors.ErrNotLoaded)
		}
		key := strings.ToLower(c.ID)
		if _, exists := byID[key]; exists {
			return fmt.Errorf("%w: duplicate category id %q", apperrors.ErrNotLoaded, c.ID)
		}
		byID[key] = i
	}

	s.categories = records
	s.byID = byID
	s.loaded = true
	middleware.GetLoggerFromCtx(ctx).Info("Category table loaded", slog.Int("count", len(records)))
	return nil
}

// GetCategoryTranslation resolves one category id for the requested
// language: exact tag, base subtag, default language, then the raw id. An
// unknown id resolves to itself immediately.
func (s *CategoryService) GetCategoryTranslation(ctx context.Context, categoryID, lang string) (string, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return "", err
	}

	idx, ok := s.byID[strings.ToLower(categoryID)]
	if !ok {
		return categoryID, nil
	}
	return resolveLabel(s.categories[idx].Translations, lang, categoryID), nil
}

// GetAllCategoryIDs lists every category id, in load order.
func (s *CategoryService) GetAllCategoryIDs(ctx context.Context) ([]string, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	ids := make([]string, len(s.categories))
	for i, c := range s.categories {
		ids[i] = c.ID
	}
	return ids, nil
}

// GetAllCategoryTranslations resolves every category label for the
// requested language, keyed by category id.
func (s *CategoryService) GetAllCategoryTranslations(ctx context.Context, lang string) (map[string]string, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(s.categories))
	for _, c := range s.categories {
		labels[c.ID] = resolveLabel(c.Translations, lang, c.ID)
	}
	return labels, nil
}

// resolveLabel walks the category fallback chain over a per-language label
// map. Empty labels are treated as absent at every step.
func resolveLabel(translations map[string]string, lang, fallback string) string {
	for _, candidate := range fallbackChain(lang) {
		if label := translations[candidate]; label != "" {
			return label
		}
	}
	return fallback
}
