package dto

import "github.com/localecart/catalog_backend/internal/core/domain"

// LanguageResponse defines the data returned for a supported language.
type LanguageResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ToListLanguageResponse converts domain languages to DTOs.
func ToListLanguageResponse(languages []domain.Language) []LanguageResponse {
	res := make([]LanguageResponse, len(languages))
	for i, l := range languages {
		res[i] = LanguageResponse{Code: l.Code, Name: l.Name}
	}
	return res
}

// SetLanguageRequest selects the active language.
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// ActiveLanguageResponse reports the active language preference.
type ActiveLanguageResponse struct {
	Language string `json:"language"`
}
