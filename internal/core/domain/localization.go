package domain

// DefaultLanguage is the language every localized lookup finally falls
// back to before resorting to raw keys or stored defaults.
const DefaultLanguage = "en"

// LocalizedText holds the translatable display fields of a product.
// An empty field is treated as absent during fallback resolution, not as
// a valid value.
type LocalizedText struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// IsZero reports whether no field carries a usable value.
func (t LocalizedText) IsZero() bool {
	return t.Name == "" && t.Unit == ""
}

// Language pairs a language code with its display name, e.g. ("fr", "Français").
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
