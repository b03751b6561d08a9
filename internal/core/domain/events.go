package domain

// CurrencyChangedEvent is published when the active currency preference
// moves to a new value.
type CurrencyChangedEvent struct {
	Previous string
	Current  string
}

// LanguageChangedEvent is published when the active language preference
// moves to a new value.
type LanguageChangedEvent struct {
	Previous string
	Current  string
}
