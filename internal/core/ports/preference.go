package ports

import "context"

// PreferenceStore persists a single active preference value (currency code
// or language code) in an external key-value store. Get reports absence
// via the boolean rather than an error.
type PreferenceStore interface {
	Get(ctx context.Context) (value string, ok bool, err error)
	Set(ctx context.Context, value string) error
}
