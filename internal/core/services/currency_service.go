package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/localecart/catalog_backend/internal/apperrors"
	"github.com/localecart/catalog_backend/internal/core/domain"
	"github.com/localecart/catalog_backend/internal/core/ports"
	"github.com/localecart/catalog_backend/internal/middleware"
	"github.com/localecart/catalog_backend/internal/utils"
	"github.com/localecart/catalog_backend/pkg/eventbus"
	"github.com/shopspring/decimal"
)

// conversionPrecision is the number of decimal places kept for the
// intermediate pivot amount before the final 2-decimal display rounding.
const conversionPrecision = 28

// CurrencyService owns the currency table, price conversion/formatting and
// the active currency preference. The table is loaded once on first use and
// treated as a read-only snapshot afterwards.
type CurrencyService struct {
	loader ports.CurrencyLoader
	prefs  ports.PreferenceStore

	loadMu     sync.Mutex
	loaded     bool
	currencies map[string]domain.Currency

	prefMu  sync.Mutex
	current string
	changed *eventbus.Bus[domain.CurrencyChangedEvent]
}

// NewCurrencyService creates a CurrencyService. defaultCurrency seeds the
// active preference; blank means the pivot currency.
func NewCurrencyService(loader ports.CurrencyLoader, prefs ports.PreferenceStore, defaultCurrency string) *CurrencyService {
	if defaultCurrency == "" {
		defaultCurrency = domain.PivotCurrency
	}
	return &CurrencyService{
		loader:  loader,
		prefs:   prefs,
		current: defaultCurrency,
		changed: eventbus.New[domain.CurrencyChangedEvent](),
	}
}

// ensureLoaded populates the currency table on first call. Concurrent first
// callers converge on a single loader invocation; a failed load leaves the
// service unloaded so the next caller retries.
func (s *CurrencyService) ensureLoaded(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.loaded {
		return nil
	}

	records, err := s.loader.LoadCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to load currencies: %v", apperrors.ErrNotLoaded, err)
	}

	table := make(map[string]domain.Currency, len(records))
	for _, c := range records {
		if c.Code == "" {
			return fmt.Errorf("%w: currency record with blank code", apperrors.ErrNotLoaded)
		}
		if _, exists := table[c.Code]; exists {
			return fmt.Errorf("%w: duplicate currency code %q", apperrors.ErrNotLoaded, c.Code)
		}
		table[c.Code] = c
	}

	s.currencies = table
	s.loaded = true
	middleware.GetLoggerFromCtx(ctx).Info("Currency table loaded", slog.Int("count", len(table)))
	return nil
}

// ConvertPrice converts amount from fromCurrency to toCurrency through the
// pivot currency and rounds the result to 2 decimal places (half away from
// zero). Unknown codes, and a zero rate on the source currency, pass the
// amount through unchanged.
func (s *CurrencyService) ConvertPrice(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	if fromCurrency == "" || toCurrency == "" {
		return decimal.Zero, fmt.Errorf("%w: currency codes are required", apperrors.ErrValidation)
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return decimal.Zero, err
	}

	from, fromOK := s.currencies[fromCurrency]
	to, toOK := s.currencies[toCurrency]
	if !fromOK || !toOK {
		return amount, nil
	}
	// Identity conversions return the exact input, bypassing rounding.
	if fromCurrency == toCurrency {
		return amount, nil
	}
	// A zero source rate would divide by zero; treat it as unknown.
	if from.ExchangeRate.IsZero() {
		return amount, nil
	}

	pivotAmount := amount.DivRound(from.ExchangeRate, conversionPrecision)
	return pivotAmount.Mul(to.ExchangeRate).Round(2), nil
}

// FormatPrice renders amount for display: the currency symbol prefixed to
// an invariantly formatted 2-decimal value. Unknown currencies format
// without a symbol.
func (s *CurrencyService) FormatPrice(ctx context.Context, amount decimal.Decimal, currencyCode string) (string, error) {
	if currencyCode == "" {
		return "", fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return "", err
	}

	info, ok := s.currencies[currencyCode]
	if !ok {
		return utils.FormatInvariant(amount), nil
	}
	return info.Symbol + utils.FormatInvariant(amount), nil
}

// ListAvailableCurrencies retrieves all known currencies, ordered by code.
func (s *CurrencyService) ListAvailableCurrencies(ctx context.Context) ([]domain.Currency, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	currencies := make([]domain.Currency, 0, len(s.currencies))
	for _, c := range s.currencies {
		currencies = append(currencies, c)
	}
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].Code < currencies[j].Code })
	return currencies, nil
}

// GetCurrencyByCode retrieves a single currency by its exact code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	if currencyCode == "" {
		return nil, fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	info, ok := s.currencies[currencyCode]
	if !ok {
		return nil, fmt.Errorf("%w: currency %q", apperrors.ErrNotFound, currencyCode)
	}
	return &info, nil
}

// CurrentCurrency returns the active currency preference.
func (s *CurrencyService) CurrentCurrency() string {
	s.prefMu.Lock()
	defer s.prefMu.Unlock()
	return s.current
}

// SetCurrentCurrency updates the active currency. Setting the already
// active value is a no-op: no persistence, no notification. On a real
// change the value is persisted first and one CurrencyChangedEvent is
// published. A persistence failure propagates to the caller and suppresses
// the notification; the in-memory value stays updated.
func (s *CurrencyService) SetCurrentCurrency(ctx context.Context, currencyCode string) error {
	if currencyCode == "" {
		return fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}

	s.prefMu.Lock()
	defer s.prefMu.Unlock()
	if s.current == currencyCode {
		return nil
	}

	previous := s.current
	s.current = currencyCode

	if s.prefs != nil {
		if err := s.prefs.Set(ctx, currencyCode); err != nil {
			return fmt.Errorf("failed to persist currency preference: %w", err)
		}
	}

	middleware.GetLoggerFromCtx(ctx).Info("Active currency changed",
		slog.String("previous", previous), slog.String("current", currencyCode))
	s.changed.Publish(domain.CurrencyChangedEvent{Previous: previous, Current: currencyCode})
	return nil
}

// RestorePreference adopts a previously persisted currency preference
// without firing a change notification. Intended for startup.
func (s *CurrencyService) RestorePreference(ctx context.Context) error {
	if s.prefs == nil {
		return nil
	}
	value, ok, err := s.prefs.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read currency preference: %w", err)
	}
	if !ok || value == "" {
		return nil
	}

	s.prefMu.Lock()
	defer s.prefMu.Unlock()
	s.current = value
	return nil
}

// SubscribeCurrencyChanged registers a handler for currency change events.
// Delivery is fire-and-forget with no ordering guarantee.
func (s *CurrencyService) SubscribeCurrencyChanged(handler func(domain.CurrencyChangedEvent)) {
	s.changed.Subscribe(handler)
}
