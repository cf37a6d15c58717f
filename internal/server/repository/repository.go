// Package repository provides the in-memory currency cache shared between
// the refresh loop and the HTTP handlers.
package repository

import (
	"sync"

	"uk-assist-bot/internal/server/models"
)

// CurrencyCodes is the fixed set of currencies the service tracks.
// The order is the order of the root API listing and of refresh cycles.
var CurrencyCodes = []string{"EUR", "BYN", "UAH", "MDL", "RON", "BGN", "HUF", "CZK", "PLN"}

// CurrencyCache stores the last known rate per currency code.
// Entries are replaced whole, so readers never observe a partial update.
type CurrencyCache struct {
	rates map[string]models.Currency
	mu    *sync.RWMutex
}

// NewCurrencyCache creates an empty cache. Lookups return ok=false until the
// first successful refresh of the requested code.
func NewCurrencyCache() *CurrencyCache {
	return &CurrencyCache{
		rates: make(map[string]models.Currency, len(CurrencyCodes)),
		mu:    &sync.RWMutex{},
	}
}

// Set replaces the cached entry for currency.Code.
func (c *CurrencyCache) Set(currency models.Currency) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rates[currency.Code] = currency
}

// Get returns the cached entry for code. The second result is false while no
// refresh has succeeded for this code yet.
func (c *CurrencyCache) Get(code string) (models.Currency, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	currency, ok := c.rates[code]
	return currency, ok
}

// Codes returns the fixed list of supported currency codes.
func (c *CurrencyCache) Codes() []string {
	return CurrencyCodes
}
