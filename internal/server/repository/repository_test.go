package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"uk-assist-bot/internal/server/models"
)

func TestCurrencyCacheGetBeforeFirstRefresh(t *testing.T) {
	cache := NewCurrencyCache()

	_, ok := cache.Get("EUR")
	assert.False(t, ok, "entry must be reported as not available before a refresh")
}

func TestCurrencyCacheSetReplacesWholeEntry(t *testing.T) {
	cache := NewCurrencyCache()

	cache.Set(models.Currency{Code: "EUR", Name: "Евро", Value: 98.123})
	cache.Set(models.Currency{Code: "EUR", Name: "Евро", Value: 99.001})

	got, ok := cache.Get("EUR")
	assert.True(t, ok)
	assert.Equal(t, 99.001, got.Value)
	assert.Equal(t, "Евро", got.Name)
}

func TestCurrencyCacheConcurrentReadWrite(t *testing.T) {
	cache := NewCurrencyCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(v float64) {
			defer wg.Done()
			cache.Set(models.Currency{Code: "PLN", Name: "Польский злотый", Value: v})
		}(float64(i))
		go func() {
			defer wg.Done()
			cache.Get("PLN")
		}()
	}
	wg.Wait()

	_, ok := cache.Get("PLN")
	assert.True(t, ok)
}
