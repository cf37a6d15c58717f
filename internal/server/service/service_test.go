package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"uk-assist-bot/internal/server/models"
	"uk-assist-bot/internal/server/repository"
)

func TestRateTextFormatsThreeDecimals(t *testing.T) {
	cache := repository.NewCurrencyCache()
	cache.Set(models.Currency{Code: "EUR", Name: "Евро", Value: 98.7})

	text, ok := NewRateService(cache).RateText("EUR")
	assert.True(t, ok)
	assert.Contains(t, text, "Евро")
	assert.Contains(t, text, "98.700", "value must be rendered with exactly 3 decimal places")
	assert.Contains(t, text, "🇪🇺")
	assert.Contains(t, text, "Российских рублей")
}

func TestRateTextNotReady(t *testing.T) {
	svc := NewRateService(repository.NewCurrencyCache())

	_, ok := svc.RateText("BYN")
	assert.False(t, ok)
}

func TestKnown(t *testing.T) {
	svc := NewRateService(repository.NewCurrencyCache())

	assert.True(t, svc.Known("CZK"))
	assert.False(t, svc.Known("USD"))
}
