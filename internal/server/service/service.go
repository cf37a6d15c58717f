// Package service implements the rate read projection and the periodic
// currency refresh loop.
package service

import (
	"fmt"

	"uk-assist-bot/internal/server/models"
)

// Флаги стран для текста ответа по каждой валюте.
var currencyFlags = map[string]string{
	"EUR": "🇪🇺",
	"BYN": "🇧🇾",
	"UAH": "🇺🇦",
	"MDL": "🇲🇩",
	"RON": "🇷🇴",
	"BGN": "🇧🇬",
	"HUF": "🇭🇺",
	"CZK": "🇨🇿",
	"PLN": "🇵🇱",
}

// CurrencyCacheReader is the read side of the currency cache.
type CurrencyCacheReader interface {
	Get(code string) (models.Currency, bool)
	Codes() []string
}

// RateService renders cached rates as human readable sentences.
type RateService struct {
	cache CurrencyCacheReader
}

func NewRateService(cache CurrencyCacheReader) *RateService {
	return &RateService{cache: cache}
}

// Codes returns the supported currency codes.
func (s *RateService) Codes() []string {
	return s.cache.Codes()
}

// Known reports whether code belongs to the supported set.
func (s *RateService) Known(code string) bool {
	for _, c := range s.cache.Codes() {
		if c == code {
			return true
		}
	}
	return false
}

// RateText returns the sentence for one currency, or ok=false while the
// first refresh for this code has not completed yet.
func (s *RateService) RateText(code string) (string, bool) {
	currency, ok := s.cache.Get(code)
	if !ok {
		return "", false
	}
	text := fmt.Sprintf("На текущий момент\n1 %s%s = %.3f 🇷🇺 Российских рублей",
		currencyFlags[currency.Code], currency.Name, currency.Value)
	return text, true
}
