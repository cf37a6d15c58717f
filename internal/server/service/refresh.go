package service

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"uk-assist-bot/internal/server/models"
)

var (
	refreshCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "currency_refresh_cycles_total",
		Help: "Number of completed currency refresh cycles.",
	})
	refreshFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "currency_refresh_failures_total",
		Help: "Number of failed single-currency fetches.",
	}, []string{"code"})
)

// RateFetcher is the remote feed the refresher pulls rates from.
type RateFetcher interface {
	GetCurrency(ctx context.Context, code string) (models.Currency, error)
}

// CurrencyCacheWriter is the write side of the currency cache.
type CurrencyCacheWriter interface {
	Set(currency models.Currency)
	Codes() []string
}

// Refresher keeps the currency cache up to date on a fixed interval.
type Refresher struct {
	fetcher  RateFetcher
	cache    CurrencyCacheWriter
	interval time.Duration
}

func NewRefresher(fetcher RateFetcher, cache CurrencyCacheWriter, interval time.Duration) *Refresher {
	return &Refresher{
		fetcher:  fetcher,
		cache:    cache,
		interval: interval,
	}
}

// RefreshAll runs one full cycle over every supported code. A failed fetch
// leaves the previous entry in place and never aborts the rest of the cycle.
func (r *Refresher) RefreshAll(ctx context.Context) {
	for _, code := range r.cache.Codes() {
		currency, err := r.fetcher.GetCurrency(ctx, code)
		if err != nil {
			refreshFailures.WithLabelValues(code).Inc()
			logrus.WithError(err).Errorf("Не удалось обновить данные по валюте %s", code)
			continue
		}
		r.cache.Set(currency)
		logrus.Debugf("Произошел запрос данных по валюте %s", code)
	}
	refreshCycles.Inc()
}

// Run starts the refresh loop: one cycle immediately, then one per interval,
// until ctx is cancelled. Errors are scoped to a single fetch and never stop
// the loop.
func (r *Refresher) Run(ctx context.Context) {
	r.RefreshAll(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Currency refresh loop stopped")
			return
		case <-ticker.C:
			r.RefreshAll(ctx)
		}
	}
}
