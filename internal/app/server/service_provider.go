// Package server provides dependency injection and lifecycle management for
// the rate API process.
package server

import (
	"time"

	"github.com/sirupsen/logrus"

	"uk-assist-bot/internal/server/api"
	rateHand "uk-assist-bot/internal/server/api/http"
	"uk-assist-bot/internal/server/repository"
	"uk-assist-bot/internal/server/service"
)

// serviceProvider manages the dependency injection for rate API components.
type serviceProvider struct {
	cbrEndpoint     string
	refreshInterval time.Duration

	cache       *repository.CurrencyCache
	cbrAPI      *api.CbrAPI
	rateService *service.RateService
	refresher   *service.Refresher
	handler     *rateHand.Handler
}

func newServiceProvider(cbrEndpoint string, refreshInterval time.Duration) *serviceProvider {
	if cbrEndpoint == "" || refreshInterval <= 0 {
		logrus.Fatal("All serviceProvider configuration fields must be non-empty")
	}
	return &serviceProvider{
		cbrEndpoint:     cbrEndpoint,
		refreshInterval: refreshInterval,
	}
}

// Cache returns the shared currency cache.
func (s *serviceProvider) Cache() *repository.CurrencyCache {
	if s.cache == nil {
		s.cache = repository.NewCurrencyCache()
		logrus.Info("CurrencyCache initialized")
	}
	return s.cache
}

// CbrAPI returns the CBR feed client.
func (s *serviceProvider) CbrAPI() *api.CbrAPI {
	if s.cbrAPI == nil {
		s.cbrAPI = api.NewCbrAPI(s.cbrEndpoint)
		logrus.Info("CbrAPI initialized")
	}
	return s.cbrAPI
}

// RateService returns the read projection over the cache.
func (s *serviceProvider) RateService() *service.RateService {
	if s.rateService == nil {
		s.rateService = service.NewRateService(s.Cache())
		logrus.Info("RateService initialized")
	}
	return s.rateService
}

// Refresher returns the periodic currency refresher.
func (s *serviceProvider) Refresher() *service.Refresher {
	if s.refresher == nil {
		s.refresher = service.NewRefresher(s.CbrAPI(), s.Cache(), s.refreshInterval)
		logrus.Info("Refresher initialized")
	}
	return s.refresher
}

// Handler returns the HTTP handler of the rate API.
func (s *serviceProvider) Handler() *rateHand.Handler {
	if s.handler == nil {
		s.handler = rateHand.NewHandler(s.RateService())
		logrus.Info("Handler initialized")
	}
	return s.handler
}
