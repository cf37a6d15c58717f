package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uk-assist-bot/internal/server/models"
	"uk-assist-bot/internal/server/repository"
	"uk-assist-bot/internal/server/service"
)

func newTestServer(cache *repository.CurrencyCache) *httptest.Server {
	handler := NewHandler(service.NewRateService(cache))
	router := chi.NewRouter()
	router.Get("/", handler.GetCodes)
	router.Get("/{code}", handler.GetRate)
	return httptest.NewServer(router)
}

func TestGetCodesListsFixedSet(t *testing.T) {
	srv := newTestServer(repository.NewCurrencyCache())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()

	var codes []string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&codes))
	assert.Equal(t, []string{"EUR", "BYN", "UAH", "MDL", "RON", "BGN", "HUF", "CZK", "PLN"}, codes)
}

func TestGetRateAfterRefresh(t *testing.T) {
	cache := repository.NewCurrencyCache()
	cache.Set(models.Currency{Code: "PLN", Name: "Польский злотый", Value: 22.04})
	srv := newTestServer(cache)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/PLN")
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), "Польский злотый")
	assert.Contains(t, string(body), "22.040")
}

func TestGetRateNotReady(t *testing.T) {
	srv := newTestServer(repository.NewCurrencyCache())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/EUR")
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	assert.Equal(t, NotReadyText, string(body))
}

func TestGetRateUnknownCode(t *testing.T) {
	srv := newTestServer(repository.NewCurrencyCache())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/USD")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
