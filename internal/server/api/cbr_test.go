package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dailyPayload = `{
	"Valute": {
		"EUR": {"Name": "Евро", "Value": 98.7654, "Nominal": 1},
		"HUF": {"Name": "Венгерских форинтов", "Value": 25.1234, "Nominal": 100}
	}
}`

func TestGetCurrencyDividesByNominal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(dailyPayload))
	}))
	defer srv.Close()

	cbr := NewCbrAPI(srv.URL)

	eur, err := cbr.GetCurrency(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, "Евро", eur.Name)
	assert.Equal(t, 98.765, eur.Value)

	huf, err := cbr.GetCurrency(context.Background(), "HUF")
	require.NoError(t, err)
	assert.Equal(t, 0.251, huf.Value)
}

func TestGetCurrencyUnknownCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(dailyPayload))
	}))
	defer srv.Close()

	_, err := NewCbrAPI(srv.URL).GetCurrency(context.Background(), "XXX")
	assert.Error(t, err)
}

func TestGetCurrencyBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewCbrAPI(srv.URL).GetCurrency(context.Background(), "EUR")
	assert.Error(t, err)
}

func TestGetCurrencyMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a json"))
	}))
	defer srv.Close()

	_, err := NewCbrAPI(srv.URL).GetCurrency(context.Background(), "EUR")
	assert.Error(t, err)
}
