// Package api contains clients for the remote providers the bot talks to:
// the internal rate API, the weather provider and the joke provider.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RatesAPI is the loopback client of the internal rate API.
type RatesAPI struct {
	endpoint string
	client   *http.Client
}

func NewRatesAPI(endpoint string) *RatesAPI {
	return &RatesAPI{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// GetRate returns the rendered rate sentence for the currency code.
// A non-200 status (including 503 while the cache is cold) is an error.
func (r *RatesAPI) GetRate(ctx context.Context, code string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"/"+code, nil)
	if err != nil {
		err = fmt.Errorf("failed to create request with ctx: %w", err)
		logrus.Error(err)
		return "", err
	}
	res, err := r.client.Do(req)
	if err != nil {
		logrus.WithError(err).Warn("Не удается установить соединение с сервером")
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("rate api returned: %d", res.StatusCode)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		logrus.Error(err)
		return "", err
	}
	logrus.Debug("Бот подключен к API валют")
	return string(data), nil
}
