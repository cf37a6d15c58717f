// Package api contains the client for the CBR daily exchange rate feed.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"uk-assist-bot/internal/server/models"
)

// valute is one currency block of the CBR daily payload. Value is the price
// of Nominal units, so the cached rate is Value/Nominal.
type valute struct {
	Name    string  `json:"Name"`
	Value   float64 `json:"Value"`
	Nominal float64 `json:"Nominal"`
}

type dailyResponse struct {
	Valute map[string]valute `json:"Valute"`
}

// CbrAPI fetches exchange rates from the CBR daily JSON feed.
type CbrAPI struct {
	endpoint string
	client   *http.Client
}

func NewCbrAPI(endpoint string) *CbrAPI {
	return &CbrAPI{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// GetCurrency fetches the daily feed and extracts the rate for code,
// rounded to 3 decimal places.
func (c *CbrAPI) GetCurrency(ctx context.Context, code string) (models.Currency, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		err = fmt.Errorf("failed to create request with ctx: %w", err)
		logrus.Error(err)
		return models.Currency{}, err
	}
	res, err := c.client.Do(req)
	if err != nil {
		logrus.Error(err)
		return models.Currency{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return models.Currency{}, fmt.Errorf("cbr feed returned: %d", res.StatusCode)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		logrus.Error(err)
		return models.Currency{}, err
	}
	var response dailyResponse
	if err = json.Unmarshal(data, &response); err != nil {
		return models.Currency{}, fmt.Errorf("failed to parse cbr payload: %w", err)
	}

	cur, ok := response.Valute[code]
	if !ok {
		return models.Currency{}, fmt.Errorf("currency %s is missing from cbr payload", code)
	}
	if cur.Nominal == 0 {
		return models.Currency{}, fmt.Errorf("currency %s has zero nominal", code)
	}

	value := math.Round(cur.Value/cur.Nominal*1000) / 1000
	logrus.Infof("Подгруженны данные API по валюте %s", code)

	return models.Currency{
		Code:  code,
		Name:  cur.Name,
		Value: value,
	}, nil
}
