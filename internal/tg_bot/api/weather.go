package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"uk-assist-bot/internal/tg_bot/models"
)

// ErrLocationUnknown reports that the provider does not know the requested
// place. Distinct from "no location in the user text" which never reaches
// the provider.
var ErrLocationUnknown = errors.New("location is unknown to the weather provider")

// weatherResponse mirrors the relevant part of the openweathermap payload.
// Cod is a number on success and a quoted string on errors, so it is decoded
// leniently.
type weatherResponse struct {
	Cod  json.Number `json:"cod"`
	Name string      `json:"name"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Dt int64 `json:"dt"`
}

// WeatherAPI is the openweathermap client.
type WeatherAPI struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewWeatherAPI(endpoint, apiKey string) *WeatherAPI {
	return &WeatherAPI{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// GetWeather fetches the current weather for the location name.
// Returns ErrLocationUnknown when the provider rejects the location.
func (w *WeatherAPI) GetWeather(ctx context.Context, location string) (models.WeatherReport, error) {
	query := url.Values{}
	query.Set("q", location)
	query.Set("lang", "ru")
	query.Set("units", "metric")
	query.Set("appid", w.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		err = fmt.Errorf("failed to create request with ctx: %w", err)
		logrus.Error(err)
		return models.WeatherReport{}, err
	}
	res, err := w.client.Do(req)
	if err != nil {
		logrus.Error(err)
		return models.WeatherReport{}, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		logrus.Error(err)
		return models.WeatherReport{}, err
	}
	var response weatherResponse
	if err = json.Unmarshal(data, &response); err != nil {
		return models.WeatherReport{}, fmt.Errorf("failed to parse weather payload: %w", err)
	}

	if response.Cod.String() != "200" {
		logrus.Debugf("Локация %q не найдена в API", location)
		return models.WeatherReport{}, ErrLocationUnknown
	}
	if len(response.Weather) == 0 {
		return models.WeatherReport{}, fmt.Errorf("weather payload has no conditions block")
	}

	return models.WeatherReport{
		City:        response.Name,
		Country:     response.Sys.Country,
		Description: response.Weather[0].Description,
		Condition:   response.Weather[0].Main,
		Temperature: response.Main.Temp,
		WindSpeed:   response.Wind.Speed,
		ReportedAt:  response.Dt,
		Sunrise:     response.Sys.Sunrise,
		Sunset:      response.Sys.Sunset,
	}, nil
}
