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
)

// ErrJokeUnavailable reports the provider's internal error flag, usually an
// expired API subscription.
var ErrJokeUnavailable = errors.New("joke provider reported an internal error")

type jokeResponse struct {
	Result struct {
		Error int `json:"error"`
	} `json:"result"`
	Item struct {
		Text string `json:"text"`
	} `json:"item"`
}

// JokeAPI is the anecdotica client.
type JokeAPI struct {
	endpoint  string
	partnerID string
	token     string
	client    *http.Client
}

func NewJokeAPI(endpoint, partnerID, token string) *JokeAPI {
	return &JokeAPI{
		endpoint:  endpoint,
		partnerID: partnerID,
		token:     token,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// GetRandomJoke fetches a random joke for the country code.
// Returns ErrJokeUnavailable when the provider sets its error flag.
func (j *JokeAPI) GetRandomJoke(ctx context.Context, country string) (string, error) {
	query := url.Values{}
	query.Set("pid", j.partnerID)
	query.Set("method", "getRandItem")
	query.Set("country", country)
	query.Set("token", j.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		err = fmt.Errorf("failed to create request with ctx: %w", err)
		logrus.Error(err)
		return "", err
	}
	res, err := j.client.Do(req)
	if err != nil {
		logrus.Error(err)
		return "", err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		logrus.Error(err)
		return "", err
	}
	var response jokeResponse
	if err = json.Unmarshal(data, &response); err != nil {
		return "", fmt.Errorf("failed to parse joke payload: %w", err)
	}

	if response.Result.Error != 0 {
		logrus.Debug("НЕ удалось получить анекдот из API")
		return "", ErrJokeUnavailable
	}
	logrus.Debug("Анекдот из API получен")
	return response.Item.Text, nil
}
