package service

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"

	"uk-assist-bot/internal/tg_bot/constant"
)

// JokeProvider is the remote joke feed.
type JokeProvider interface {
	GetRandomJoke(ctx context.Context, country string) (string, error)
}

// jokeCountry is one entry of the fixed east-european country list:
// the provider's country code and the localized label for the reply prefix.
type jokeCountry struct {
	code  string
	label string
}

var jokeCountries = []jokeCountry{
	{"ru", "России"},
	{"ua", "Украины"},
	{"by", "Беларуси"},
	{"pl", "Польши"},
	{"rs", "Сербии"},
	{"cz", "Чехии"},
}

// JokeService tells a random east-european joke.
type JokeService struct {
	provider JokeProvider
	pick     func(n int) int
}

func NewJokeService(provider JokeProvider) *JokeService {
	return &JokeService{
		provider: provider,
		pick:     rand.Intn,
	}
}

// TellJoke picks a country uniformly at random and returns the provider's
// joke prefixed with the country label. Provider failures collapse to the
// fixed apology without disclosing the country.
func (s *JokeService) TellJoke(ctx context.Context) string {
	country := jokeCountries[s.pick(len(jokeCountries))]

	text, err := s.provider.GetRandomJoke(ctx, country.code)
	if err != nil {
		logrus.WithError(err).Info("Бот не смог выдать анекдот")
		return constant.MSG_JOKE_APOLOGY
	}
	logrus.Info("Бот рассказал анекдот")
	return "Для Вас анекдот из великой " + country.label + "\n" + text
}
