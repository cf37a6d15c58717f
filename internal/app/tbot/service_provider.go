// Package tbot provides dependency injection and service management for the
// Telegram bot components.
package tbot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"uk-assist-bot/internal/tg_bot/api"
	"uk-assist-bot/internal/tg_bot/ml"
	"uk-assist-bot/internal/tg_bot/nlp"
	"uk-assist-bot/internal/tg_bot/repository"
	botServ "uk-assist-bot/internal/tg_bot/service"
)

// ServiceProvider manages the dependency injection for Telegram bot components.
type ServiceProvider struct {
	// Services
	ratesClient    botServ.RatesClient
	weatherService botServ.Weather
	jokeService    botServ.Joker
	classifier     botServ.TicketClassifier
	normalizer     botServ.Normalizer
	matcher        botServ.IntentMatcher

	// ChatStateRepository
	chatStates botServ.ChatStateRepository

	// Bot API
	botAPI *tgbotapi.BotAPI

	// Bot service
	botService *botServ.TgBotServices

	// API endpoints
	ratesEndpoint   string
	weatherEndpoint string
	jokeEndpoint    string

	// Config values
	weatherApiKey string
	jokeToken     string
	jokePid       string
	modelPath     string

	ratesOnce      sync.Once
	weatherOnce    sync.Once
	jokeOnce       sync.Once
	classifierOnce sync.Once
	normalizerOnce sync.Once
	matcherOnce    sync.Once
	stateRepoOnce  sync.Once
	botAPIOnce     sync.Once
	botServiceOnce sync.Once
}

// NewServiceProvider creates a new instance of the service provider.
func NewServiceProvider(
	ratesEndpoint, weatherEndpoint, jokeEndpoint string,
	weatherApiKey, jokeToken, jokePid, modelPath string,
) *ServiceProvider {
	if ratesEndpoint == "" || weatherEndpoint == "" || jokeEndpoint == "" || modelPath == "" {
		logrus.Fatal("All ServiceProvider configuration fields must be non-empty")
	}
	return &ServiceProvider{
		ratesEndpoint:   ratesEndpoint,
		weatherEndpoint: weatherEndpoint,
		jokeEndpoint:    jokeEndpoint,
		weatherApiKey:   weatherApiKey,
		jokeToken:       jokeToken,
		jokePid:         jokePid,
		modelPath:       modelPath,
	}
}

// RatesClient returns the loopback client of the internal rate API.
func (s *ServiceProvider) RatesClient() botServ.RatesClient {
	s.ratesOnce.Do(func() {
		s.ratesClient = api.NewRatesAPI(s.ratesEndpoint)
		logrus.Info("RatesClient initialized")
	})
	return s.ratesClient
}

// WeatherService returns the weather lookup service.
func (s *ServiceProvider) WeatherService() botServ.Weather {
	s.weatherOnce.Do(func() {
		provider := api.NewWeatherAPI(s.weatherEndpoint, s.weatherApiKey)
		s.weatherService = botServ.NewWeatherService(provider, nlp.NewLocationExtractor())
		logrus.Info("WeatherService initialized")
	})
	return s.weatherService
}

// JokeService returns the joke service.
func (s *ServiceProvider) JokeService() botServ.Joker {
	s.jokeOnce.Do(func() {
		s.jokeService = botServ.NewJokeService(api.NewJokeAPI(s.jokeEndpoint, s.jokePid, s.jokeToken))
		logrus.Info("JokeService initialized")
	})
	return s.jokeService
}

// Classifier returns the ticket classifier loaded from the model artifact.
func (s *ServiceProvider) Classifier() botServ.TicketClassifier {
	s.classifierOnce.Do(func() {
		classifier, err := ml.NewClassifier(s.modelPath)
		if err != nil {
			logrus.Fatalf("failed to load classifier model: %v", err)
		}
		s.classifier = classifier
		logrus.Info("Classifier initialized")
	})
	return s.classifier
}

// Normalizer returns the ticket text normalizer.
func (s *ServiceProvider) Normalizer() botServ.Normalizer {
	s.normalizerOnce.Do(func() {
		s.normalizer = nlp.NewNormalizer()
		logrus.Info("Normalizer initialized")
	})
	return s.normalizer
}

// Matcher returns the intent matcher.
func (s *ServiceProvider) Matcher() botServ.IntentMatcher {
	s.matcherOnce.Do(func() {
		s.matcher = botServ.NewPhraseMatcher()
		logrus.Info("Matcher initialized")
	})
	return s.matcher
}

// Repository returns the chat state store.
func (s *ServiceProvider) Repository() botServ.ChatStateRepository {
	s.stateRepoOnce.Do(func() {
		s.chatStates = repository.NewChatStates()
		logrus.Info("ChatStates repository initialized")
	})
	return s.chatStates
}

// BotAPI returns the Telegram Bot API instance.
func (s *ServiceProvider) BotAPI(token string) (*tgbotapi.BotAPI, error) {
	var err error
	s.botAPIOnce.Do(func() {
		s.botAPI, err = tgbotapi.NewBotAPI(token)
	})
	return s.botAPI, err
}

// BotService returns the bot service with all its dependencies.
func (s *ServiceProvider) BotService(botAPI *tgbotapi.BotAPI) *botServ.TgBotServices {
	s.botServiceOnce.Do(func() {
		s.botService = botServ.NewTgBot(
			s.RatesClient(),
			s.WeatherService(),
			s.JokeService(),
			s.Classifier(),
			s.Normalizer(),
			s.Matcher(),
			s.Repository(),
			botAPI,
		)
		logrus.Info("BotService initialized")
	})
	return s.botService
}
