// Package service provides the core logic for the assistant bot: the
// conversational menu state machine and the handlers it routes messages to.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"uk-assist-bot/internal/tg_bot/constant"
	"uk-assist-bot/internal/tg_bot/models"
)

// RatesClient reads rendered rate sentences from the internal rate API.
type RatesClient interface {
	GetRate(ctx context.Context, code string) (string, error)
}

// Weather answers free-form weather questions.
type Weather interface {
	Forecast(ctx context.Context, text string) string
}

// Joker tells random jokes.
type Joker interface {
	TellJoke(ctx context.Context) string
}

// TicketClassifier assigns a category to a normalized ticket text.
type TicketClassifier interface {
	Predict(text string) (string, error)
}

// Normalizer prepares ticket text for classification.
type Normalizer interface {
	Normalize(text string) string
}

// IntentMatcher routes free-form questions to an intent category.
type IntentMatcher interface {
	Match(text string) (models.Intent, bool)
}

// ChatStateRepository is the keyed store of per-chat menu states.
type ChatStateRepository interface {
	GetMenu(chatID int64) models.Menu
	SetMenu(chatID int64, menu models.Menu)
}

// Sender is the outbound side of the Telegram API.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TgBotServices is the main service struct for the bot, integrating all dependencies.
type TgBotServices struct {
	Rates      RatesClient
	Weather    Weather
	Joker      Joker
	Classifier TicketClassifier
	Normalizer Normalizer
	Matcher    IntentMatcher
	StateRepo  ChatStateRepository
	Bot        Sender
	ChatID     int64          // Current chat ID.
	location   *time.Location // Perm wall clock for the time reply
}

// commandRoute binds one command phrase set to its transition handler.
// Routes are evaluated in declaration order; any route may fire from any
// menu state.
type commandRoute struct {
	phrases []string
	handler func(b *TgBotServices) error
}

var commandRoutes = []commandRoute{
	{constant.GreetingPhrases, (*TgBotServices).sendGreeting},
	{constant.CurrencyMenuPhrases, (*TgBotServices).showCurrencyMenu},
	{constant.BackPhrases, (*TgBotServices).showMainMenu},
	{constant.FreeformPhrases, (*TgBotServices).showFreeformHelp},
	{constant.TicketPhrases, (*TgBotServices).showTicketPrompt},
}

// NewTgBot creates a new TgBotServices instance with the specified dependencies.
func NewTgBot(rates RatesClient, weather Weather, joker Joker, classifier TicketClassifier,
	normalizer Normalizer, matcher IntentMatcher, stateRepo ChatStateRepository, bot Sender) *TgBotServices {
	location, err := time.LoadLocation("Asia/Yekaterinburg")
	if err != nil {
		logrus.WithError(err).Warn("Failed to load Perm timezone, falling back to fixed offset")
		location = time.FixedZone("PERM", 5*60*60)
	}
	return &TgBotServices{
		Rates:      rates,
		Weather:    weather,
		Joker:      joker,
		Classifier: classifier,
		Normalizer: normalizer,
		Matcher:    matcher,
		StateRepo:  stateRepo,
		Bot:        bot,
		location:   location,
	}
}

// sendMessage sends a message to the specified chat with optional markup.
func (b *TgBotServices) sendMessage(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	_, err := b.Bot.Send(msg)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to send message to chat %d: %s", chatID, text)
	}
	return err
}

func (b *TgBotServices) mainMenuMarkup() tgbotapi.ReplyKeyboardMarkup {
	markup := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(constant.BUTTON_TEXT_CURRENCY_MENU)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(constant.BUTTON_TEXT_TICKET)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(constant.BUTTON_TEXT_FREEFORM)),
	)
	markup.ResizeKeyboard = true // Подгоняет размер клавиатуры под экран
	return markup
}

func (b *TgBotServices) currencyMenuMarkup() tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(constant.CurrencyButtonOrder)+1)
	for _, button := range constant.CurrencyButtonOrder {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(button)))
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(constant.BUTTON_TEXT_BACK)))
	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.ResizeKeyboard = true
	return markup
}

func (b *TgBotServices) backMenuMarkup() tgbotapi.ReplyKeyboardMarkup {
	markup := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(constant.BUTTON_TEXT_BACK)),
	)
	markup.ResizeKeyboard = true
	return markup
}

// sendGreeting resets the chat to the main menu with the greeting text.
func (b *TgBotServices) sendGreeting() error {
	logrus.Debug("Начало чата с пользователем")
	b.StateRepo.SetMenu(b.ChatID, models.MenuMain)
	return b.sendMessage(b.ChatID, constant.MSG_GREETING, b.mainMenuMarkup())
}

// showMainMenu returns the chat to the main menu.
func (b *TgBotServices) showMainMenu() error {
	logrus.Debug("Возврат к главному меню")
	b.StateRepo.SetMenu(b.ChatID, models.MenuMain)
	return b.sendMessage(b.ChatID, constant.MSG_MAIN_MENU, b.mainMenuMarkup())
}

// showCurrencyMenu switches the chat to the currency submenu.
func (b *TgBotServices) showCurrencyMenu() error {
	logrus.Debug("Переход в меню валют")
	b.StateRepo.SetMenu(b.ChatID, models.MenuCurrency)
	return b.sendMessage(b.ChatID, constant.MSG_CURRENCY_MENU, b.currencyMenuMarkup())
}

// showFreeformHelp switches the chat to the free-form question mode.
func (b *TgBotServices) showFreeformHelp() error {
	logrus.Debug("Переход в меню свободных вопросов")
	b.StateRepo.SetMenu(b.ChatID, models.MenuFreeform)
	return b.sendMessage(b.ChatID, constant.MSG_FREEFORM_HELP, b.backMenuMarkup())
}

// showTicketPrompt switches the chat to the ticket intake mode.
func (b *TgBotServices) showTicketPrompt() error {
	logrus.Debug("Переход в меню заявки в УК")
	b.StateRepo.SetMenu(b.ChatID, models.MenuTicket)
	return b.sendMessage(b.ChatID, constant.MSG_TICKET_PROMPT, b.backMenuMarkup())
}

// sendCurrencyRate reads one currency from the rate API and relays its text.
func (b *TgBotServices) sendCurrencyRate(ctx context.Context, code string) error {
	logrus.Infof("Пользователь запросил курс валюты %s", code)
	text, err := b.Rates.GetRate(ctx, code)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to get rate for %s", code)
		return b.sendMessage(b.ChatID, constant.MSG_RATE_API_DOWN, nil)
	}
	return b.sendMessage(b.ChatID, text, nil)
}

// sendCurrentTime replies with the current Perm wall clock.
func (b *TgBotServices) sendCurrentTime() error {
	now := time.Now().In(b.location)
	logrus.Info("Бот сообщил время")
	return b.sendMessage(b.ChatID, fmt.Sprintf("Текущее время по Перми - %02d ч. %02d мин.", now.Hour(), now.Minute()), nil)
}

// handleFreeform routes a free-form question through the intent matcher.
func (b *TgBotServices) handleFreeform(ctx context.Context, text string) error {
	logrus.Info("Обработка пользовательского вопроса в свободной форме")
	intent, ok := b.Matcher.Match(text)
	if !ok {
		logrus.Debug("Бот не уловил суть вопроса")
		return b.sendMessage(b.ChatID, constant.MSG_CANT_ANSWER, nil)
	}
	switch intent {
	case models.IntentTime:
		return b.sendCurrentTime()
	case models.IntentWeatherHere:
		return b.sendMessage(b.ChatID, b.Weather.Forecast(ctx, "Какая погода в Перми?"), nil)
	case models.IntentWeatherElsewhere:
		return b.sendMessage(b.ChatID, b.Weather.Forecast(ctx, text), nil)
	case models.IntentJoke:
		return b.sendMessage(b.ChatID, b.Joker.TellJoke(ctx), nil)
	}
	return b.sendMessage(b.ChatID, constant.MSG_CANT_ANSWER, nil)
}

// handleTicket normalizes and classifies a ticket text. A classifier
// failure is scoped to this request and never breaks the conversation.
func (b *TgBotServices) handleTicket(text string) error {
	logrus.Info("Пользователь отправил заявку о проблемах в управляющую компанию")
	label, err := b.Classifier.Predict(b.Normalizer.Normalize(text))
	if err != nil {
		logrus.WithError(err).Error("Ticket classification failed")
		return b.sendMessage(b.ChatID, constant.MSG_TICKET_FAILED, b.backMenuMarkup())
	}
	logrus.Debug("Заявке присвоен тип")
	reply := fmt.Sprintf("Заявке присвоен тип: %s.\nНомер обращения: %s\nСпасибо что обратились, уже работаем над вашей проблемой!",
		label, uuid.New().String())
	return b.sendMessage(b.ChatID, reply, b.backMenuMarkup())
}

// matchesAny reports whether text equals one of the phrases, case-insensitively.
func matchesAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.EqualFold(text, phrase) {
			return true
		}
	}
	return false
}

// UpdateProcessing handles one incoming Telegram update: command phrases
// first in their priority order, then the handler of the chat's current
// menu state.
func (b *TgBotServices) UpdateProcessing(ctx context.Context, update *tgbotapi.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	b.ChatID = update.Message.Chat.ID
	text := update.Message.Text

	for _, route := range commandRoutes {
		if matchesAny(text, route.phrases) {
			if err := route.handler(b); err != nil {
				logrus.WithError(err).Error("Command handler failed")
			}
			return
		}
	}

	menu := b.StateRepo.GetMenu(b.ChatID)
	var err error
	if menu == models.MenuCurrency {
		if code, ok := constant.CurrencyButtons[text]; ok {
			if err = b.sendCurrencyRate(ctx, code); err != nil {
				logrus.WithError(err).Error("Currency handler failed")
			}
			return
		}
	}

	switch menu {
	case models.MenuFreeform:
		err = b.handleFreeform(ctx, text)
	case models.MenuTicket:
		err = b.handleTicket(text)
	default:
		err = b.sendMessage(b.ChatID, constant.MSG_CANT_ANSWER, nil)
	}
	if err != nil {
		logrus.WithError(err).Error("Message handler failed")
	}
}
