package service

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uk-assist-bot/internal/tg_bot/constant"
	"uk-assist-bot/internal/tg_bot/models"
	"uk-assist-bot/internal/tg_bot/repository"
)

// fakeSender records every outbound message instead of hitting Telegram.
type fakeSender struct {
	sent []tgbotapi.MessageConfig
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.sent, "expected the bot to reply")
	return f.sent[len(f.sent)-1].Text
}

type fakeRates struct {
	codes []string
	text  string
	err   error
}

func (f *fakeRates) GetRate(_ context.Context, code string) (string, error) {
	f.codes = append(f.codes, code)
	return f.text, f.err
}

type fakeWeather struct{ asked []string }

func (f *fakeWeather) Forecast(_ context.Context, text string) string {
	f.asked = append(f.asked, text)
	return "прогноз"
}

type fakeJoker struct{ calls int }

func (f *fakeJoker) TellJoke(context.Context) string {
	f.calls++
	return "анекдот"
}

type fakeClassifier struct {
	label string
	err   error
	got   string
}

func (f *fakeClassifier) Predict(text string) (string, error) {
	f.got = text
	return f.label, f.err
}

type fakeNormalizer struct{ got string }

func (f *fakeNormalizer) Normalize(text string) string {
	f.got = text
	return "нормализованный текст"
}

type fakeMatcher struct {
	intent models.Intent
	ok     bool
}

func (f *fakeMatcher) Match(string) (models.Intent, bool) {
	return f.intent, f.ok
}

type botFixture struct {
	bot        *TgBotServices
	sender     *fakeSender
	rates      *fakeRates
	weather    *fakeWeather
	joker      *fakeJoker
	classifier *fakeClassifier
	normalizer *fakeNormalizer
	matcher    *fakeMatcher
	states     *repository.ChatStates
}

func newBotFixture() *botFixture {
	f := &botFixture{
		sender:     &fakeSender{},
		rates:      &fakeRates{text: "На текущий момент\n1 🇪🇺Евро = 98.765 🇷🇺 Российских рублей"},
		weather:    &fakeWeather{},
		joker:      &fakeJoker{},
		classifier: &fakeClassifier{label: "Сантехника"},
		normalizer: &fakeNormalizer{},
		matcher:    &fakeMatcher{},
		states:     repository.NewChatStates(),
	}
	f.bot = NewTgBot(f.rates, f.weather, f.joker, f.classifier, f.normalizer, f.matcher, f.states, f.sender)
	return f
}

func message(chatID int64, text string) *tgbotapi.Update {
	return &tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: chatID},
		},
	}
}

func TestGreetingShowsMainMenu(t *testing.T) {
	f := newBotFixture()

	f.bot.UpdateProcessing(context.Background(), message(1, "Привет"))

	assert.Equal(t, models.MenuMain, f.states.GetMenu(1))
	assert.Equal(t, constant.MSG_GREETING, f.sender.lastText(t))
}

func TestCurrencyPhraseEntersCurrencyMenu(t *testing.T) {
	f := newBotFixture()

	f.bot.UpdateProcessing(context.Background(), message(1, "Уровень валют восточной Европы"))

	assert.Equal(t, models.MenuCurrency, f.states.GetMenu(1))
	assert.Equal(t, constant.MSG_CURRENCY_MENU, f.sender.lastText(t))
}

func TestCurrencyButtonTriggersExactlyOneRateRead(t *testing.T) {
	f := newBotFixture()
	f.states.SetMenu(1, models.MenuCurrency)

	f.bot.UpdateProcessing(context.Background(), message(1, constant.BUTTON_TEXT_EUR))

	assert.Equal(t, []string{"EUR"}, f.rates.codes, "exactly one read for the matching code")
	assert.Contains(t, f.sender.lastText(t), "Евро")
	assert.Equal(t, models.MenuCurrency, f.states.GetMenu(1), "state must not change")
}

func TestEveryCurrencyButtonMapsToItsCode(t *testing.T) {
	f := newBotFixture()
	f.states.SetMenu(1, models.MenuCurrency)

	for _, button := range constant.CurrencyButtonOrder {
		f.bot.UpdateProcessing(context.Background(), message(1, button))
	}

	assert.Equal(t, []string{"EUR", "BYN", "UAH", "MDL", "RON", "BGN", "HUF", "CZK", "PLN"}, f.rates.codes)
}

func TestCurrencyButtonIgnoredOutsideCurrencyMenu(t *testing.T) {
	f := newBotFixture()

	f.bot.UpdateProcessing(context.Background(), message(1, constant.BUTTON_TEXT_EUR))

	assert.Empty(t, f.rates.codes, "no rate read outside the currency menu")
	assert.Equal(t, constant.MSG_CANT_ANSWER, f.sender.lastText(t))
}

func TestRateAPIFailureYieldsApology(t *testing.T) {
	f := newBotFixture()
	f.rates.err = errors.New("rate api returned: 503")
	f.states.SetMenu(1, models.MenuCurrency)

	f.bot.UpdateProcessing(context.Background(), message(1, constant.BUTTON_TEXT_PLN))

	assert.Equal(t, constant.MSG_RATE_API_DOWN, f.sender.lastText(t))
}

func TestBackReturnsToMainFromEveryState(t *testing.T) {
	for _, menu := range []models.Menu{models.MenuMain, models.MenuCurrency, models.MenuFreeform, models.MenuTicket} {
		f := newBotFixture()
		f.states.SetMenu(1, menu)

		f.bot.UpdateProcessing(context.Background(), message(1, "Назад"))

		assert.Equal(t, models.MenuMain, f.states.GetMenu(1), "back from %s must land in main", menu)
		assert.Equal(t, constant.MSG_MAIN_MENU, f.sender.lastText(t))
	}
}

func TestCommandPhrasesAreCaseInsensitive(t *testing.T) {
	f := newBotFixture()

	f.bot.UpdateProcessing(context.Background(), message(1, "уровень валют восточной европы"))

	assert.Equal(t, models.MenuCurrency, f.states.GetMenu(1))
}

func TestFreeformTimeIntent(t *testing.T) {
	f := newBotFixture()
	f.states.SetMenu(1, models.MenuFreeform)
	f.matcher.intent, f.matcher.ok = models.IntentTime, true

	f.bot.UpdateProcessing(context.Background(), message(1, "который час"))

	assert.Contains(t, f.sender.lastText(t), "Текущее время по Перми")
}

func TestFreeformWeatherHereUsesCannedPermQuestion(t *testing.T) {
	f := newBotFixture()
	f.states.SetMenu(1, models.MenuFreeform)
	f.matcher.intent, f.matcher.ok = models.IntentWeatherHere, true

	f.bot.UpdateProcessing(context.Background(), message(1, "какая погода"))

	assert.Equal(t, []string{"Какая погода в Перми?"}, f.weather.asked)
}

func TestFreeformWeatherElsewherePassesUserText(t *testing.T) {
	f := newBotFixture()
	f.states.SetMenu(1, models.MenuFreeform)
	f.matcher.intent, f.matcher.ok = models.IntentWeatherElsewhere, true

	f.bot.UpdateProcessing(context.Background(), message(1, "какая погода в городе Казань"))

	assert.Equal(t, []string{"какая погода в городе Казань"}, f.weather.asked)
}

func TestFreeformJokeIntent(t *testing.T) {
	f := newBotFixture()
	f.states.SetMenu(1, models.MenuFreeform)
	f.matcher.intent, f.matcher.ok = models.IntentJoke, true

	f.bot.UpdateProcessing(context.Background(), message(1, "пошути"))

	assert.Equal(t, 1, f.joker.calls)
	assert.Equal(t, "анекдот", f.sender.lastText(t))
}

func TestFreeformNoIntentMatch(t *testing.T) {
	f := newBotFixture()
	f.states.SetMenu(1, models.MenuFreeform)

	f.bot.UpdateProcessing(context.Background(), message(1, "абракадабра"))

	assert.Equal(t, constant.MSG_CANT_ANSWER, f.sender.lastText(t))
}

func TestTicketFlowNormalizesThenClassifies(t *testing.T) {
	f := newBotFixture()
	f.states.SetMenu(1, models.MenuTicket)

	f.bot.UpdateProcessing(context.Background(), message(1, "Прорвало трубу в подъезде!"))

	assert.Equal(t, "Прорвало трубу в подъезде!", f.normalizer.got)
	assert.Equal(t, "нормализованный текст", f.classifier.got, "classifier must receive the normalized text")
	assert.Contains(t, f.sender.lastText(t), "Сантехника", "reply must contain the category label verbatim")
	assert.Equal(t, models.MenuTicket, f.states.GetMenu(1), "state must not change")
}

func TestTicketClassifierFailureKeepsConversationAlive(t *testing.T) {
	f := newBotFixture()
	f.states.SetMenu(1, models.MenuTicket)
	f.classifier.err = errors.New("model is broken")

	f.bot.UpdateProcessing(context.Background(), message(1, "жалоба"))

	assert.Equal(t, constant.MSG_TICKET_FAILED, f.sender.lastText(t))

	// следующий апдейт обрабатывается как обычно
	f.classifier.err = nil
	f.bot.UpdateProcessing(context.Background(), message(1, "жалоба"))
	assert.Contains(t, f.sender.lastText(t), "Сантехника")
}

func TestUnmatchedTextInMainMenu(t *testing.T) {
	f := newBotFixture()

	f.bot.UpdateProcessing(context.Background(), message(1, "что-то непонятное"))

	assert.Equal(t, constant.MSG_CANT_ANSWER, f.sender.lastText(t))
	assert.Equal(t, models.MenuMain, f.states.GetMenu(1))
}

func TestEmptyUpdateIgnored(t *testing.T) {
	f := newBotFixture()

	f.bot.UpdateProcessing(context.Background(), &tgbotapi.Update{})

	assert.Empty(t, f.sender.sent)
}
