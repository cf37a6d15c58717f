// Package models holds the domain types of the Telegram bot.
package models

// Menu is the conversational state gating which handler free text goes to.
type Menu int

const (
	MenuMain Menu = iota // главное меню
	MenuCurrency         // выбор валюты
	MenuTicket           // приём заявки в УК
	MenuFreeform         // вопрос в свободной форме
)

func (m Menu) String() string {
	switch m {
	case MenuMain:
		return "main"
	case MenuCurrency:
		return "currency"
	case MenuTicket:
		return "ticket"
	case MenuFreeform:
		return "freeform"
	}
	return "unknown"
}

// ChatState is the per-conversation entity keyed by chat ID.
type ChatState struct {
	ChatID int64 `json:"chatID"`
	Menu   Menu  `json:"menu"`
}

// WeatherReport is the typed result of one weather provider call.
type WeatherReport struct {
	City        string  // provider-reported city name
	Country     string  // ISO country code, may be empty
	Description string  // cloud description, e.g. "пасмурно"
	Condition   string  // main condition group, e.g. "Clear"
	Temperature float64 // °C
	WindSpeed   float64 // m/s
	ReportedAt  int64   // unix seconds of the report
	Sunrise     int64   // unix seconds
	Sunset      int64   // unix seconds
}

// Intent is one recognized free-text intent category.
type Intent string

const (
	IntentTime             Intent = "time"
	IntentWeatherHere      Intent = "weather_here"
	IntentWeatherElsewhere Intent = "weather_elsewhere"
	IntentJoke             Intent = "joke"
)
