package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"uk-assist-bot/internal/tg_bot/api"
	"uk-assist-bot/internal/tg_bot/constant"
	"uk-assist-bot/internal/tg_bot/models"
)

// WeatherProvider is the remote weather feed.
type WeatherProvider interface {
	GetWeather(ctx context.Context, location string) (models.WeatherReport, error)
}

// LocationExtractor pulls a place name out of free-form text.
type LocationExtractor interface {
	ExtractLocation(text string) (string, bool)
}

// Глифы погодных состояний провайдера. "Clear" обрабатывается отдельно,
// потому что зависит от времени суток в отчёте.
var conditionGlyphs = map[string]string{
	"Thunderstorm": "⚡️",
	"Rain":         "💧",
	"Drizzle":      "💦",
	"Snow":         "❄️",
	"Mist":         "🌁",
	"Smoke":        "🌫",
	"Haze":         "🌫",
	"Fog":          "🌁",
	"Squall":       "🌪️",
	"Tornado":      "🌪️",
	"Clouds":       "☁️",
}

// WeatherService turns a free-form weather question into a reply.
type WeatherService struct {
	provider  WeatherProvider
	extractor LocationExtractor
}

func NewWeatherService(provider WeatherProvider, extractor LocationExtractor) *WeatherService {
	return &WeatherService{
		provider:  provider,
		extractor: extractor,
	}
}

// Forecast answers the weather question in text. The two miss cases stay
// distinguishable: no location phrase in the text and a location the
// provider does not know.
func (s *WeatherService) Forecast(ctx context.Context, text string) string {
	location, ok := s.extractor.ExtractLocation(text)
	if !ok {
		return constant.MSG_WEATHER_NO_LOC
	}

	report, err := s.provider.GetWeather(ctx, location)
	if errors.Is(err, api.ErrLocationUnknown) {
		return constant.MSG_WEATHER_NO_CITY
	}
	if err != nil {
		logrus.WithError(err).Error("Weather provider call failed")
		return constant.MSG_WEATHER_FAILED
	}

	logrus.Info("Бот сообщил погоду")
	return formatReport(report)
}

// formatReport renders the provider report the way the bot answers:
// banded temperature, described clouds with a condition glyph, wind speed.
func formatReport(report models.WeatherReport) string {
	city := report.City
	flag := countryFlag(report.Country)
	clouds := capitalize(report.Description)
	glyph := conditionGlyph(report)

	temperature := strconv.FormatFloat(report.Temperature, 'f', -1, 64) + "°C " + temperatureMarker(report.Temperature)
	wind := strconv.FormatFloat(report.WindSpeed, 'f', -1, 64) + "м/с"

	return fmt.Sprintf("Синоптики сообщают что на данный момент в %s%s\n\nПогода: %s %s\nТемпература: %s\nСкорость ветра: %s",
		flag, city, clouds, glyph, temperature, wind)
}

// temperatureMarker bands the temperature: hot above 25°C, cold below 15°C.
func temperatureMarker(temperature float64) string {
	switch {
	case temperature > 25:
		return "🥵"
	case temperature < 15:
		return "🥶"
	default:
		return "😁"
	}
}

// conditionGlyph maps the provider condition to a glyph. Clear weather is a
// day or night glyph depending on whether the report falls between sunrise
// and sunset.
func conditionGlyph(report models.WeatherReport) string {
	if report.Condition == "Clear" {
		if report.Sunrise < report.ReportedAt && report.ReportedAt < report.Sunset {
			return "🌞"
		}
		return "🌛"
	}
	if glyph, ok := conditionGlyphs[report.Condition]; ok {
		return glyph
	}
	return report.Condition
}

// countryFlag builds the emoji flag of a two-letter ISO country code.
func countryFlag(code string) string {
	if len(code) != 2 {
		return ""
	}
	var flag strings.Builder
	for _, r := range strings.ToUpper(code) {
		if r < 'A' || r > 'Z' {
			return ""
		}
		flag.WriteRune(0x1F1E6 + r - 'A')
	}
	return flag.String()
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
