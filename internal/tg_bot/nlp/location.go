package nlp

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// locationPattern ловит название места после предлога "в"/"во".
var locationPattern = regexp.MustCompile(`(?i)(?:^|\s)во?\s+([\p{L}][\p{L}-]*)`)

// knownPlaces maps frequent inflected forms to their dictionary form.
// Checked before the generic suffix rules.
var knownPlaces = map[string]string{
	"перми":            "Пермь",
	"москве":           "Москва",
	"сочи":             "Сочи",
	"санкт-петербурге": "Санкт-Петербург",
	"питере":           "Санкт-Петербург",
	"нижнем":           "Нижний Новгород",
	"уфе":              "Уфа",
	"самаре":           "Самара",
}

// LocationExtractor pulls a place name out of free-form Russian text.
//
// This is a rule-based stand-in for the NER tagging and morphological
// normalization the task needs: the prepositional phrase is located and the
// inflected ending reduced heuristically. Misses return ok=false and the
// caller answers with the fixed "didn't understand" reply.
type LocationExtractor struct {
	titler cases.Caser
}

func NewLocationExtractor() *LocationExtractor {
	return &LocationExtractor{titler: cases.Title(language.Russian)}
}

// ExtractLocation returns the place mentioned in text, ok=false when none
// is found.
func (e *LocationExtractor) ExtractLocation(text string) (string, bool) {
	match := locationPattern.FindStringSubmatch(text)
	if match == nil {
		logrus.Debug("В запросе пользователя не обнаружено названия локации")
		return "", false
	}

	word := strings.ToLower(match[1])
	if place, ok := knownPlaces[word]; ok {
		logrus.Debugf("Погода будет предоставлена по локации %s", place)
		return place, true
	}

	place := e.titler.String(normalizeEnding(word))
	logrus.Debugf("Погода будет предоставлена по локации %s", place)
	return place, true
}

// normalizeEnding reduces the most common prepositional-case endings to a
// dictionary form: "новосибирске" -> "новосибирск", "казани" -> "казань".
func normalizeEnding(word string) string {
	runes := []rune(word)
	if len(runes) < 4 {
		return word
	}
	switch runes[len(runes)-1] {
	case 'е':
		return string(runes[:len(runes)-1])
	case 'и':
		return string(runes[:len(runes)-1]) + "ь"
	}
	return word
}
