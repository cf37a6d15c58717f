package service

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/sirupsen/logrus"

	"uk-assist-bot/internal/tg_bot/constant"
	"uk-assist-bot/internal/tg_bot/models"
)

// intentCategory is one phrase bank with its score threshold. Strict
// categories require the score to be strictly above the threshold.
type intentCategory struct {
	intent    models.Intent
	phrases   []string
	threshold int
	strict    bool
}

// PhraseMatcher scores free-form text against the fixed phrase banks with
// edit-distance similarity. Categories are evaluated in a fixed priority
// order and the first one clearing its threshold wins.
type PhraseMatcher struct {
	categories []intentCategory
}

func NewPhraseMatcher() *PhraseMatcher {
	return &PhraseMatcher{
		categories: []intentCategory{
			{models.IntentTime, constant.TimeQuestions, 80, false},
			{models.IntentWeatherHere, constant.WeatherLocaleQuestions, 95, true},
			{models.IntentWeatherElsewhere, constant.WeatherQuestions, 80, false},
			{models.IntentJoke, constant.JokeQuestions, 80, false},
		},
	}
}

// Match returns the winning intent for text, ok=false when no category
// clears its threshold.
func (m *PhraseMatcher) Match(text string) (models.Intent, bool) {
	for _, category := range m.categories {
		best, err := fuzzy.ExtractOne(text, category.phrases)
		if err != nil {
			logrus.WithError(err).Errorf("Failed to score text against %s phrases", category.intent)
			continue
		}
		logrus.Debugf("Схожесть вопроса по Левенштейну: %s - %d", category.intent, best.Score)
		if best.Score > category.threshold || (!category.strict && best.Score == category.threshold) {
			return category.intent, true
		}
	}
	return "", false
}
