package inputs

import (
	"strings"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

// Voice rules checked in order against the lowercased background.
// The first rule with a matching substring wins.
var voiceRules = []struct {
	substrings []string
	voice      models.Voice
}{
	{[]string{"consult", "product"}, models.Voice{Tone: models.ToneHelpful}},
	{[]string{"marketing", "sales"}, models.Voice{Tone: models.ToneSupportive, Brief: true, Quirk: "😊"}},
	{[]string{"ops", "presentation"}, models.Voice{Tone: models.TonePractical, Brief: true}},
}

// AssignVoice derives a persona's speaking style from its background text.
func AssignVoice(background string) models.Voice {
	b := strings.ToLower(background)
	for _, rule := range voiceRules {
		for _, sub := range rule.substrings {
			if strings.Contains(b, sub) {
				return rule.voice
			}
		}
	}
	return models.Voice{Tone: models.ToneNeutral}
}
