package generator

import (
	"math/rand"
	"strings"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

// VoiceRenderer applies a persona's voice to rendered text. Each step is
// gated by its own probability so seeded tests can pin the output.
type VoiceRenderer struct {
	BriefProb  float64
	QuirkProb  float64
	CasualProb float64
	AsideProb  float64

	rng *rand.Rand
}

func NewVoiceRenderer(rng *rand.Rand) *VoiceRenderer {
	return &VoiceRenderer{
		BriefProb:  0.4,
		QuirkProb:  0.5,
		CasualProb: 0.3,
		AsideProb:  0.2,
		rng:        rng,
	}
}

// Render runs the voice pipeline: brief truncation, quirk marker, casual
// substitutions, then an occasional aside.
func (v *VoiceRenderer) Render(voice models.Voice, text string) string {
	out := text
	if voice.Brief && v.rng.Float64() < v.BriefProb {
		out = FirstSentence(out)
	}
	if voice.Quirk != "" && v.rng.Float64() < v.QuirkProb {
		out = out + " " + voice.Quirk
	}
	if v.rng.Float64() < v.CasualProb {
		out = casualize(out)
	}
	if v.rng.Float64() < v.AsideProb {
		out += " (in my experience)"
	}
	return out
}

// FirstSentence truncates text at the first period, dropping everything
// after it.
func FirstSentence(text string) string {
	if i := strings.Index(text, "."); i >= 0 {
		return text[:i]
	}
	return text
}

var casualReplacements = [][2]string{
	{"Any tips appreciated!", "Any tips appreciated? 🙂"},
	{"Thanks in advance.", "Thanks! 🙏"},
	{"Would love to hear your thoughts.", "Would love your thoughts!"},
	{"\n\n", " "},
}

func casualize(text string) string {
	for _, r := range casualReplacements {
		text = strings.ReplaceAll(text, r[0], r[1])
	}
	return text
}
