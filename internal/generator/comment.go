package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

type CommentGenerator struct {
	Company  models.Company
	Personas []models.Persona
	Keywords []models.Keyword

	MinPerPost int
	MaxPerPost int

	ReplyProb    float64
	DisagreeProb float64
	BriefProb    float64
	QuirkProb    float64
	SuffixProb   float64

	rng *rand.Rand
}

func NewCommentGenerator(company models.Company, personas []models.Persona,
	keywords []models.Keyword, rng *rand.Rand) *CommentGenerator {

	return &CommentGenerator{
		Company:      company,
		Personas:     personas,
		Keywords:     keywords,
		MinPerPost:   2,
		MaxPerPost:   5,
		ReplyProb:    0.55,
		DisagreeProb: 0.25,
		BriefProb:    0.5,
		QuirkProb:    0.5,
		SuffixProb:   0.6,
		rng:          rng,
	}
}

var dedupSuffixes = []string{"Worked for me.", "YMMV.", "Your mileage may vary."}

// Generate produces a threaded comment set covering every input post.
// Replies only ever reference comments in the same post's thread, and
// timestamps skew later as the thread grows.
func (g *CommentGenerator) Generate(posts []models.Post) []models.Comment {
	if len(g.Personas) == 0 {
		return nil
	}

	min, max := g.MinPerPost, g.MaxPerPost
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}

	keywordText := make(map[string]string, len(g.Keywords))
	for _, kw := range g.Keywords {
		keywordText[kw.ID] = kw.Text
	}

	var comments []models.Comment
	usedTexts := make(map[string]bool)
	counter := 1

	for _, post := range posts {
		kwRefs := postKeywordTexts(post, keywordText)
		numComments := min + g.rng.Intn(max-min+1)

		var thread []models.Comment
		for n := 0; n < numComments; n++ {
			persona := g.Personas[g.rng.Intn(len(g.Personas))]

			parentID := ""
			if len(thread) > 0 && g.rng.Float64() < g.ReplyProb {
				parentID = thread[g.rng.Intn(len(thread))].CommentID
			}

			kwRef := kwRefs[g.rng.Intn(len(kwRefs))]
			text := g.renderText(persona.Voice, kwRef, usedTexts)

			offset := time.Duration(5+g.rng.Intn(176)+len(thread)*4) * time.Minute

			comment := models.Comment{
				CommentID:       fmt.Sprintf("C%d", counter),
				PostID:          post.PostID,
				ParentCommentID: parentID,
				CommentText:     text,
				Username:        persona.Username,
				Timestamp:       post.Timestamp.Add(offset),
			}

			comments = append(comments, comment)
			thread = append(thread, comment)
			usedTexts[text] = true
			counter++
		}
	}

	return comments
}

func postKeywordTexts(post models.Post, keywordText map[string]string) []string {
	if len(post.KeywordIDs) == 0 {
		return []string{"this"}
	}

	out := make([]string, 0, len(post.KeywordIDs))
	for _, id := range post.KeywordIDs {
		if text, ok := keywordText[id]; ok {
			out = append(out, text)
		} else {
			out = append(out, id)
		}
	}
	return out
}

func (g *CommentGenerator) renderText(voice models.Voice, kwRef string, usedTexts map[string]bool) string {
	company := g.Company.Name
	variants := []string{
		fmt.Sprintf("I've used %s for %s and it saved me time.", company, kwRef),
		fmt.Sprintf("For %s I usually export and tweak — %s gives me a good starting point.", kwRef, company),
		fmt.Sprintf("Not perfect, but %s helps with %s. You'll need to adjust layouts.", company, kwRef),
		fmt.Sprintf("+1 — %s worked well for %s in my experience.", company, kwRef),
		"I tried exporting to Google Slides and then cleaned up spacing — quicker than starting from scratch.",
		fmt.Sprintf("Saved me a lot of time for %s 😊", kwRef),
		fmt.Sprintf("I hate fixing fonts but %s made the structure for %s.", company, kwRef),
		fmt.Sprintf("Depends on use-case — for simple %s it's great, complex layouts need work.", kwRef),
	}

	if g.rng.Float64() < g.DisagreeProb {
		variants = append(variants,
			fmt.Sprintf("Hmm, I found %s a bit tricky for %s though others might like it.", company, kwRef))
	}

	text := variants[g.rng.Intn(len(variants))]

	if voice.Brief && g.rng.Float64() < g.BriefProb {
		text = FirstSentence(text)
	}
	if voice.Quirk != "" && g.rng.Float64() < g.QuirkProb {
		text = text + " " + voice.Quirk
	}

	// near-uniqueness: exact repeats get a short disambiguating suffix
	if usedTexts[text] {
		if g.rng.Float64() < g.SuffixProb {
			text += ". " + dedupSuffixes[g.rng.Intn(len(dedupSuffixes))]
		} else {
			text += "."
		}
	}

	return text
}
