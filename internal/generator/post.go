package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

// DefaultAttemptMultiplier bounds post generation to count×80 attempts so a
// community×keyword space smaller than the requested count still terminates.
const DefaultAttemptMultiplier = 80

type PostGenerator struct {
	Company    models.Company
	Personas   []models.Persona
	Subreddits []string
	Keywords   []models.Keyword

	Registry *Registry
	Voice    *VoiceRenderer

	AttemptMultiplier int
	TitleSuffixProb   float64
	SignatureProb     float64
	DaytimeProb       float64

	rng *rand.Rand
}

func NewPostGenerator(company models.Company, personas []models.Persona,
	subreddits []string, keywords []models.Keyword, rng *rand.Rand) *PostGenerator {

	return &PostGenerator{
		Company:           company,
		Personas:          personas,
		Subreddits:        subreddits,
		Keywords:          keywords,
		Registry:          NewRegistry(),
		Voice:             NewVoiceRenderer(rng),
		AttemptMultiplier: DefaultAttemptMultiplier,
		TitleSuffixProb:   0.4,
		SignatureProb:     0.4,
		DaytimeProb:       0.8,
		rng:               rng,
	}
}

var bodyTails = []string{
	"\n\nAny tips appreciated!",
	"\n\nThanks in advance.",
	"\n\nWould love to hear your thoughts.",
	"",
}

// Generate produces up to count posts for the week starting at weekStart.
// A count of zero or less falls back to the company's posts-per-week
// setting. Personas are cycled round-robin; communities and keyword pairs
// are drawn at random, with each (community, keyword set) pair used at most
// once. When the pair space is exhausted a short list is returned rather
// than an error.
func (g *PostGenerator) Generate(count int, weekStart time.Time) []models.Post {
	if count <= 0 {
		count = g.Company.NumPostsPerWeek
	}
	if count <= 0 || len(g.Personas) == 0 || len(g.Subreddits) == 0 {
		return nil
	}

	multiplier := g.AttemptMultiplier
	if multiplier <= 0 {
		multiplier = DefaultAttemptMultiplier
	}
	maxAttempts := count * multiplier

	var posts []models.Post
	usedPairs := make(map[string]bool)
	personaIndex := 0

	for attempts := 0; len(posts) < count && attempts < maxAttempts; attempts++ {
		persona := g.Personas[personaIndex%len(g.Personas)]
		personaIndex++

		subreddit := g.Subreddits[g.rng.Intn(len(g.Subreddits))]
		keywords := g.sampleKeywords()

		ids := make([]string, len(keywords))
		for i, kw := range keywords {
			ids[i] = kw.ID
		}

		pair := pairKey(subreddit, ids)
		if usedPairs[pair] {
			continue
		}
		usedPairs[pair] = true

		post := models.Post{
			PostID:         fmt.Sprintf("P%d", len(posts)+1),
			Subreddit:      subreddit,
			Title:          g.buildTitle(subreddit, keywords[0]),
			Body:           g.buildBody(persona, subreddit, keywords[0]),
			AuthorUsername: persona.Username,
			Timestamp:      g.randomTimestamp(weekStart),
			KeywordIDs:     ids,
		}
		posts = append(posts, post)
	}

	return posts
}

func (g *PostGenerator) sampleKeywords() []models.Keyword {
	if len(g.Keywords) == 0 {
		return []models.Keyword{{ID: "K1", Text: "general topic"}}
	}

	k := 2
	if len(g.Keywords) < k {
		k = len(g.Keywords)
	}

	perm := g.rng.Perm(len(g.Keywords))
	out := make([]models.Keyword, k)
	for i := 0; i < k; i++ {
		out[i] = g.Keywords[perm[i]]
	}
	return out
}

func (g *PostGenerator) buildTitle(subreddit string, keyword models.Keyword) string {
	ts := g.Registry.Lookup(subreddit)
	title := ts.Titles[g.rng.Intn(len(ts.Titles))]

	if hasPlaceholder(title) {
		return renderTemplate(title, g.Company.Name, keyword.Text)
	}
	if g.rng.Float64() < g.TitleSuffixProb {
		return title + " — " + keyword.Text
	}
	return title
}

func (g *PostGenerator) buildBody(persona models.Persona, subreddit string, keyword models.Keyword) string {
	ts := g.Registry.Lookup(subreddit)
	body := renderTemplate(ts.Bodies[g.rng.Intn(len(ts.Bodies))], g.Company.Name, keyword.Text)

	tail := bodyTails[g.rng.Intn(len(bodyTails))]
	if g.rng.Float64() < g.SignatureProb {
		tail += "\n\n— " + persona.Username
	}

	return g.Voice.Render(persona.Voice, body+tail)
}

// randomTimestamp picks a slot in the 7-day window, biased toward the
// 09:00–18:00 band.
func (g *PostGenerator) randomTimestamp(weekStart time.Time) time.Time {
	day := weekStart.AddDate(0, 0, g.rng.Intn(7))

	var hour int
	if g.rng.Float64() < g.DaytimeProb {
		hour = 9 + g.rng.Intn(10)
	} else {
		hour = g.rng.Intn(24)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, g.rng.Intn(60), 0, 0, day.Location())
}

// pairKey is the dedup key preventing two posts from targeting the same
// community and keyword combination in one run.
func pairKey(subreddit string, keywordIDs []string) string {
	sorted := make([]string, len(keywordIDs))
	copy(sorted, keywordIDs)
	sort.Strings(sorted)
	return strings.ToLower(subreddit) + "|" + strings.Join(sorted, ",")
}
