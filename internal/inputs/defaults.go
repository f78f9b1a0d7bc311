package inputs

import "github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"

// Built-in fallbacks used when a record table is absent. Each function
// returns a fresh value so callers can mutate their copy freely.

func DefaultCompany() models.Company {
	return models.Company{Name: "Company", Subreddits: []string{}, NumPostsPerWeek: 3}
}

func DefaultPersonas() []models.Persona {
	return []models.Persona{
		{Username: "jordan_consults", Background: "product consultant"},
		{Username: "emily_econ", Background: "marketing analyst"},
		{Username: "riley_ops", Background: "ops and presentations"},
		{Username: "alex_sells", Background: "sales"},
	}
}

func DefaultSubreddits() []string {
	return []string{"r/PowerPoint", "r/Canva", "r/GoogleSlides", "r/AItools", "r/presentations"}
}

func DefaultKeywords() []models.Keyword {
	return []models.Keyword{
		{ID: "K1", Text: "best AI presentation maker"},
		{ID: "K2", Text: "ai slide deck tool"},
		{ID: "K3", Text: "pitch deck generator"},
		{ID: "K4", Text: "alternatives to PowerPoint"},
		{ID: "K5", Text: "how to make slides faster"},
		{ID: "K6", Text: "export Google Slides reliably"},
		{ID: "K7", Text: "slidesmart.ai efficiency"},
	}
}
