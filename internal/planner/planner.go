package planner

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/config"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/generator"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/inputs"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/scorer"
)

// Plan is one generated weekly calendar with its quality assessment.
type Plan struct {
	RunID       string
	WeekStart   time.Time
	Posts       []models.Post
	Comments    []models.Comment
	Score       float64
	Diagnostics scorer.Diagnostics
}

// Run converts the plan into its recordable summary.
func (p *Plan) Run() models.PlanRun {
	return models.PlanRun{
		ID:            p.RunID,
		WeekStart:     p.WeekStart,
		PostsCount:    len(p.Posts),
		CommentsCount: len(p.Comments),
		Score:         p.Score,
		Details:       p.Diagnostics.Counts(),
		CreatedAt:     time.Now(),
	}
}

// Planner wires normalized inputs through post and comment generation and
// scoring. Each GenerateWeek call reads the inputs fresh, so record tables
// loaded between runs are picked up without restarting.
type Planner struct {
	in  *inputs.Inputs
	cfg *config.Config
	rng *rand.Rand
}

func New(in *inputs.Inputs, cfg *config.Config, rng *rand.Rand) *Planner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{in: in, cfg: cfg, rng: rng}
}

// GenerateWeek builds the calendar for the week starting at weekStart.
// A count of zero or less uses the company's posts-per-week setting.
func (p *Planner) GenerateWeek(count int, weekStart time.Time) *Plan {
	company := p.in.Company()
	personas := p.in.Personas()
	subreddits := p.in.Subreddits()
	keywords := p.in.Keywords()

	gen := p.cfg.App.Generation

	postGen := generator.NewPostGenerator(company, personas, subreddits, keywords, p.rng)
	postGen.AttemptMultiplier = gen.AttemptMultiplier
	posts := postGen.Generate(count, weekStart)

	commentGen := generator.NewCommentGenerator(company, personas, keywords, p.rng)
	commentGen.MinPerPost = gen.MinCommentsPerPost
	commentGen.MaxPerPost = gen.MaxCommentsPerPost
	comments := commentGen.Generate(posts)

	score, diagnostics := scorer.Score(posts, comments, personas)

	return &Plan{
		RunID:       uuid.NewString(),
		WeekStart:   weekStart,
		Posts:       posts,
		Comments:    comments,
		Score:       score,
		Diagnostics: diagnostics,
	}
}
