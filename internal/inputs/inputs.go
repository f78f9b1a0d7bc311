package inputs

import "github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"

// Record keys for the four input tables.
const (
	KeyCompany    = "company"
	KeyPersonas   = "personas"
	KeySubreddits = "subreddits"
	KeyKeywords   = "keywords"
)

// RecordSource is the string-keyed lookup the planner reads raw input
// records from. Implementations return the decoded JSON value for a key,
// or false when the table has never been loaded.
type RecordSource interface {
	Lookup(key string) (any, bool)
}

// Inputs layers normalization and built-in defaults over a RecordSource.
// Every getter tolerates a nil source and a missing table.
type Inputs struct {
	source RecordSource
}

func New(source RecordSource) *Inputs {
	return &Inputs{source: source}
}

func (in *Inputs) lookup(key string) any {
	if in == nil || in.source == nil {
		return nil
	}
	v, ok := in.source.Lookup(key)
	if !ok {
		return nil
	}
	return v
}

func (in *Inputs) Company() models.Company {
	c := NormalizeCompany(in.lookup(KeyCompany))
	if c.Name == "" {
		c.Name = "Company"
	}
	return c
}

// Personas returns the normalized persona roster with voices assigned,
// falling back to the built-in roster when the table is absent.
func (in *Inputs) Personas() []models.Persona {
	personas := NormalizePersonas(in.lookup(KeyPersonas))
	if len(personas) == 0 {
		personas = DefaultPersonas()
	}
	for i := range personas {
		personas[i].Voice = AssignVoice(personas[i].Background)
	}
	return personas
}

// Subreddits resolves the community list: the subreddits table first, then
// the company record's embedded list, then the built-in fallback.
func (in *Inputs) Subreddits() []string {
	if subs := NormalizeSubreddits(in.lookup(KeySubreddits)); len(subs) > 0 {
		return subs
	}
	if rec, ok := in.lookup(KeyCompany).(map[string]any); ok {
		if raw, ok := firstValue(rec, companySubsKeys); ok {
			if subs := splitList(raw); len(subs) > 0 {
				return subs
			}
		}
	}
	return DefaultSubreddits()
}

func (in *Inputs) Keywords() []models.Keyword {
	if keywords := NormalizeKeywords(in.lookup(KeyKeywords)); len(keywords) > 0 {
		return keywords
	}
	return DefaultKeywords()
}
