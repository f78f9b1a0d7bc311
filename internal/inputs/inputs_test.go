package inputs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource map[string]any

func (m mapSource) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func TestInputsDefaults(t *testing.T) {
	in := New(nil)

	company := in.Company()
	assert.Equal(t, "Company", company.Name)
	assert.Equal(t, 3, company.NumPostsPerWeek)

	personas := in.Personas()
	require.NotEmpty(t, personas)
	assert.Equal(t, "jordan_consults", personas[0].Username)
	for _, p := range personas {
		assert.NotEmpty(t, p.Voice.Tone, "every persona gets a voice at load time")
	}

	subs := in.Subreddits()
	assert.Equal(t, DefaultSubreddits(), subs)

	keywords := in.Keywords()
	assert.Equal(t, DefaultKeywords(), keywords)
}

func TestInputsFromSource(t *testing.T) {
	in := New(mapSource{
		KeyCompany: map[string]any{
			"name":                     "Slideforge",
			"Number of posts per week": "5",
		},
		KeyPersonas:   []any{"alice", "bob"},
		KeySubreddits: []any{"r/Canva"},
		KeyKeywords:   []any{"pitch decks"},
	})

	assert.Equal(t, "Slideforge", in.Company().Name)
	assert.Equal(t, 5, in.Company().NumPostsPerWeek)

	personas := in.Personas()
	require.Len(t, personas, 2)
	assert.Equal(t, "alice", personas[0].Username)

	assert.Equal(t, []string{"r/Canva"}, in.Subreddits())

	keywords := in.Keywords()
	require.Len(t, keywords, 1)
	assert.Equal(t, "K1", keywords[0].ID)
}

func TestSubredditsFallBackToCompanyRecord(t *testing.T) {
	in := New(mapSource{
		KeyCompany: map[string]any{
			"name":       "Slideforge",
			"Subreddits": "r/PowerPoint, r/AItools",
		},
	})

	assert.Equal(t, []string{"r/PowerPoint", "r/AItools"}, in.Subreddits())
}

func TestDefaultsReturnFreshValues(t *testing.T) {
	a := DefaultPersonas()
	a[0].Username = "mutated"
	assert.Equal(t, "jordan_consults", DefaultPersonas()[0].Username)

	s := DefaultSubreddits()
	s[0] = "mutated"
	assert.Equal(t, "r/PowerPoint", DefaultSubreddits()[0])
}
