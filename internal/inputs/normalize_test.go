package inputs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

func TestNormalizeCompany(t *testing.T) {
	t.Run("nil record gets defaults", func(t *testing.T) {
		c := NormalizeCompany(nil)
		assert.Equal(t, "Company", c.Name)
		assert.Equal(t, "", c.Description)
		assert.Empty(t, c.Subreddits)
		assert.Equal(t, 3, c.NumPostsPerWeek)
	})

	t.Run("aliased keys resolve", func(t *testing.T) {
		c := NormalizeCompany(map[string]any{
			"Website": "slideforge.io",
			"about":   "AI slide decks",
		})
		assert.Equal(t, "slideforge.io", c.Name)
		assert.Equal(t, "AI slide decks", c.Description)
	})

	t.Run("post count coerced from string", func(t *testing.T) {
		c := NormalizeCompany(map[string]any{"Number of posts per week": "7"})
		assert.Equal(t, 7, c.NumPostsPerWeek)
	})

	t.Run("unparseable post count falls back to 3", func(t *testing.T) {
		c := NormalizeCompany(map[string]any{"Number of posts per week": "abc"})
		assert.Equal(t, 3, c.NumPostsPerWeek)
	})

	t.Run("post count floored at 1", func(t *testing.T) {
		c := NormalizeCompany(map[string]any{"num_posts_per_week": float64(-4)})
		assert.Equal(t, 1, c.NumPostsPerWeek)
	})

	t.Run("subreddits from comma separated string", func(t *testing.T) {
		c := NormalizeCompany(map[string]any{
			"name":       "Acme",
			"Subreddits": "r/PowerPoint, r/Canva\nr/AItools",
		})
		assert.Equal(t, []string{"r/PowerPoint", "r/Canva", "r/AItools"}, c.Subreddits)
	})

	t.Run("subreddits from list skips blanks", func(t *testing.T) {
		c := NormalizeCompany(map[string]any{
			"name":       "Acme",
			"subreddits": []any{" r/presentations ", "", "r/Canva"},
		})
		assert.Equal(t, []string{"r/presentations", "r/Canva"}, c.Subreddits)
	})
}

func TestNormalizePersonas(t *testing.T) {
	t.Run("list of strings become usernames", func(t *testing.T) {
		personas := NormalizePersonas([]any{"alice", "bob"})
		require.Len(t, personas, 2)
		assert.Equal(t, "alice", personas[0].Username)
		assert.Equal(t, "", personas[0].Background)
		assert.Equal(t, "bob", personas[1].Username)
	})

	t.Run("single record is wrapped", func(t *testing.T) {
		personas := NormalizePersonas(map[string]any{
			"handle": "jordan",
			"bio":    "product consultant",
		})
		require.Len(t, personas, 1)
		assert.Equal(t, "jordan", personas[0].Username)
		assert.Equal(t, "product consultant", personas[0].Background)
	})

	t.Run("username falls back to first short string field", func(t *testing.T) {
		personas := NormalizePersonas([]any{
			map[string]any{
				"contact": "someone@example.com",
				"name":    "riley_ops",
				"notes":   "a very long free-text field that is clearly not a username at all",
			},
		})
		require.Len(t, personas, 1)
		assert.Equal(t, "riley_ops", personas[0].Username)
	})

	t.Run("username synthesized by position", func(t *testing.T) {
		personas := NormalizePersonas([]any{
			map[string]any{"age": float64(34)},
			map[string]any{"age": float64(28)},
		})
		require.Len(t, personas, 2)
		assert.Equal(t, "user_1", personas[0].Username)
		assert.Equal(t, "user_2", personas[1].Username)
	})

	t.Run("nil and scalar inputs yield nothing", func(t *testing.T) {
		assert.Nil(t, NormalizePersonas(nil))
		assert.Nil(t, NormalizePersonas("just a string"))
	})
}

func TestNormalizeSubreddits(t *testing.T) {
	assert.Nil(t, NormalizeSubreddits(nil))
	assert.Equal(t, []string{"r/A", "r/B"}, NormalizeSubreddits("r/A, r/B"))
	assert.Equal(t, []string{"r/A", "r/B"}, NormalizeSubreddits([]any{"r/A", " r/B "}))
	assert.Nil(t, NormalizeSubreddits(float64(42)))
}

func TestNormalizeKeywords(t *testing.T) {
	t.Run("list of strings gets sequential ids", func(t *testing.T) {
		keywords := NormalizeKeywords([]any{"pitch decks", "slide tools"})
		require.Len(t, keywords, 2)
		assert.Equal(t, models.Keyword{ID: "K1", Text: "pitch decks"}, keywords[0])
		assert.Equal(t, models.Keyword{ID: "K2", Text: "slide tools"}, keywords[1])
	})

	t.Run("list of records resolves aliases and fills ids", func(t *testing.T) {
		keywords := NormalizeKeywords([]any{
			map[string]any{"keyword_id": "KW9", "keyword": "deck builder"},
			map[string]any{"label": "slide maker"},
		})
		require.Len(t, keywords, 2)
		assert.Equal(t, models.Keyword{ID: "KW9", Text: "deck builder"}, keywords[0])
		assert.Equal(t, models.Keyword{ID: "K2", Text: "slide maker"}, keywords[1])
	})

	t.Run("mapping values become texts", func(t *testing.T) {
		keywords := NormalizeKeywords(map[string]any{
			"a": "first",
			"b": "second",
		})
		require.Len(t, keywords, 2)
		assert.Equal(t, "K1", keywords[0].ID)
		assert.Equal(t, "first", keywords[0].Text)
		assert.Equal(t, "second", keywords[1].Text)
	})

	t.Run("scalar wrapped as single keyword", func(t *testing.T) {
		keywords := NormalizeKeywords("presentations")
		require.Len(t, keywords, 1)
		assert.Equal(t, models.Keyword{ID: "K1", Text: "presentations"}, keywords[0])
	})

	t.Run("nil yields nothing", func(t *testing.T) {
		assert.Nil(t, NormalizeKeywords(nil))
	})
}
