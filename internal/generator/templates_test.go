package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	t.Run("exact match", func(t *testing.T) {
		ts := r.Lookup("r/PowerPoint")
		assert.Equal(t, "practical", ts.CommentStyle)
	})

	t.Run("case-insensitive substring match", func(t *testing.T) {
		ts := r.Lookup("r/powerpoint_tips")
		assert.Equal(t, "practical", ts.CommentStyle)

		ts = r.Lookup("r/CanvaDesigners")
		assert.Equal(t, "designer", ts.CommentStyle)
	})

	t.Run("unknown community falls back to generic", func(t *testing.T) {
		ts := r.Lookup("r/smallbusiness")
		assert.Equal(t, "neutral", ts.CommentStyle)
		assert.Contains(t, ts.Titles[0], "{")
	})
}

func TestRenderTemplate(t *testing.T) {
	out := renderTemplate("Anyone tried {company} for {kw}?", "Slideforge", "pitch decks")
	assert.Equal(t, "Anyone tried Slideforge for pitch decks?", out)

	assert.True(t, hasPlaceholder("{kw} tools"))
	assert.False(t, hasPlaceholder("Best AI Presentation Maker?"))
}
