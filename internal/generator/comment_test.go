package generator

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/inputs"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

func testCommentGenerator(seed int64) *CommentGenerator {
	company := models.Company{Name: "Slideforge"}
	personas := inputs.DefaultPersonas()
	for i := range personas {
		personas[i].Voice = inputs.AssignVoice(personas[i].Background)
	}
	return NewCommentGenerator(company, personas, inputs.DefaultKeywords(),
		rand.New(rand.NewSource(seed)))
}

func fixturePosts() []models.Post {
	ts := time.Date(2026, 9, 8, 14, 30, 0, 0, time.UTC)
	return []models.Post{
		{PostID: "P1", Subreddit: "r/PowerPoint", Timestamp: ts, KeywordIDs: []string{"K1", "K2"}},
		{PostID: "P2", Subreddit: "r/Canva", Timestamp: ts.Add(2 * time.Hour), KeywordIDs: []string{"K3"}},
		{PostID: "P3", Subreddit: "r/AItools", Timestamp: ts.Add(26 * time.Hour), KeywordIDs: []string{"KX"}},
	}
}

func TestCommentsCoverEveryPost(t *testing.T) {
	g := testCommentGenerator(42)
	posts := fixturePosts()

	comments := g.Generate(posts)
	require.NotEmpty(t, comments)

	perPost := make(map[string]int)
	for _, c := range comments {
		perPost[c.PostID]++
	}
	for _, p := range posts {
		count := perPost[p.PostID]
		assert.GreaterOrEqual(t, count, g.MinPerPost, "post %s", p.PostID)
		assert.LessOrEqual(t, count, g.MaxPerPost, "post %s", p.PostID)
	}
}

func TestCommentParentsResolveWithinThread(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := testCommentGenerator(seed)
		comments := g.Generate(fixturePosts())

		byID := make(map[string]models.Comment)
		for _, c := range comments {
			byID[c.CommentID] = c
		}

		for _, c := range comments {
			if c.ParentCommentID == "" {
				continue
			}
			parent, ok := byID[c.ParentCommentID]
			require.True(t, ok, "orphan parent %s (seed %d)", c.ParentCommentID, seed)
			assert.Equal(t, c.PostID, parent.PostID, "cross-post parent (seed %d)", seed)
		}
	}
}

func TestCommentTimestampsAfterPost(t *testing.T) {
	g := testCommentGenerator(7)
	posts := fixturePosts()

	postTimes := make(map[string]time.Time)
	for _, p := range posts {
		postTimes[p.PostID] = p.Timestamp
	}

	for _, c := range g.Generate(posts) {
		assert.True(t, c.Timestamp.After(postTimes[c.PostID]),
			"comment %s not after its post", c.CommentID)
	}
}

func TestCommentAuthorsAreKnownPersonas(t *testing.T) {
	g := testCommentGenerator(3)

	known := make(map[string]bool)
	for _, p := range g.Personas {
		known[p.Username] = true
	}

	for _, c := range g.Generate(fixturePosts()) {
		assert.True(t, known[c.Username], "unknown author %s", c.Username)
	}
}

func TestCommentIDsGloballySequential(t *testing.T) {
	g := testCommentGenerator(5)
	comments := g.Generate(fixturePosts())

	for i, c := range comments {
		assert.Equal(t, "C"+strconv.Itoa(i+1), c.CommentID)
	}
}

func TestPinnedCommentCount(t *testing.T) {
	g := testCommentGenerator(1)
	g.MinPerPost = 3
	g.MaxPerPost = 3

	comments := g.Generate(fixturePosts())
	assert.Len(t, comments, 9)
}

func TestUnresolvableKeywordFallsBack(t *testing.T) {
	g := testCommentGenerator(2)
	g.Keywords = nil

	post := models.Post{PostID: "P1", Timestamp: time.Now(), KeywordIDs: nil}
	texts := postKeywordTexts(post, map[string]string{})
	assert.Equal(t, []string{"this"}, texts)

	// ids that resolve to nothing fall back to the raw id
	post.KeywordIDs = []string{"K9"}
	texts = postKeywordTexts(post, map[string]string{})
	assert.Equal(t, []string{"K9"}, texts)
}

func TestNoEmptyPersonasNoComments(t *testing.T) {
	g := testCommentGenerator(1)
	g.Personas = nil
	assert.Nil(t, g.Generate(fixturePosts()))
}
