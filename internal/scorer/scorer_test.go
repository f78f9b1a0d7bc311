package scorer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

var testPersonas = []models.Persona{
	{Username: "alice"},
	{Username: "bob"},
}

func cleanCalendar() ([]models.Post, []models.Comment) {
	ts := time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)
	posts := []models.Post{
		{PostID: "P1", Subreddit: "r/PowerPoint", KeywordIDs: []string{"K1", "K2"}, Timestamp: ts},
		{PostID: "P2", Subreddit: "r/Canva", KeywordIDs: []string{"K1", "K3"}, Timestamp: ts},
	}
	comments := []models.Comment{
		{CommentID: "C1", PostID: "P1", CommentText: "first take", Username: "alice", Timestamp: ts.Add(time.Hour)},
		{CommentID: "C2", PostID: "P1", ParentCommentID: "C1", CommentText: "second take", Username: "bob", Timestamp: ts.Add(2 * time.Hour)},
		{CommentID: "C3", PostID: "P2", CommentText: "third take", Username: "alice", Timestamp: ts.Add(3 * time.Hour)},
	}
	return posts, comments
}

func TestPerfectCalendarScoresTen(t *testing.T) {
	posts, comments := cleanCalendar()

	score, d := Score(posts, comments, testPersonas)
	assert.Equal(t, 10.0, score)
	assert.Equal(t, Diagnostics{}, d)
}

func TestDuplicatePairPenalized(t *testing.T) {
	posts, comments := cleanCalendar()
	dup := posts[0]
	dup.PostID = "P3"
	dup.Subreddit = "R/POWERPOINT" // case-insensitive pair match
	posts = append(posts, dup)

	score, d := Score(posts, comments, testPersonas)
	assert.Equal(t, 1, d.DuplicatePairs)
	assert.Equal(t, 8.8, score)
}

func TestOrphanCommentPenalized(t *testing.T) {
	posts, comments := cleanCalendar()
	comments[1].ParentCommentID = "C99"

	score, d := Score(posts, comments, testPersonas)
	assert.Equal(t, 1, d.OrphanComments)
	assert.Equal(t, 9.4, score)
}

func TestPersonaMismatchPenalized(t *testing.T) {
	posts, comments := cleanCalendar()
	comments[2].Username = "stranger"

	score, d := Score(posts, comments, testPersonas)
	assert.Equal(t, 1, d.PersonaMismatch)
	assert.Equal(t, 9.6, score)
}

func TestRepeatedTextsPenalizedWithCap(t *testing.T) {
	posts, comments := cleanCalendar()
	comments[1].CommentText = comments[0].CommentText

	score, d := Score(posts, comments, testPersonas)
	assert.Equal(t, 1, d.RepeatedComments)
	assert.Equal(t, 9.8, score)

	// pile on duplicates until the cap binds
	ts := comments[0].Timestamp
	for i := 0; i < 20; i++ {
		comments = append(comments, models.Comment{
			CommentID:   "CX" + string(rune('a'+i)),
			PostID:      "P1",
			CommentText: comments[0].CommentText,
			Username:    "alice",
			Timestamp:   ts,
		})
	}
	_, d = Score(posts, comments, testPersonas)
	assert.Equal(t, 21, d.RepeatedComments)

	score, _ = Score(posts, comments, testPersonas)
	assert.Equal(t, 8.0, score, "repeated-text penalty capped at 20 points")
}

func TestScoreMonotonicInDefects(t *testing.T) {
	posts, comments := cleanCalendar()
	base, _ := Score(posts, comments, testPersonas)

	prev := base
	for i := 0; i < 3; i++ {
		dup := posts[0]
		dup.PostID = "PD" + string(rune('1'+i))
		posts = append(posts, dup)

		score, d := Score(posts, comments, testPersonas)
		assert.Equal(t, i+1, d.DuplicatePairs)
		assert.LessOrEqual(t, score, prev)
		prev = score
	}
}

func TestScoreClampedAtZero(t *testing.T) {
	posts, _ := cleanCalendar()
	var comments []models.Comment
	ts := time.Now()
	for i := 0; i < 30; i++ {
		comments = append(comments, models.Comment{
			CommentID:       "C" + string(rune('a'+i)),
			PostID:          "P1",
			ParentCommentID: "missing",
			CommentText:     "spam",
			Username:        "nobody",
			Timestamp:       ts,
		})
	}

	score, _ := Score(posts, comments, testPersonas)
	assert.Equal(t, 0.0, score)
}

func TestEmptyCalendarIsPerfect(t *testing.T) {
	score, d := Score(nil, nil, testPersonas)
	assert.Equal(t, 10.0, score)
	assert.Equal(t, Diagnostics{}, d)
}
