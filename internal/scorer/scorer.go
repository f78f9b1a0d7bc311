package scorer

import (
	"math"
	"strings"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

// Penalty points deducted from the 100-point base per defect.
const (
	duplicatePairPenalty   = 12
	orphanCommentPenalty   = 6
	personaMismatchPenalty = 4
	repeatedTextPenalty    = 2
	repeatedTextCap        = 20
)

// Diagnostics is the defect breakdown accompanying a score.
type Diagnostics struct {
	DuplicatePairs   int `json:"duplicate_pairs"`
	OrphanComments   int `json:"orphan_comments"`
	PersonaMismatch  int `json:"persona_mismatch"`
	RepeatedComments int `json:"repeated_comments"`
}

// Counts returns the diagnostics as named counters.
func (d Diagnostics) Counts() map[string]int {
	return map[string]int{
		"duplicate_pairs":   d.DuplicatePairs,
		"orphan_comments":   d.OrphanComments,
		"persona_mismatch":  d.PersonaMismatch,
		"repeated_comments": d.RepeatedComments,
	}
}

// Score rates a generated calendar on a 0–10 scale with one decimal place.
// It is advisory only; it never blocks generation or export.
//
// The duplicate-pair check is order dependent: the first occurrence of a
// (subreddit, keyword set) pair is free, later repeats are penalized.
func Score(posts []models.Post, comments []models.Comment, personas []models.Persona) (float64, Diagnostics) {
	base := 100.0
	var d Diagnostics

	seenPairs := make(map[string]bool)
	for i := range posts {
		pair := strings.ToLower(posts[i].Subreddit) + "|" + posts[i].KeywordIDList()
		if seenPairs[pair] {
			base -= duplicatePairPenalty
			d.DuplicatePairs++
		}
		seenPairs[pair] = true
	}

	knownUsernames := make(map[string]bool, len(personas))
	for _, p := range personas {
		if p.Username != "" {
			knownUsernames[p.Username] = true
		}
	}

	commentIDs := make(map[string]bool, len(comments))
	for i := range comments {
		commentIDs[comments[i].CommentID] = true
	}

	for i := range comments {
		if parent := comments[i].ParentCommentID; parent != "" && !commentIDs[parent] {
			base -= orphanCommentPenalty
			d.OrphanComments++
		}
		if !knownUsernames[comments[i].Username] {
			base -= personaMismatchPenalty
			d.PersonaMismatch++
		}
	}

	seenTexts := make(map[string]bool, len(comments))
	duplicates := 0
	for i := range comments {
		if seenTexts[comments[i].CommentText] {
			duplicates++
		}
		seenTexts[comments[i].CommentText] = true
	}
	if duplicates > 0 {
		d.RepeatedComments = duplicates
		base -= math.Min(repeatedTextCap, float64(duplicates*repeatedTextPenalty))
	}

	score := math.Round(base) / 10
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	return score, d
}
