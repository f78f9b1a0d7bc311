package models

import (
	"strings"
	"time"
)

// TimeLayout is the minute-precision layout used for display and CSV export.
const TimeLayout = "2006-01-02 15:04"

type Company struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Subreddits      []string `json:"subreddits"`
	NumPostsPerWeek int      `json:"num_posts_per_week"`
}

type Tone string

const (
	ToneHelpful    Tone = "helpful"
	ToneSupportive Tone = "supportive"
	TonePractical  Tone = "practical"
	ToneNeutral    Tone = "neutral"
)

// Voice is the derived speaking style applied to a persona's text.
type Voice struct {
	Tone  Tone   `json:"tone"`
	Brief bool   `json:"brief"`
	Quirk string `json:"quirk"`
}

type Persona struct {
	Username   string `json:"username"`
	Background string `json:"background"`
	Voice      Voice  `json:"voice"`
}

type Keyword struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Post struct {
	PostID         string    `json:"post_id"`
	Subreddit      string    `json:"subreddit"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	AuthorUsername string    `json:"author_username"`
	Timestamp      time.Time `json:"timestamp"`
	KeywordIDs     []string  `json:"keyword_ids"`
}

// KeywordIDList renders the keyword ids the way they are stored and exported.
func (p *Post) KeywordIDList() string {
	return strings.Join(p.KeywordIDs, ", ")
}

type Comment struct {
	CommentID       string    `json:"comment_id"`
	PostID          string    `json:"post_id"`
	ParentCommentID string    `json:"parent_comment_id,omitempty"`
	CommentText     string    `json:"comment_text"`
	Username        string    `json:"username"`
	Timestamp       time.Time `json:"timestamp"`
}
