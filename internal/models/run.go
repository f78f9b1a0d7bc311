package models

import "time"

// PlanRun is the recorded summary of one generation run.
type PlanRun struct {
	ID            string         `json:"id"`
	WeekStart     time.Time      `json:"week_start"`
	PostsCount    int            `json:"posts_count"`
	CommentsCount int            `json:"comments_count"`
	Score         float64        `json:"score"`
	Details       map[string]int `json:"details"`
	CreatedAt     time.Time      `json:"created_at"`
}
