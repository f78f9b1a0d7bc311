package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

type Repository struct {
	db *sql.DB
}

func NewRepository() *Repository {
	return &Repository{
		db: GetDB(),
	}
}

// input record operations

func (r *Repository) SaveRecord(key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", key, err)
	}

	query := `
		INSERT INTO input_records (record_key, payload, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (record_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = CURRENT_TIMESTAMP`

	_, err = r.db.Exec(query, key, string(data))
	return err
}

func (r *Repository) GetRecord(key string) (any, error) {
	var raw string
	err := r.db.QueryRow(
		`SELECT payload FROM input_records WHERE record_key = $1`, key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("failed to decode %s record: %w", key, err)
	}
	return v, nil
}

// Lookup satisfies inputs.RecordSource; lookup failures degrade to a miss
// so generation can fall back to built-in defaults.
func (r *Repository) Lookup(key string) (any, bool) {
	v, err := r.GetRecord(key)
	if err != nil || v == nil {
		return nil, false
	}
	return v, true
}

// plan run operations

func (r *Repository) SaveRun(run models.PlanRun) error {
	details, err := json.Marshal(run.Details)
	if err != nil {
		return fmt.Errorf("failed to encode run details: %w", err)
	}

	query := `
		INSERT INTO plan_runs (id, week_start, posts_count, comments_count, score, details)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.Exec(query,
		run.ID, run.WeekStart, run.PostsCount, run.CommentsCount, run.Score, string(details))
	return err
}

func (r *Repository) RecentRuns(limit int) ([]models.PlanRun, error) {
	query := `
		SELECT id, week_start, posts_count, comments_count, score, details, created_at
		FROM plan_runs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.PlanRun
	for rows.Next() {
		var run models.PlanRun
		var details sql.NullString

		err := rows.Scan(&run.ID, &run.WeekStart, &run.PostsCount,
			&run.CommentsCount, &run.Score, &details, &run.CreatedAt)
		if err != nil {
			continue
		}

		if details.Valid {
			json.Unmarshal([]byte(details.String), &run.Details)
		}

		runs = append(runs, run)
	}

	return runs, nil
}

func (r *Repository) GetRunCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM plan_runs").Scan(&count)
	return count, err
}
