package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

// Exporter writes a generated calendar as two CSV files, one row per post
// and one per comment. An unwritable destination is a hard failure; empty
// inputs still produce header-only files.
type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

var (
	postColumns = []string{
		"post_id", "subreddit", "title", "body",
		"author_username", "timestamp", "keyword_ids",
	}
	commentColumns = []string{
		"comment_id", "post_id", "parent_comment_id",
		"comment_text", "username", "timestamp",
	}
)

// Export writes the posts and comments files and returns their paths.
func (e *Exporter) Export(posts []models.Post, comments []models.Comment) (string, string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create export directory: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")

	postsPath := filepath.Join(e.dir, fmt.Sprintf("weekly_posts_%s.csv", stamp))
	if err := e.writePosts(postsPath, posts); err != nil {
		return "", "", err
	}

	commentsPath := filepath.Join(e.dir, fmt.Sprintf("weekly_comments_%s.csv", stamp))
	if err := e.writeComments(commentsPath, comments); err != nil {
		return "", "", err
	}

	return postsPath, commentsPath, nil
}

func (e *Exporter) writePosts(path string, posts []models.Post) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(postColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range posts {
		p := &posts[i]
		record := []string{
			p.PostID,
			p.Subreddit,
			p.Title,
			p.Body,
			p.AuthorUsername,
			p.Timestamp.Format(models.TimeLayout),
			p.KeywordIDList(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (e *Exporter) writeComments(path string, comments []models.Comment) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(commentColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range comments {
		c := &comments[i]
		record := []string{
			c.CommentID,
			c.PostID,
			c.ParentCommentID,
			c.CommentText,
			c.Username,
			c.Timestamp.Format(models.TimeLayout),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
