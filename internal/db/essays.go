package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/essay-grader/internal/types"
)

// DefaultListLimit caps list queries when no limit is given.
const DefaultListLimit = 50

// MaxListLimit is the largest accepted list limit.
const MaxListLimit = 500

// EssayAnalysis is a stored analysis.
type EssayAnalysis struct {
	ID              uuid.UUID          `json:"id"`
	StudentName     string             `json:"student_name"`
	ClassName       string             `json:"class_name"`
	Theme           string             `json:"theme"`
	Title           string             `json:"title,omitempty"`
	TotalScore      int                `json:"total_score"`
	Report          *types.EssayReport `json:"report,omitempty"`
	TeacherComments string             `json:"teacher_comments,omitempty"`
	ArchivePath     string             `json:"archive_path,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// ListFilters holds optional filters for ListAnalyses.
type ListFilters struct {
	ClassName string
	Limit     int
}

// SaveAnalysis inserts or replaces an analysis keyed by its report ID.
func (db *DB) SaveAnalysis(ctx context.Context, a *EssayAnalysis) error {
	if a.Report == nil {
		return fmt.Errorf("analysis has no report")
	}
	if a.ID == uuid.Nil {
		a.ID = a.Report.ID
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	reportJSON, err := json.Marshal(a.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO essay_analyses (id, student_name, class_name, theme, title, total_score, report, teacher_comments, archive_path)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		   student_name = $2, class_name = $3, theme = $4, title = $5, total_score = $6,
		   report = $7, teacher_comments = $8, archive_path = $9
		 RETURNING created_at`,
		a.ID, a.StudentName, a.ClassName, a.Theme, a.Title, a.Report.Score.Total,
		reportJSON, a.TeacherComments, a.ArchivePath,
	).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	a.TotalScore = a.Report.Score.Total
	return nil
}

// GetAnalysis returns the analysis with the given ID, or nil when absent.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*EssayAnalysis, error) {
	var a EssayAnalysis
	var reportJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, student_name, class_name, theme, title, total_score, report, teacher_comments, archive_path, created_at
		 FROM essay_analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.StudentName, &a.ClassName, &a.Theme, &a.Title, &a.TotalScore,
		&reportJSON, &a.TeacherComments, &a.ArchivePath, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	a.Report = &types.EssayReport{}
	if err := json.Unmarshal(reportJSON, a.Report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &a, nil
}

// ListAnalyses returns summaries, newest first. Reports are not loaded.
func (db *DB) ListAnalyses(ctx context.Context, filters ListFilters) ([]EssayAnalysis, error) {
	query, args := buildListQuery(filters)
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	out := []EssayAnalysis{}
	for rows.Next() {
		var a EssayAnalysis
		if err := rows.Scan(&a.ID, &a.StudentName, &a.ClassName, &a.Theme, &a.Title, &a.TotalScore, &a.ArchivePath, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return out, nil
}

func buildListQuery(filters ListFilters) (string, []any) {
	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	query := `SELECT id, student_name, class_name, theme, title, total_score, archive_path, created_at
		FROM essay_analyses WHERE 1=1`
	args := []any{}
	if filters.ClassName != "" {
		args = append(args, filters.ClassName)
		query += fmt.Sprintf(" AND class_name = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	return query, args
}
