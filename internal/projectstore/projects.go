package projectstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"slate/internal/comp"
)

// ErrNoProject is returned when a project id does not resolve.
var ErrNoProject = errors.New("project not found")

// ProjectSummary is one row of a project listing.
type ProjectSummary struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateProject inserts a new project document.
func (s *Store) CreateProject(ctx context.Context, project *comp.Project) error {
	document, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		project.ID, project.Name, string(document), now, now,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetProject fetches a project document by id.
func (s *Store) GetProject(ctx context.Context, id string) (*comp.Project, error) {
	row := s.db.QueryRowContext(ctx, `SELECT document FROM projects WHERE id = ?`, id)
	var document string
	if err := row.Scan(&document); errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNoProject, id)
	} else if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	var project comp.Project
	if err := json.Unmarshal([]byte(document), &project); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", id, err)
	}
	return &project, nil
}

// SaveProject replaces a project's document after a successful command.
func (s *Store) SaveProject(ctx context.Context, project *comp.Project) error {
	document, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, document = ?, updated_at = ? WHERE id = ?`,
		project.Name, string(document), now, project.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNoProject, project.ID)
	}
	return nil
}

// DeleteProject removes a project by id.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNoProject, id)
	}
	return nil
}

// ListProjects returns all projects ordered by most recent update.
func (s *Store) ListProjects(ctx context.Context) ([]ProjectSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM projects ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []ProjectSummary
	for rows.Next() {
		var summary ProjectSummary
		var created, updated string
		if err := rows.Scan(&summary.ID, &summary.Name, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		summary.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		summary.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
		out = append(out, summary)
	}
	return out, rows.Err()
}
