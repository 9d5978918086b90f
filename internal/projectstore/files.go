package projectstore

import (
	"context"
	"fmt"
	"time"

	"slate/internal/comp"
	"slate/internal/interp"
)

// AddFile registers uploaded-file metadata. An empty id is assigned one.
func (s *Store) AddFile(ctx context.Context, file interp.FileInfo) (interp.FileInfo, error) {
	if file.ID == "" {
		file.ID = comp.NewID("file")
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO files (id, name, kind, src, size_bytes, mime_type, data_url, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		file.ID, file.Name, file.Kind, file.Src, file.SizeBytes, file.MimeType,
		file.DataURL, file.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return interp.FileInfo{}, fmt.Errorf("insert file: %w", err)
	}
	return file, nil
}

// GetAllFiles returns every registered file's metadata, payloads included.
// It satisfies the interpreter's file store collaborator; the listing
// command is responsible for stripping inline payloads before display.
func (s *Store) GetAllFiles(ctx context.Context) ([]interp.FileInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, kind, src, size_bytes, mime_type, data_url, created_at
         FROM files ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var out []interp.FileInfo
	for rows.Next() {
		var file interp.FileInfo
		var created string
		if err := rows.Scan(&file.ID, &file.Name, &file.Kind, &file.Src,
			&file.SizeBytes, &file.MimeType, &file.DataURL, &created); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		file.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, file)
	}
	return out, rows.Err()
}

// DeleteFile removes file metadata by id.
func (s *Store) DeleteFile(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM files WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no file with id %s", id)
	}
	return nil
}
