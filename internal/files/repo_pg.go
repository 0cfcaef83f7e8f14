package files

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new file record and returns it with the assigned id.
func (r *PGRepo) Create(ctx context.Context, f File) (File, error) {
	const query = `
INSERT INTO files (
    file_name,
    file_type,
    storage_key,
    thumbnail_key,
    extracted_text_key,
    uploaded_at,
    number_of_downloads
) VALUES ($1, $2, $3, $4, $5, $6, 0)
RETURNING id`

	var thumbnailKey sql.NullString
	if f.ThumbnailKey != "" {
		thumbnailKey = sql.NullString{String: f.ThumbnailKey, Valid: true}
	}
	var extractedKey sql.NullString
	if f.ExtractedTextKey != "" {
		extractedKey = sql.NullString{String: f.ExtractedTextKey, Valid: true}
	}

	err := r.DB.QueryRowContext(
		ctx,
		query,
		f.FileName,
		f.FileType,
		f.StorageKey,
		thumbnailKey,
		extractedKey,
		f.UploadedAt,
	).Scan(&f.ID)
	if err != nil {
		return File{}, err
	}
	f.Downloads = 0
	return f, nil
}

// GetByID fetches one file record.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (File, error) {
	const query = `
SELECT id, file_name, file_type, storage_key, thumbnail_key, extracted_text_key, uploaded_at, number_of_downloads
FROM files
WHERE id = $1`

	f, err := scanFile(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return File{}, ErrNotFound
		}
		return File{}, err
	}
	return f, nil
}

// List returns all file records, newest first.
func (r *PGRepo) List(ctx context.Context) ([]File, error) {
	const query = `
SELECT id, file_name, file_type, storage_key, thumbnail_key, extracted_text_key, uploaded_at, number_of_downloads
FROM files
ORDER BY uploaded_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []File
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// IncrementDownloads bumps the download counter.
func (r *PGRepo) IncrementDownloads(ctx context.Context, id int64) error {
	const query = `
UPDATE files
SET number_of_downloads = number_of_downloads + 1
WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFile(row rowScanner) (File, error) {
	var f File
	var thumbnailKey sql.NullString
	var extractedKey sql.NullString
	err := row.Scan(
		&f.ID,
		&f.FileName,
		&f.FileType,
		&f.StorageKey,
		&thumbnailKey,
		&extractedKey,
		&f.UploadedAt,
		&f.Downloads,
	)
	if err != nil {
		return File{}, err
	}
	if thumbnailKey.Valid {
		f.ThumbnailKey = thumbnailKey.String
	}
	if extractedKey.Valid {
		f.ExtractedTextKey = extractedKey.String
	}
	return f, nil
}

var _ Repo = (*PGRepo)(nil)
