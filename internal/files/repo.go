package files

import "context"

// Repo defines persistence operations for file records, keyed by integer id.
type Repo interface {
	// Create inserts a new record and returns it with the assigned id.
	Create(ctx context.Context, f File) (File, error)
	GetByID(ctx context.Context, id int64) (File, error)
	// List returns all records, newest first.
	List(ctx context.Context) ([]File, error)
	// IncrementDownloads bumps the download counter for one record.
	IncrementDownloads(ctx context.Context, id int64) error
}
