package files

import "time"

// File is the metadata record of one uploaded file. ThumbnailKey is set if
// and only if thumbnail generation succeeded; the original blob always
// exists once the record does (blob writes happen before the insert).
type File struct {
	ID               int64
	FileName         string
	FileType         string
	StorageKey       string
	ThumbnailKey     string
	ExtractedTextKey string
	UploadedAt       time.Time
	Downloads        int64
}
