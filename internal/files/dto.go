package files

import "time"

// FileResponse is the outward-facing representation of a file record.
type FileResponse struct {
	ID           int64     `json:"id"`
	FileName     string    `json:"fileName"`
	FileType     string    `json:"fileType"`
	UploadedAt   time.Time `json:"uploadedAt"`
	Downloads    int64     `json:"numberOfDownloads"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
}

func toResponse(f File) FileResponse {
	return FileResponse{
		ID:         f.ID,
		FileName:   f.FileName,
		FileType:   f.FileType,
		UploadedAt: f.UploadedAt,
		Downloads:  f.Downloads,
	}
}

func toListedResponse(l ListedFile) FileResponse {
	resp := toResponse(l.File)
	resp.ThumbnailURL = l.ThumbnailURL
	return resp
}
