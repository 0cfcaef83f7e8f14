package files

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"docnest-backend/internal/extract"
	"docnest-backend/internal/shared/storage/object"
	"docnest-backend/internal/shared/telemetry"
	"docnest-backend/internal/shared/util"
	"docnest-backend/internal/thumbnail"
)

const (
	filesPrefix      = "files"
	thumbnailsPrefix = "thumbnails"
)

// fileTypeOther tags uploads whose extension is outside the thumbnail set.
const fileTypeOther = "other"

// ListedFile pairs a file record with a freshly signed thumbnail URL.
type ListedFile struct {
	File         File
	ThumbnailURL string
}

// Service is the upload pipeline: it stores originals and thumbnails in the
// object store and records metadata. Blob writes always happen before the
// metadata insert; a crash in between leaves an orphaned blob, never a
// record without its original.
type Service struct {
	Store  object.ObjectStore
	Repo   Repo
	Thumbs *thumbnail.Generator
	// SignedURLTTL is the validity of thumbnail links issued by List.
	SignedURLTTL time.Duration
}

// Upload stores one file. Thumbnail generation is best-effort: a failure is
// logged and the record is created with an empty thumbnail key rather than
// rejecting the upload.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (File, error) {
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("read upload: %w", err)
	}

	fileType := fileTypeOther
	if format, err := thumbnail.FormatForName(fileName); err == nil {
		fileType = string(format)
	}

	id := uuid.NewString()
	storageKey := path.Join(filesPrefix, id+"_"+sanitized)

	// Thumbnail is generated before any blob write so a decode failure never
	// leaves a half-written thumbnail object behind.
	var thumbPNG []byte
	thumbKey := ""
	if png, thumbErr := s.Thumbs.GeneratePNG(fileName, bytes.NewReader(data)); thumbErr == nil {
		thumbPNG = png
		thumbKey = path.Join(thumbnailsPrefix, id+".png")
	} else if errors.Is(thumbErr, thumbnail.ErrUnsupportedFormat) {
		telemetry.Info("thumbnail.skipped", map[string]any{
			"file_name": sanitized,
			"reason":    thumbErr.Error(),
		})
	} else {
		telemetry.Warn("thumbnail.failed", map[string]any{
			"file_name": sanitized,
			"err":       thumbErr.Error(),
		})
	}

	if _, err := s.Store.Put(ctx, storageKey, detectContentType(data), bytes.NewReader(data)); err != nil {
		return File{}, fmt.Errorf("store original key=%s: %w", storageKey, err)
	}

	if thumbKey != "" {
		if _, err := s.Store.Put(ctx, thumbKey, thumbnail.ContentType, bytes.NewReader(thumbPNG)); err != nil {
			telemetry.Warn("thumbnail.store_failed", map[string]any{
				"key": thumbKey,
				"err": err.Error(),
			})
			thumbKey = ""
		}
	}

	extractedKey := s.saveExtractedText(ctx, storageKey, fileName, data)

	f := File{
		FileName:         sanitized,
		FileType:         fileType,
		StorageKey:       storageKey,
		ThumbnailKey:     thumbKey,
		ExtractedTextKey: extractedKey,
		UploadedAt:       time.Now().UTC(),
	}

	created, err := s.Repo.Create(ctx, f)
	if err != nil {
		return File{}, fmt.Errorf("create file record: %w", err)
	}
	return created, nil
}

// List returns all file records, each with a freshly signed thumbnail URL.
// Records without a thumbnail get an empty URL.
func (s *Service) List(ctx context.Context) ([]ListedFile, error) {
	records, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ListedFile, 0, len(records))
	for _, f := range records {
		listed := ListedFile{File: f}
		if f.ThumbnailKey != "" {
			url, err := s.Store.SignedURL(ctx, f.ThumbnailKey, s.signedURLTTL())
			if err != nil {
				return nil, fmt.Errorf("sign thumbnail url key=%s: %w", f.ThumbnailKey, err)
			}
			listed.ThumbnailURL = url
		}
		out = append(out, listed)
	}
	return out, nil
}

// Download opens the original blob and increments the download counter.
// The caller owns the returned reader.
func (s *Service) Download(ctx context.Context, id int64) (File, io.ReadCloser, error) {
	f, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return File{}, nil, err
	}

	rc, err := s.Store.Open(ctx, f.StorageKey)
	if err != nil {
		return File{}, nil, fmt.Errorf("open blob key=%s: %w", f.StorageKey, err)
	}

	if err := s.Repo.IncrementDownloads(ctx, id); err != nil {
		rc.Close()
		return File{}, nil, fmt.Errorf("increment downloads id=%d: %w", id, err)
	}
	f.Downloads++
	return f, rc, nil
}

// ShareURL issues a signed URL for the original file, valid for the
// requested number of minutes.
func (s *Service) ShareURL(ctx context.Context, id int64, minutes int) (string, error) {
	if minutes <= 0 {
		return "", fmt.Errorf("%w: minutes must be positive", ErrInvalidInput)
	}

	f, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	url, err := s.Store.SignedURL(ctx, f.StorageKey, time.Duration(minutes)*time.Minute)
	if err != nil {
		return "", fmt.Errorf("sign url key=%s: %w", f.StorageKey, err)
	}
	return url, nil
}

// saveExtractedText persists a derived plain-text copy for searchable
// formats. Best-effort: failures are logged, never propagated.
func (s *Service) saveExtractedText(ctx context.Context, storageKey, fileName string, data []byte) string {
	text, err := extract.ForUpload(data, fileName)
	if err != nil {
		if !errors.Is(err, extract.ErrUnsupported) {
			telemetry.Info("extract.failed", map[string]any{
				"key": storageKey,
				"err": err.Error(),
			})
		}
		return ""
	}
	if strings.TrimSpace(text) == "" {
		return ""
	}

	extractedKey := storageKey + ".extracted.txt"
	if _, err := s.Store.Put(ctx, extractedKey, "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		telemetry.Warn("extract.store_failed", map[string]any{
			"key": extractedKey,
			"err": err.Error(),
		})
		return ""
	}
	return extractedKey
}

func (s *Service) signedURLTTL() time.Duration {
	if s.SignedURLTTL > 0 {
		return s.SignedURLTTL
	}
	return 15 * time.Minute
}

func detectContentType(data []byte) string {
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}
