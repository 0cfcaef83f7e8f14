package thumbnail

import "errors"

// Error categories for thumbnail generation. Adapters wrap these with
// context via fmt.Errorf("%w: ...") so callers can classify failures with
// errors.Is.
var (
	// ErrUnsupportedFormat means the file extension is outside the supported set.
	// Reported before any stream I/O happens.
	ErrUnsupportedFormat = errors.New("unsupported file type")
	// ErrDecode means the content does not match its claimed format or is
	// structurally invalid for extraction.
	ErrDecode = errors.New("decode failed")
	// ErrIO means the source stream could not be fully read.
	ErrIO = errors.New("read failed")
	// ErrRender means rasterization failed for a reason opaque to the dispatcher.
	ErrRender = errors.New("render failed")
)
