package thumbnail

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format tags the source document type. The set is closed: supported
// formats are a product decision, not something adapters self-register.
type Format string

const (
	FormatSpreadsheet Format = "spreadsheet"
	FormatWord        Format = "word"
	FormatPDF         Format = "pdf"
	FormatText        Format = "text"
	FormatImage       Format = "image"
)

var formatByExt = map[string]Format{
	".xlsx": FormatSpreadsheet,
	".docx": FormatWord,
	".pdf":  FormatPDF,
	".txt":  FormatText,
	".png":  FormatImage,
	".jpeg": FormatImage,
	".jpg":  FormatImage,
}

// FormatForName derives the format tag from the file name's extension,
// case-insensitively. Content is never sniffed. An extension outside the
// supported set yields ErrUnsupportedFormat naming the extension.
func FormatForName(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	format, ok := formatByExt[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return format, nil
}
