package thumbnail

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"
)

func TestGenerateUnsupportedExtension(t *testing.T) {
	g := New(DefaultSpec())

	for _, name := range []string{"archive.zip", "video.mp4", "noext", "report.XLS", "doc.docx.bak"} {
		t.Run(name, func(t *testing.T) {
			src := &trackingReader{r: strings.NewReader("payload")}
			_, err := g.Generate(name, src)
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
			}
			if src.reads != 0 {
				t.Fatalf("expected no stream reads for unsupported extension, got %d", src.reads)
			}
		})
	}
}

func TestGenerateUnsupportedErrorNamesExtension(t *testing.T) {
	g := New(DefaultSpec())

	_, err := g.Generate("movie.mp4", strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), `".mp4"`) {
		t.Fatalf("expected error naming .mp4, got %v", err)
	}
}

func TestFormatForNameCaseInsensitive(t *testing.T) {
	cases := map[string]Format{
		"Report.XLSX": FormatSpreadsheet,
		"letter.DocX": FormatWord,
		"scan.PDF":    FormatPDF,
		"notes.TXT":   FormatText,
		"photo.JPEG":  FormatImage,
		"photo.Jpg":   FormatImage,
		"pixel.PNG":   FormatImage,
	}
	for name, want := range cases {
		got, err := FormatForName(name)
		if err != nil {
			t.Fatalf("FormatForName(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("FormatForName(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	g := New(DefaultSpec())

	for _, name := range []string{"a.xlsx", "a.docx", "a.pdf", "a.txt", "a.png"} {
		t.Run(name, func(t *testing.T) {
			_, err := g.Generate(name, bytes.NewReader(nil))
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("expected ErrDecode for empty input, got %v", err)
			}
		})
	}
}

func TestGenerateReadFailure(t *testing.T) {
	g := New(DefaultSpec())

	_, err := g.Generate("a.txt", &failingReader{})
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestGenerateTextDimensions(t *testing.T) {
	spec := Spec{Width: 160, Height: 120}
	g := New(spec)

	img, err := g.Generate("notes.txt", strings.NewReader("hello\nworld"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	assertSize(t, img, 160, 120)
}

func TestGenerateImageStretchesToBox(t *testing.T) {
	g := New(DefaultSpec())

	// A non-square source must still come out at exactly the target box.
	src := image.NewRGBA(image.Rect(0, 0, 640, 80))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	img, err := g.Generate("wide.png", &buf)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	assertSize(t, img, g.Spec().Width, g.Spec().Height)
}

func TestGenerateImageBadData(t *testing.T) {
	g := New(DefaultSpec())

	_, err := g.Generate("photo.jpg", strings.NewReader("not an image"))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestGeneratePNGEncodes(t *testing.T) {
	g := New(DefaultSpec())

	data, err := g.GeneratePNG("notes.txt", strings.NewReader("line"))
	if err != nil {
		t.Fatalf("GeneratePNG: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	assertSize(t, decoded, g.Spec().Width, g.Spec().Height)
}

func TestTextRendersExactLines(t *testing.T) {
	spec := DefaultSpec()
	g := New(spec)

	input := "one\ntwo\nthree\nfour\nfive"
	got, err := g.Generate("small.txt", strings.NewReader(input))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want, err := drawTextBlock(spec.Width, spec.Height, spec.FontSize, input)
	if err != nil {
		t.Fatalf("drawTextBlock: %v", err)
	}
	if !imagesEqual(got, want) {
		t.Fatal("5-line thumbnail differs from direct rendering of those 5 lines")
	}
}

func TestTextCapsAtMaxLines(t *testing.T) {
	spec := DefaultSpec()
	g := New(spec)

	var lines []string
	for i := 0; i < 1000; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}

	got, err := g.Generate("big.txt", strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want, err := drawTextBlock(spec.Width, spec.Height, spec.FontSize, strings.Join(lines[:spec.TextMaxLines], "\n"))
	if err != nil {
		t.Fatalf("drawTextBlock: %v", err)
	}
	if !imagesEqual(got, want) {
		t.Fatal("1000-line thumbnail differs from rendering of the first 30 lines")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 37, 91))
	for y := 0; y < 91; y++ {
		for x := 0; x < 37; x++ {
			src.Set(x, y, image.White)
		}
	}

	once := Normalize(src, 200, 200)
	twice := Normalize(once, 200, 200)
	if !imagesEqual(once, twice) {
		t.Fatal("normalizing an already-normalized image changed pixels")
	}
}

func TestNormalizeStretches(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 500, 100))
	assertSize(t, Normalize(src, 64, 64), 64, 64)
}

type trackingReader struct {
	r     io.Reader
	reads int
}

func (tr *trackingReader) Read(p []byte) (int, error) {
	tr.reads++
	return tr.r.Read(p)
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("stream truncated")
}

func assertSize(t *testing.T, img image.Image, width, height int) {
	t.Helper()
	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		t.Fatalf("got %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), width, height)
	}
}

func imagesEqual(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				return false
			}
		}
	}
	return true
}
