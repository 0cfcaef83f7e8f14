package thumbnail

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestUsedRange(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want [][]string
		ok   bool
	}{
		{
			name: "empty sheet",
			rows: nil,
			ok:   false,
		},
		{
			name: "only blank cells",
			rows: [][]string{{"", ""}, {""}},
			ok:   false,
		},
		{
			name: "values from origin",
			rows: [][]string{{"a", "b"}, {"c", "d"}},
			want: [][]string{{"a", "b"}, {"c", "d"}},
			ok:   true,
		},
		{
			name: "offset block",
			rows: [][]string{
				{},
				{"", "b2", "c2", "d2"},
				{"", "b3", "", "d3"},
				{"", "b4", "c4", "d4"},
			},
			want: [][]string{
				{"b2", "c2", "d2"},
				{"b3", "", "d3"},
				{"b4", "c4", "d4"},
			},
			ok: true,
		},
		{
			name: "ragged rows",
			rows: [][]string{{"", "", "c1"}, {"a2"}},
			want: [][]string{{"", "", "c1"}, {"a2", "", ""}},
			ok:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := usedRange(tc.rows)
			if ok != tc.ok {
				t.Fatalf("usedRange ok = %v, want %v", ok, tc.ok)
			}
			if tc.ok && !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("usedRange = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGenerateSpreadsheet(t *testing.T) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	for _, cell := range []struct {
		ref string
		val string
	}{
		{"B2", "name"}, {"C2", "qty"}, {"D2", "price"},
		{"B3", "bolt"}, {"C3", "12"}, {"D3", "0.40"},
		{"B4", "nut"}, {"C4", "30"}, {"D4", "0.15"},
	} {
		if err := wb.SetCellValue(sheet, cell.ref, cell.val); err != nil {
			t.Fatalf("set %s: %v", cell.ref, err)
		}
	}
	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	g := New(DefaultSpec())
	img, err := g.Generate("inventory.xlsx", &buf)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	assertSize(t, img, g.Spec().Width, g.Spec().Height)
}

func TestGenerateSpreadsheetEmptySheet(t *testing.T) {
	var buf bytes.Buffer
	if err := excelize.NewFile().Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	g := New(DefaultSpec())
	_, err := g.Generate("blank.xlsx", &buf)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode for empty sheet, got %v", err)
	}
}

func TestGenerateSpreadsheetBadData(t *testing.T) {
	g := New(DefaultSpec())

	_, err := g.Generate("broken.xlsx", strings.NewReader("this is not a zip archive"))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}
