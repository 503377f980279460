package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

var sampleTable = Table{
	Title:   "Commission Report",
	Headers: []string{"College", "Currency", "Paid", "Commission"},
	Rows: [][]string{
		{"Harbour Institute", "AUD", "1200.00", "180.00"},
		{"Southbank College", "AUD", "800.00", "100.00"},
	},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTable); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "College,Currency,Paid,Commission\n" +
		"Harbour Institute,AUD,1200.00,180.00\n" +
		"Southbank College,AUD,800.00,100.00\n"
	if buf.String() != want {
		t.Errorf("unexpected csv output:\n%s", buf.String())
	}
}

func TestWriteCSVQuotesSeparators(t *testing.T) {
	var buf bytes.Buffer
	table := Table{
		Headers: []string{"Name"},
		Rows:    [][]string{{"Institute, The"}},
	}
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "Name\n\"Institute, The\"\n"
	if buf.String() != want {
		t.Errorf("expected embedded comma to be quoted, got:\n%s", buf.String())
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleTable); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet != "Commission Report" {
		t.Errorf("expected sheet name Commission Report, got %q", sheet)
	}

	header, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatalf("failed to read cell: %v", err)
	}
	if header != "College" {
		t.Errorf("expected A1 to be College, got %q", header)
	}

	cell, err := f.GetCellValue(sheet, "D3")
	if err != nil {
		t.Fatalf("failed to read cell: %v", err)
	}
	if cell != "100.00" {
		t.Errorf("expected D3 to be 100.00, got %q", cell)
	}
}

func TestWriteXLSXLongTitleTruncated(t *testing.T) {
	var buf bytes.Buffer
	table := Table{
		Title:   "A very long report title that exceeds the sheet name limit",
		Headers: []string{"X"},
	}
	if err := WriteXLSX(&buf, table); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if len(sheet) > 31 {
		t.Errorf("sheet name %q exceeds 31 characters", sheet)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleTable); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}

	out := buf.Bytes()
	if len(out) == 0 {
		t.Fatal("expected pdf output")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("expected output to start with %%PDF, got %q", out[:8])
	}
}
