package ingest

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// metadata-only sheet names commonly found in exports that were
// round-tripped through spreadsheet tools.
var skipSheets = map[string]bool{
	"info":     true,
	"metadata": true,
	"about":    true,
	"readme":   true,
	"notes":    true,
}

// ReadLines loads the raw lines of a board export. The file handle is
// released before any parsing happens, including on failure. Spreadsheet
// exports (.xlsx) are flattened back into comma-joined lines so the same
// pipeline consumes them; everything else is read as plain text.
func ReadLines(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readSpreadsheetLines(path)
	}
	return readTextLines(path)
}

func readTextLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewFileOpenError(path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, NewFileOpenError(path, err)
	}
	return lines, nil
}

func readSpreadsheetLines(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewFileOpenError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewEmptyFileError(path)
	}

	var sheetName string
	for _, sheet := range sheets {
		if !skipSheets[strings.ToLower(sheet)] {
			sheetName = sheet
			break
		}
	}
	// All sheets carry metadata names; the last one most likely holds data.
	if sheetName == "" {
		sheetName = sheets[len(sheets)-1]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, NewFileOpenError(path, err)
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return lines, nil
}
