// Package spreadsheet turns uploaded roster files into raw cell grids.
// Only the first sheet of a workbook is read, by convention.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
	"github.com/xuri/excelize/v2"
)

type Reader interface {
	Read(file io.Reader, filename string) (roster.RawGrid, error)
}

type readerImpl struct{}

func NewReader() Reader {
	return &readerImpl{}
}

func (rd *readerImpl) Read(file io.Reader, filename string) (roster.RawGrid, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(file)
	case ".csv":
		return readCSV(file)
	default:
		return nil, fmt.Errorf("%w: %q", roster.ErrUnsupportedFileType, filename)
	}
}

func readWorkbook(file io.Reader) (roster.RawGrid, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", roster.ErrMalformedGrid)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return roster.RawGrid(rows), nil
}

func readCSV(file io.Reader) (roster.RawGrid, error) {
	r := csv.NewReader(file)
	r.FieldsPerRecord = -1 // roster exports are ragged

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return roster.RawGrid(rows), nil
}
