package Ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/xuri/excelize/v2"

	"TaskBoard/Tasks"
)

const (
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEXLS  = "application/vnd.ms-excel"
)

var (
	ErrInvalidFileType      = errors.New("invalid file type")
	ErrDecodeFailure        = errors.New("failed to decode spreadsheet")
	ErrMalformedAggregation = errors.New("failed to aggregate task data")
)

var spreadsheetExtensions = []string{".xlsx", ".xls"}

// FileInfo describes an accepted upload.
type FileInfo struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	SizeText string `json:"sizeText"`
}

// Result is a loaded spreadsheet: the file it came from and the dataset
// derived from its first sheet.
type Result struct {
	File    FileInfo      `json:"file"`
	Dataset Tasks.Dataset `json:"dataset"`
}

// ValidateFile accepts a spreadsheet when any of the declared content type,
// the file extension or the sniffed content says it is xlsx or xls.
func ValidateFile(name, contentType string, head []byte) error {
	if isSpreadsheetMIME(contentType) {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range spreadsheetExtensions {
		if ext == allowed {
			return nil
		}
	}

	if len(head) > 0 {
		detected := mimetype.Detect(head)
		if detected.Is(MIMEXLSX) || detected.Is(MIMEXLS) {
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidFileType, name)
}

func isSpreadsheetMIME(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == MIMEXLSX || mediaType == MIMEXLS
}

// DecodeFirstSheet reads the first worksheet of an OOXML workbook as a grid
// of raw cell values. Legacy binary .xls workbooks cannot be read.
func DecodeFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrDecodeFailure)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", ErrDecodeFailure, sheets[0], err)
	}
	return rows, nil
}

// Load validates, decodes and normalizes an uploaded spreadsheet. Nothing is
// returned unless every stage succeeds.
func Load(name, contentType string, r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	if err := ValidateFile(name, contentType, data); err != nil {
		return Result{}, err
	}

	grid, err := DecodeFirstSheet(bytes.NewReader(data))
	if err != nil {
		return Result{}, err
	}

	dataset, err := aggregate(grid, Tasks.Normalize)
	if err != nil {
		return Result{}, err
	}
	serialDatesToISO(dataset)

	size := int64(len(data))
	return Result{
		File:    FileInfo{Name: name, Size: size, SizeText: FormatFileSize(size)},
		Dataset: dataset,
	}, nil
}

// serialDatesToISO rewrites Excel serial day numbers in date columns as
// yyyy-mm-dd text, so date cells compare in calendar order like typed ISO
// dates. Text cells are left as they are.
func serialDatesToISO(dataset Tasks.Dataset) {
	var dateFields []string
	for _, header := range dataset.Headers {
		if Tasks.IsDateField(header) {
			dateFields = append(dateFields, header)
		}
	}

	for _, task := range dataset.Tasks {
		for _, field := range dateFields {
			value := strings.TrimSpace(task[field])
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				continue
			}
			if parsed, ok := Tasks.ParseDate(value); ok {
				task[field] = parsed.Format("2006-01-02")
			}
		}
	}
}

func aggregate(grid [][]string, normalize func([][]string) (Tasks.Dataset, error)) (dataset Tasks.Dataset, err error) {
	defer func() {
		if r := recover(); r != nil {
			dataset = Tasks.Dataset{}
			err = fmt.Errorf("%w: %v", ErrMalformedAggregation, r)
		}
	}()
	return normalize(grid)
}
