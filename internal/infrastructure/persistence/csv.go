package persistence

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"slcsp/internal/domain"
)

// csvRecord is a data row together with its line in the source file.
type csvRecord struct {
	line   int
	fields []string
}

// csvFile is a fully read CSV source with a header index.
type csvFile struct {
	source  string
	columns map[string]int
	records []csvRecord
}

// readCSV loads path into memory. The header row is mandatory and must carry
// every column listed in required.
func readCSV(ctx context.Context, path, source string, required ...string) (*csvFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, domain.NewInputNotFoundError(path, err)
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewMalformedInputError(source, 0, "empty file")
	}
	if err != nil {
		return nil, parseError(source, err)
	}

	f := &csvFile{
		source:  source,
		columns: make(map[string]int, len(header)),
	}

	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := f.columns[name]; !dup {
			f.columns[name] = i
		}
	}

	for _, name := range required {
		if _, ok := f.columns[name]; !ok {
			return nil, domain.NewMalformedInputError(source, 0, fmt.Sprintf("missing column %q", name))
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseError(source, err)
		}

		line, _ := r.FieldPos(0)
		f.records = append(f.records, csvRecord{line: line, fields: fields})
	}

	return f, nil
}

// get returns the value of a named column, or "" when the row is too short.
func (f *csvFile) get(rec csvRecord, column string) string {
	i, ok := f.columns[column]
	if !ok || i >= len(rec.fields) {
		return ""
	}
	return strings.TrimSpace(rec.fields[i])
}

func parseError(source string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return domain.NewMalformedInputError(source, pe.StartLine, pe.Err.Error())
	}
	return fmt.Errorf("%s: csv.Read: %w", source, err)
}
