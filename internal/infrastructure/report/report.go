// Package report writes a JSON-lines diagnostics file with one entry per
// query, keeping apart the reasons a rate could not be found.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"slcsp/internal/domain/entity"
	"slcsp/pkg/contextx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type entry struct {
	RunID    string   `json:"run_id,omitempty"`
	ZipCode  string   `json:"zipcode"`
	RateArea string   `json:"rate_area,omitempty"`
	Rate     *float64 `json:"rate"`
	Reason   string   `json:"reason,omitempty"`
}

func newEntry(runID contextx.RunID, r entity.Result) entry {
	e := entry{
		RunID:    runID.String(),
		ZipCode:  r.ZipCode,
		RateArea: r.RateArea.String(),
		Reason:   string(r.Reason),
	}
	if r.Found {
		rate := r.Rate
		e.Rate = &rate
	}
	return e
}

// Encode writes one JSON object per result.
func Encode(w io.Writer, runID contextx.RunID, results []entity.Result) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	for _, r := range results {
		if err := enc.Encode(newEntry(runID, r)); err != nil {
			return fmt.Errorf("json.Encode: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}

// WriteFile replaces path with the report.
func WriteFile(path string, runID contextx.RunID, results []entity.Result) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}

	if err := Encode(fh, runID, results); err != nil {
		_ = fh.Close()
		return err
	}

	if err := fh.Close(); err != nil {
		return fmt.Errorf("fh.Close: %w", err)
	}

	return nil
}
