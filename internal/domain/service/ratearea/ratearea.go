// Package ratearea builds the zip code to rate area lookup.
package ratearea

import (
	"slcsp/internal/domain"
	"slcsp/internal/domain/entity"
)

const source = "rate area table"

// Table maps a zip code to the single rate area it belongs to.
// It is read-only after Build and safe for concurrent use.
type Table struct {
	zips      map[string]entity.RateAreaKey
	ambiguous map[string]struct{}
}

// Build deduplicates rows on (zip, rate area) and drops every zip code that
// still points at more than one rate area afterwards.
func Build(rows []entity.RateAreaRow) (*Table, error) {
	zips := make(map[string]entity.RateAreaKey, len(rows))
	ambiguous := make(map[string]struct{})

	for _, row := range rows {
		if err := domain.ValidateRow(source, row.Line, row); err != nil {
			return nil, err
		}

		if _, ok := ambiguous[row.ZipCode]; ok {
			continue
		}

		key := row.Key()

		existing, ok := zips[row.ZipCode]
		switch {
		case !ok:
			zips[row.ZipCode] = key
		case existing != key:
			delete(zips, row.ZipCode)
			ambiguous[row.ZipCode] = struct{}{}
		}
	}

	return &Table{zips: zips, ambiguous: ambiguous}, nil
}

// Lookup returns the rate area of zip. Unknown and ambiguous zips both miss.
func (t *Table) Lookup(zip string) (entity.RateAreaKey, bool) {
	key, ok := t.zips[zip]
	return key, ok
}

// IsAmbiguous reports whether zip was dropped for spanning several rate areas.
func (t *Table) IsAmbiguous(zip string) bool {
	_, ok := t.ambiguous[zip]
	return ok
}

func (t *Table) Len() int {
	return len(t.zips)
}

func (t *Table) AmbiguousCount() int {
	return len(t.ambiguous)
}
