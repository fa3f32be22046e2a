// Package slcsp builds the rate area to second-lowest-cost Silver plan lookup.
//
// Rates are ranked densely: equal rates share a rank and the next distinct
// rate takes the following rank. Two Silver plans tied at the lowest price
// therefore both hold rank 1 and the area needs a strictly higher third
// price to get an entry.
package slcsp

import (
	"slcsp/internal/domain"
	"slcsp/internal/domain/entity"
)

const source = "plan catalog"

// lowestTwo tracks the two lowest distinct rates seen for a rate area.
type lowestTwo struct {
	first, second float64
	distinct      int
}

func (l *lowestTwo) add(rate float64) {
	switch {
	case l.distinct == 0:
		l.first = rate
		l.distinct = 1
	case rate == l.first:
		// ties share rank 1
	case rate < l.first:
		l.second = l.first
		l.first = rate
		l.distinct = min(l.distinct+1, 2)
	case l.distinct == 1 || rate < l.second:
		l.second = rate
		l.distinct = 2
	}
}

// Table maps a rate area to its second-lowest distinct Silver rate.
// It is read-only after Build and safe for concurrent use.
type Table struct {
	rates  map[entity.RateAreaKey]float64
	silver map[entity.RateAreaKey]struct{}
}

// Build ranks Silver rates per rate area and keeps rank 2. Areas with fewer
// than two distinct Silver rates get no entry.
func Build(rows []entity.PlanRow) (*Table, error) {
	groups := make(map[entity.RateAreaKey]*lowestTwo)

	for _, row := range rows {
		if err := domain.ValidateRow(source, row.Line, row); err != nil {
			return nil, err
		}

		if !row.IsSilver() {
			continue
		}

		key := row.Key()

		acc, ok := groups[key]
		if !ok {
			acc = &lowestTwo{}
			groups[key] = acc
		}
		acc.add(row.Rate)
	}

	t := &Table{
		rates:  make(map[entity.RateAreaKey]float64, len(groups)),
		silver: make(map[entity.RateAreaKey]struct{}, len(groups)),
	}

	for key, acc := range groups {
		t.silver[key] = struct{}{}
		if acc.distinct == 2 {
			t.rates[key] = acc.second
		}
	}

	return t, nil
}

// Lookup returns the second-lowest Silver rate of a rate area.
func (t *Table) Lookup(key entity.RateAreaKey) (float64, bool) {
	rate, ok := t.rates[key]
	return rate, ok
}

// HasSilver reports whether the rate area offers any Silver plan at all.
func (t *Table) HasSilver(key entity.RateAreaKey) bool {
	_, ok := t.silver[key]
	return ok
}

func (t *Table) Len() int {
	return len(t.rates)
}
