package persistence

import (
	"context"

	"slcsp/internal/domain/entity"
	"slcsp/pkg/lox"
)

const rateAreaSource = "rate area table"

// RateAreaRepository reads the zip to rate area reference table.
type RateAreaRepository struct {
	path string
}

func NewRateAreaRepository(path string) *RateAreaRepository {
	return &RateAreaRepository{path: path}
}

func (r *RateAreaRepository) List(ctx context.Context) ([]entity.RateAreaRow, error) {
	f, err := readCSV(ctx, r.path, rateAreaSource, colZipCode, colState, colCountyCode, colRateArea)
	if err != nil {
		return nil, err
	}

	return lox.Map(f.records, func(rec csvRecord) entity.RateAreaRow {
		return toRateAreaRow(f, rec)
	}), nil
}
