package persistence

import (
	"context"

	"slcsp/internal/domain/entity"
	"slcsp/pkg/lox"
)

const planSource = "plan catalog"

// PlanRepository reads the plan catalog.
type PlanRepository struct {
	path string
}

func NewPlanRepository(path string) *PlanRepository {
	return &PlanRepository{path: path}
}

func (r *PlanRepository) List(ctx context.Context) ([]entity.PlanRow, error) {
	f, err := readCSV(ctx, r.path, planSource, colState, colRateArea, colMetalLevel, colRate)
	if err != nil {
		return nil, err
	}

	return lox.MapErr(f.records, func(rec csvRecord, _ int) (entity.PlanRow, error) {
		return toPlanRow(f, rec)
	})
}
