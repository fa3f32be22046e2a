package persistence

import (
	"context"

	"slcsp/internal/domain"
	"slcsp/internal/domain/entity"
	"slcsp/pkg/lox"
)

const querySource = "query list"

// QueryRepository reads the query list. Only the first column is used, the
// header is skipped whatever its names are.
type QueryRepository struct {
	path string
}

func NewQueryRepository(path string) *QueryRepository {
	return &QueryRepository{path: path}
}

func (r *QueryRepository) List(ctx context.Context) ([]entity.Query, error) {
	f, err := readCSV(ctx, r.path, querySource)
	if err != nil {
		return nil, err
	}

	return lox.MapErr(f.records, func(rec csvRecord, _ int) (entity.Query, error) {
		q := toQuery(rec)
		if err := domain.ValidateRow(querySource, q.Line, q); err != nil {
			return entity.Query{}, err
		}
		return q, nil
	})
}
