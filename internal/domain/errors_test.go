package domain_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"slcsp/internal/domain"
	"slcsp/pkg/errcodes"
)

func TestInputNotFoundError(t *testing.T) {
	rq := require.New(t)

	err := fmt.Errorf("read plans: %w", domain.NewInputNotFoundError("data/plans.csv", fs.ErrNotExist))

	rq.True(domain.IsAppError(err))
	rq.True(domain.HasCode(err, errcodes.InputNotFound))
	rq.ErrorIs(err, fs.ErrNotExist)
	rq.EqualError(err, `read plans: input "data/plans.csv" not found: file does not exist`)
}

func TestMalformedInputError(t *testing.T) {
	rq := require.New(t)

	rq.EqualError(domain.NewMalformedInputError("plan catalog", 12, "missing rate"), "plan catalog: line 12: missing rate")
	rq.EqualError(domain.NewMalformedInputError("plan catalog", 0, "empty file"), "plan catalog: header: empty file")

	code, ok := domain.GetCode(domain.NewMalformedInputError("query list", 3, "x"))
	rq.True(ok)
	rq.Equal(errcodes.MalformedInput, code)
}

func TestGetCodePlainError(t *testing.T) {
	rq := require.New(t)

	_, ok := domain.GetCode(errors.New("plain"))
	rq.False(ok)
	rq.False(domain.IsAppError(errors.New("plain")))
	rq.False(domain.HasCode(nil, errcodes.MalformedInput))
}

func TestValidateRow(t *testing.T) {
	rq := require.New(t)

	type row struct {
		ZipCode string  `json:"zipcode" validate:"required"`
		State   string  `json:"state" validate:"required"`
		Rate    float64 `validate:"gte=0"`
	}

	rq.NoError(domain.ValidateRow("test", 2, row{ZipCode: "01234", State: "MA"}))

	err := domain.ValidateRow("test", 5, row{Rate: -1})
	rq.EqualError(err, "test: line 5: missing zipcode; missing state; Rate must be >= 0, got -1")
	rq.True(domain.HasCode(err, errcodes.MalformedInput))
}
