package persistence

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"slcsp/internal/domain"
	"slcsp/internal/domain/entity"
)

// Column names of the input files.
const (
	colZipCode    = "zipcode"
	colState      = "state"
	colCountyCode = "county_code"
	colRateArea   = "rate_area"
	colPlanID     = "plan_id"
	colMetalLevel = "metal_level"
	colRate       = "rate"
)

func toRateAreaRow(f *csvFile, rec csvRecord) entity.RateAreaRow {
	return entity.RateAreaRow{
		Line:       rec.line,
		ZipCode:    f.get(rec, colZipCode),
		State:      f.get(rec, colState),
		CountyCode: f.get(rec, colCountyCode),
		RateArea:   f.get(rec, colRateArea),
	}
}

// toPlanRow parses the rate; every other field stays text.
func toPlanRow(f *csvFile, rec csvRecord) (entity.PlanRow, error) {
	raw := f.get(rec, colRate)
	if raw == "" {
		return entity.PlanRow{}, domain.NewMalformedInputError(f.source, rec.line, "missing rate")
	}

	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return entity.PlanRow{}, domain.NewMalformedInputError(f.source, rec.line, fmt.Sprintf("invalid rate %q", raw))
	}

	return entity.PlanRow{
		Line:       rec.line,
		PlanID:     f.get(rec, colPlanID),
		State:      f.get(rec, colState),
		RateArea:   f.get(rec, colRateArea),
		MetalLevel: f.get(rec, colMetalLevel),
		Rate:       rate,
	}, nil
}

func toQuery(rec csvRecord) entity.Query {
	q := entity.Query{Line: rec.line}
	if len(rec.fields) > 0 {
		q.ZipCode = strings.TrimSpace(rec.fields[0])
	}
	return q
}
