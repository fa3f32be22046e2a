// Package resolver joins the zip and rate tables for a single query.
package resolver

import (
	"strconv"

	"slcsp/internal/domain/entity"
	"slcsp/pkg/errcodes"
)

type ZipTable interface {
	Lookup(zip string) (entity.RateAreaKey, bool)
	IsAmbiguous(zip string) bool
}

type RateTable interface {
	Lookup(key entity.RateAreaKey) (float64, bool)
	HasSilver(key entity.RateAreaKey) bool
}

type Resolver struct {
	zips  ZipTable
	rates RateTable
}

func New(zips ZipTable, rates RateTable) *Resolver {
	return &Resolver{
		zips:  zips,
		rates: rates,
	}
}

// Resolve never fails: a missing rate is reported through Found and Reason.
func (r *Resolver) Resolve(zip string) entity.Result {
	result := entity.Result{ZipCode: zip}

	key, ok := r.zips.Lookup(zip)
	if !ok {
		result.Reason = errcodes.UnknownZip
		if r.zips.IsAmbiguous(zip) {
			result.Reason = errcodes.AmbiguousZip
		}
		return result
	}
	result.RateArea = key

	rate, ok := r.rates.Lookup(key)
	if !ok {
		result.Reason = errcodes.NoSecondSilverRate
		if !r.rates.HasSilver(key) {
			result.Reason = errcodes.UnknownRateArea
		}
		return result
	}

	result.Rate = rate
	result.Found = true

	return result
}

// Format renders "<zip>,<rate>" with two decimals, or "<zip>," when there is
// no rate.
func Format(zip string, rate float64, found bool) string {
	if !found {
		return zip + ","
	}
	return zip + "," + strconv.FormatFloat(rate, 'f', 2, 64)
}

// Line renders a resolved query as an output line.
func Line(r entity.Result) string {
	return Format(r.ZipCode, r.Rate, r.Found)
}
