package entity

// RateAreaKey is the canonical rate area name, e.g. "AK-1".
type RateAreaKey string

// NewRateAreaKey joins state and rate area code. Both stay text so leading
// zeros survive.
func NewRateAreaKey(state, rateArea string) RateAreaKey {
	return RateAreaKey(state + "-" + rateArea)
}

func (k RateAreaKey) String() string {
	return string(k)
}

// RateAreaRow is one record of the zip to rate area reference table.
type RateAreaRow struct {
	Line       int    `json:"-"`
	ZipCode    string `json:"zipcode" validate:"required"`
	State      string `json:"state" validate:"required"`
	CountyCode string `json:"county_code"`
	RateArea   string `json:"rate_area" validate:"required"`
}

func (r RateAreaRow) Key() RateAreaKey {
	return NewRateAreaKey(r.State, r.RateArea)
}
