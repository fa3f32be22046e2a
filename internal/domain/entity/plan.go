package entity

// MetalLevelSilver is the only metal level the SLCSP computation looks at.
const MetalLevelSilver = "Silver"

// PlanRow is one record of the plan catalog.
type PlanRow struct {
	Line       int     `json:"-"`
	PlanID     string  `json:"plan_id"`
	State      string  `json:"state" validate:"required"`
	RateArea   string  `json:"rate_area" validate:"required"`
	MetalLevel string  `json:"metal_level" validate:"required"`
	Rate       float64 `json:"rate" validate:"gte=0"`
}

func (p PlanRow) Key() RateAreaKey {
	return NewRateAreaKey(p.State, p.RateArea)
}

func (p PlanRow) IsSilver() bool {
	return p.MetalLevel == MetalLevelSilver
}
