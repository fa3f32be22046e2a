package entity

import "git.appkode.ru/pub/go/failure"

// Query is one zip code of the query list.
type Query struct {
	Line    int    `json:"-"`
	ZipCode string `json:"zipcode" validate:"required"`
}

// Result is the resolution of a single query.
type Result struct {
	ZipCode  string
	RateArea RateAreaKey // empty when the zip is unknown or ambiguous
	Rate     float64
	Found    bool

	// Reason tells why no rate was found; empty when Found.
	Reason failure.ErrorCode
}
