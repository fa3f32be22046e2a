package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"slcsp/internal/domain/entity"
	"slcsp/internal/domain/service/ratearea"
	"slcsp/internal/domain/service/resolver"
	"slcsp/internal/domain/service/slcsp"
	"slcsp/pkg/errcodes"
)

func newResolver(t *testing.T) *resolver.Resolver {
	t.Helper()
	rq := require.New(t)

	zips, err := ratearea.Build([]entity.RateAreaRow{
		{Line: 2, ZipCode: "36749", State: "AL", CountyCode: "01001", RateArea: "11"},
		{Line: 3, ZipCode: "36703", State: "AL", CountyCode: "01047", RateArea: "11"},
		{Line: 4, ZipCode: "84409", State: "UT", CountyCode: "49057", RateArea: "2"},
		{Line: 5, ZipCode: "84409", State: "UT", CountyCode: "49003", RateArea: "1"},
		{Line: 6, ZipCode: "32003", State: "FL", CountyCode: "12019", RateArea: "60"},
		{Line: 7, ZipCode: "60601", State: "IL", CountyCode: "17031", RateArea: "5"},
	})
	rq.NoError(err)

	rates, err := slcsp.Build([]entity.PlanRow{
		{Line: 2, State: "AL", RateArea: "11", MetalLevel: "Silver", Rate: 305.00},
		{Line: 3, State: "AL", RateArea: "11", MetalLevel: "Silver", Rate: 300.62},
		{Line: 4, State: "AL", RateArea: "11", MetalLevel: "Silver", Rate: 312.00},
		{Line: 5, State: "FL", RateArea: "60", MetalLevel: "Silver", Rate: 290.05},
		{Line: 6, State: "IL", RateArea: "5", MetalLevel: "Gold", Rate: 350.00},
	})
	rq.NoError(err)

	return resolver.New(zips, rates)
}

func TestResolve(t *testing.T) {
	rq := require.New(t)
	r := newResolver(t)

	testCases := []struct {
		name   string
		zip    string
		want   entity.Result
		output string
	}{
		{
			name:   "Found",
			zip:    "36749",
			want:   entity.Result{ZipCode: "36749", RateArea: "AL-11", Rate: 305.00, Found: true},
			output: "36749,305.00",
		},
		{
			name:   "Found via other county",
			zip:    "36703",
			want:   entity.Result{ZipCode: "36703", RateArea: "AL-11", Rate: 305.00, Found: true},
			output: "36703,305.00",
		},
		{
			name:   "Unknown zip",
			zip:    "00000",
			want:   entity.Result{ZipCode: "00000", Reason: errcodes.UnknownZip},
			output: "00000,",
		},
		{
			name:   "Ambiguous zip",
			zip:    "84409",
			want:   entity.Result{ZipCode: "84409", Reason: errcodes.AmbiguousZip},
			output: "84409,",
		},
		{
			name:   "Single Silver plan",
			zip:    "32003",
			want:   entity.Result{ZipCode: "32003", RateArea: "FL-60", Reason: errcodes.NoSecondSilverRate},
			output: "32003,",
		},
		{
			name:   "No Silver plan",
			zip:    "60601",
			want:   entity.Result{ZipCode: "60601", RateArea: "IL-5", Reason: errcodes.UnknownRateArea},
			output: "60601,",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got := r.Resolve(tc.zip)
			rq.Equal(tc.want, got)
			rq.Equal(tc.output, resolver.Line(got))
		})
	}
}

func TestFormat(t *testing.T) {
	rq := require.New(t)

	rq.Equal("01234,100.19", resolver.Format("01234", 100.19, true))
	rq.Equal("12345,123.46", resolver.Format("12345", 123.45678, true))
	rq.Equal("12345,123.40", resolver.Format("12345", 123.4, true))
	rq.Equal("54321,", resolver.Format("54321", 0, false))
	rq.Equal("54321,", resolver.Format("54321", 245.2, false))
	rq.Equal("54321,0.00", resolver.Format("54321", 0, true))
}
