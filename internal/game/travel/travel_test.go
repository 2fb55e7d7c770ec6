package travel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Dimillian/daggerfall-unity/internal/game/travel"
)

const day = 1440

func estimator(t *testing.T) *travel.Estimator {
	t.Helper()
	e, err := travel.NewEstimator(travel.DefaultMultipliers())
	require.NoError(t, err)
	return e
}

func TestQuote(t *testing.T) {
	cases := []struct {
		name string
		trip travel.TripParameters
		want travel.Quote
	}{
		{
			name: "one day on foot at inns",
			trip: travel.TripParameters{LandMinutes: day, Cautious: true, SleepAtInn: true, OnFoot: true},
			want: travel.Quote{Inn: 5, Total: 5},
		},
		{
			name: "short trip still pays for one night",
			trip: travel.TripParameters{LandMinutes: 100, Cautious: true, SleepAtInn: true, OnFoot: true},
			want: travel.Quote{Inn: 5, Total: 5},
		},
		{
			name: "ten cautious days",
			trip: travel.TripParameters{LandMinutes: 10 * day, Cautious: true, SleepAtInn: true, OnFoot: true},
			want: travel.Quote{Inn: 50, Total: 50},
		},
		{
			name: "reckless trip is discounted against the cautious price",
			trip: travel.TripParameters{LandMinutes: 10 * day, SleepAtInn: true, OnFoot: true},
			want: travel.Quote{Inn: 100, RecklessDiscount: 50, Total: 50},
		},
		{
			name: "camping is free",
			trip: travel.TripParameters{LandMinutes: 10 * day, Cautious: true, OnFoot: true},
			want: travel.Quote{},
		},
		{
			name: "ship crossing pays for inns on land and the passage",
			trip: travel.TripParameters{LandMinutes: 2 * day, WaterMinutes: 4 * day, Cautious: true, SleepAtInn: true},
			want: travel.Quote{Inn: 10, Ship: 100, Total: 110},
		},
		{
			name: "short passage costs the minimum fare",
			trip: travel.TripParameters{LandMinutes: 2 * day, WaterMinutes: 60, Cautious: true},
			want: travel.Quote{Ship: 25, Total: 25},
		},
		{
			name: "crossing water on foot subtracts ship days from inn nights",
			trip: travel.TripParameters{LandMinutes: 2 * day, WaterMinutes: 4 * day, Cautious: true, SleepAtInn: true, OnFoot: true},
			want: travel.Quote{Inn: 25, Total: 25},
		},
		{
			name: "water only by ship books no inn",
			trip: travel.TripParameters{WaterMinutes: 3 * day, Cautious: true, SleepAtInn: true},
			want: travel.Quote{Ship: 75, Total: 75},
		},
	}
	e := estimator(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.Quote(tc.trip))
			assert.Equal(t, tc.want.Total, e.CalculateTripCost(tc.trip))
		})
	}
}

func TestCalculateTripCost_MatchesEstimator(t *testing.T) {
	got := travel.CalculateTripCost(2*day, 4*day, true, true, false, travel.DefaultCautiousMultiplier, travel.DefaultShipMultiplier)
	assert.Equal(t, 110, got)
}

func TestCalculateTripCost_CustomMultiplier(t *testing.T) {
	e, err := travel.NewEstimator(travel.Multipliers{Cautious: 3, Ship: 0.5})
	require.NoError(t, err)
	// 4 reckless days are 12 cautious days
	q := e.Quote(travel.TripParameters{LandMinutes: 4 * day, SleepAtInn: true, OnFoot: true})
	assert.Equal(t, travel.Quote{Inn: 60, RecklessDiscount: 40, Total: 20}, q)
}

func TestNewEstimator_RejectsBadMultipliers(t *testing.T) {
	_, err := travel.NewEstimator(travel.Multipliers{Cautious: 0, Ship: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cautious multiplier")
	assert.Contains(t, err.Error(), "ship multiplier")
}

func TestQuote_Properties(t *testing.T) {
	e := estimator(t)
	rapid.Check(t, func(rt *rapid.T) {
		p := travel.TripParameters{
			LandMinutes:  float64(rapid.IntRange(0, 60*day).Draw(rt, "land")),
			WaterMinutes: float64(rapid.IntRange(0, 30*day).Draw(rt, "water")),
			Cautious:     rapid.Bool().Draw(rt, "cautious"),
			SleepAtInn:   rapid.Bool().Draw(rt, "inn"),
			OnFoot:       rapid.Bool().Draw(rt, "foot"),
		}
		q := e.Quote(p)
		assert.Equal(rt, q, e.Quote(p), "pure function")
		assert.GreaterOrEqual(rt, q.Total, 0)
		assert.GreaterOrEqual(rt, q.RecklessDiscount, 0)
		assert.Equal(rt, q.Inn-q.RecklessDiscount+q.Ship, q.Total)
		if !p.SleepAtInn {
			assert.Zero(rt, q.Inn)
		}
		if p.OnFoot {
			assert.Zero(rt, q.Ship)
		}
	})
}
