package calculator

import (
	"math"
	"testing"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		want   float64
	}{
		{name: "amount with percentage rate", amount: 100, rate: 10, want: 110},
		{name: "zero rate leaves amount unchanged", amount: 50, rate: 0, want: 50},
		{name: "zero amount", amount: 0, rate: 25, want: 0},
		{name: "fractional rate", amount: 200, rate: 7.5, want: 215},
		{name: "NaN amount treated as zero", amount: math.NaN(), rate: 10, want: 0},
		{name: "NaN rate treated as zero", amount: 80, rate: math.NaN(), want: 80},
		{name: "infinite amount treated as zero", amount: math.Inf(1), rate: 10, want: 0},
		{name: "infinite rate treated as zero", amount: 80, rate: math.Inf(-1), want: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(tt.amount, tt.rate)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Total(%v, %v) = %v, want %v", tt.amount, tt.rate, got, tt.want)
			}
		})
	}
}

func TestTotalMatchesFormula(t *testing.T) {
	// For all well-formed inputs the result must equal
	// amount + amount*(rate/100) exactly.
	for _, amount := range []float64{0, 1, 10, 99.99, 12345.67} {
		for _, rate := range []float64{0, 5, 10, 20, 33.3} {
			want := amount + amount*(rate/100)
			if got := Total(amount, rate); math.Abs(got-want) > 1e-9 {
				t.Errorf("Total(%v, %v) = %v, want %v", amount, rate, got, want)
			}
		}
	}
}
