package services

import "testing"

func TestRoundHalfUp1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{4.5, 4.5},
		{4.45, 4.5},
		{4.44, 4.4},
		{4.0, 4.0},
		{3.333333, 3.3},
		{3.666666, 3.7},
		{4.25, 4.3},
		{5.0, 5.0},
	}
	for _, tt := range tests {
		if got := RoundHalfUp1(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAggregateRates(t *testing.T) {
	tests := []struct {
		name      string
		rates     []int
		wantAvg   float64
		wantCount int
	}{
		{"single rating", []int{4}, 4.0, 1},
		{"two ratings", []int{4, 5}, 4.5, 2},
		{"updated rating drops old value", []int{3, 5}, 4.0, 2},
		{"repeating third", []int{3, 3, 5}, 3.7, 3},
		{"all fives", []int{5, 5, 5, 5}, 5.0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, count := aggregateRates(tt.rates)
			if avg == nil {
				t.Fatal("aggregateRates() avg = nil, want value")
			}
			if *avg != tt.wantAvg || count != tt.wantCount {
				t.Errorf("aggregateRates(%v) = (%v, %d), want (%v, %d)",
					tt.rates, *avg, count, tt.wantAvg, tt.wantCount)
			}
		})
	}
}

func TestAggregateRatesEmpty(t *testing.T) {
	avg, count := aggregateRates(nil)
	if avg != nil {
		t.Errorf("aggregateRates(nil) avg = %v, want nil", *avg)
	}
	if count != 0 {
		t.Errorf("aggregateRates(nil) count = %d, want 0", count)
	}
}

func TestAggregateRatesIdempotent(t *testing.T) {
	rates := []int{4, 5, 3, 5, 2}
	avg1, count1 := aggregateRates(rates)
	avg2, count2 := aggregateRates(rates)
	if *avg1 != *avg2 || count1 != count2 {
		t.Errorf("recomputing the same rates gave (%v, %d) then (%v, %d)",
			*avg1, count1, *avg2, count2)
	}
}
