package model

import (
	"testing"
	"time"
)

func series(prices ...float64) PriceSeries {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	s := make(PriceSeries, len(prices))
	for i, p := range prices {
		s[i] = PricePoint{Time: base.Add(time.Duration(i) * time.Hour), Price: p}
	}
	return s
}

func TestMaxMin(t *testing.T) {
	s := series(2400, 2600, 2300)
	max, ok := s.Max()
	if !ok || max.Price != 2600 || !max.Time.Equal(s[1].Time) {
		t.Fatalf("max = %+v, ok = %v", max, ok)
	}
	min, ok := s.Min()
	if !ok || min.Price != 2300 || !min.Time.Equal(s[2].Time) {
		t.Fatalf("min = %+v, ok = %v", min, ok)
	}
}

func TestMaxMinFirstOccurrenceOnTie(t *testing.T) {
	s := series(2500, 2600, 2600, 2500)
	max, _ := s.Max()
	if !max.Time.Equal(s[1].Time) {
		t.Errorf("expected first max occurrence at index 1, got %v", max.Time)
	}
	min, _ := s.Min()
	if !min.Time.Equal(s[0].Time) {
		t.Errorf("expected first min occurrence at index 0, got %v", min.Time)
	}
}

func TestMaxMinEmpty(t *testing.T) {
	var s PriceSeries
	if _, ok := s.Max(); ok {
		t.Error("Max on empty series should report !ok")
	}
	if _, ok := s.Min(); ok {
		t.Error("Min on empty series should report !ok")
	}
}
