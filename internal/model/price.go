package model

import "time"

// PricePoint is a single observed exchange rate.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// PriceSeries holds price points ordered by time ascending, covering a
// trailing window fetched fresh per use.
type PriceSeries []PricePoint

// Max returns the point with the highest price, keeping the first
// occurrence when several points share it.
func (s PriceSeries) Max() (PricePoint, bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	best := s[0]
	for _, p := range s[1:] {
		if p.Price > best.Price {
			best = p
		}
	}
	return best, true
}

// Min returns the point with the lowest price, keeping the first
// occurrence when several points share it.
func (s PriceSeries) Min() (PricePoint, bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	best := s[0]
	for _, p := range s[1:] {
		if p.Price < best.Price {
			best = p
		}
	}
	return best, true
}

// AlertThresholds are the fixed bounds that trigger a warning banner.
// Both bounds are exclusive: a price exactly on a bound raises no alert.
type AlertThresholds struct {
	Low  float64
	High float64
}
