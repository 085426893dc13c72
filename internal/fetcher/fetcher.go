package fetcher

import (
	"time"

	"github.com/MrRicesun777/PriceOfEth/internal/model"
)

// Fetcher defines the interface for fetching exchange rates.
type Fetcher interface {
	// FetchSpotPrice returns the current price in USD and EUR.
	FetchSpotPrice() (usd, eur float64, err error)
	// FetchHistory returns the trailing price series for the given window,
	// ordered by time ascending. A non-success upstream response yields an
	// empty series.
	FetchHistory(days int, currency string) (model.PriceSeries, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	USD     float64
	EUR     float64
	History model.PriceSeries
	Err     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSpotPrice() (float64, float64, error) {
	return m.USD, m.EUR, m.Err
}

func (m *MockFetcher) FetchHistory(days int, _ string) (model.PriceSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.History != nil {
		return m.History, nil
	}
	return generateMockSeries(m.EUR, days), nil
}

func generateMockSeries(basePrice float64, days int) model.PriceSeries {
	count := days * 4
	series := make(model.PriceSeries, count)
	for i := 0; i < count; i++ {
		series[i] = model.PricePoint{
			Time:  time.Now().Add(-time.Duration(count-i) * 6 * time.Hour),
			Price: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return series
}
