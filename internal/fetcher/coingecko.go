package fetcher

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/MrRicesun777/PriceOfEth/internal/model"
)

// CoinGeckoFetcher implements Fetcher using the public CoinGecko API.
type CoinGeckoFetcher struct {
	BaseURL  string
	Asset    string
	Client   *http.Client
	Location *time.Location
}

// NewCoinGeckoFetcher creates a fetcher for one asset. Historical timestamps
// are converted into loc.
func NewCoinGeckoFetcher(baseURL, asset string, loc *time.Location) *CoinGeckoFetcher {
	if loc == nil {
		loc = time.Local
	}
	return &CoinGeckoFetcher{
		BaseURL: baseURL,
		Asset:   asset,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		Location: loc,
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// FetchSpotPrice queries the simple price endpoint for USD and EUR.
// A parseable response without the expected fields is an error, not a panic;
// the caller decides whether that degrades or aborts the cycle.
func (f *CoinGeckoFetcher) FetchSpotPrice() (float64, float64, error) {
	u := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd,eur", f.BaseURL, url.QueryEscape(f.Asset))

	body, status, err := f.get(u)
	if err != nil {
		return 0, 0, err
	}
	if status != http.StatusOK {
		return 0, 0, fmt.Errorf("coingecko: spot price status %d, body: %s", status, string(body))
	}

	var payload map[string]map[string]float64
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, 0, fmt.Errorf("coingecko decode: %w", err)
	}

	quotes, ok := payload[f.Asset]
	if !ok {
		return 0, 0, fmt.Errorf("coingecko: no entry for %q in response", f.Asset)
	}
	usd, okUSD := quotes["usd"]
	eur, okEUR := quotes["eur"]
	if !okUSD || !okEUR {
		return 0, 0, fmt.Errorf("coingecko: missing usd/eur fields for %q", f.Asset)
	}
	return usd, eur, nil
}

// marketChart is the response structure of the market_chart endpoint.
// Each price entry is an [epoch_millis, price] pair.
type marketChart struct {
	Prices [][2]float64 `json:"prices"`
}

// FetchHistory queries the market chart endpoint for the trailing window.
// Any non-success status yields an empty series alongside the error so the
// caller can log it and carry on with degraded content.
func (f *CoinGeckoFetcher) FetchHistory(days int, currency string) (model.PriceSeries, error) {
	u := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=%s&days=%d",
		f.BaseURL, url.PathEscape(f.Asset), url.QueryEscape(currency), days)

	body, status, err := f.get(u)
	if err != nil {
		return model.PriceSeries{}, err
	}
	if status != http.StatusOK {
		return model.PriceSeries{}, fmt.Errorf("coingecko: market chart status %d", status)
	}

	var chart marketChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return model.PriceSeries{}, fmt.Errorf("coingecko decode: %w", err)
	}

	series := make(model.PriceSeries, 0, len(chart.Prices))
	for _, entry := range chart.Prices {
		series = append(series, model.PricePoint{
			Time:  time.UnixMilli(int64(entry[0])).In(f.Location),
			Price: entry[1],
		})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Time.Before(series[j].Time) })
	return series, nil
}

func (f *CoinGeckoFetcher) get(u string) ([]byte, int, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("coingecko read body: %w", err)
	}
	return body, resp.StatusCode, nil
}
