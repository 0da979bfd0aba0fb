package whale

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// coingeckoBase is the public CoinGecko API.
const coingeckoBase = "https://api.coingecko.com/api/v3"

// TopAssetsCount is how many assets the market listing fetches.
const TopAssetsCount = 20

/*
	[
	    {
	        "id": "bitcoin",
	        "symbol": "btc",
	        "name": "Bitcoin",
	        "current_price": 64023,
	        "market_cap_rank": 1,
	        ...
	    },
*/

// TopAssets fetches the top crypto assets by market capitalization, priced
// in the reference currency. Responses go through the daily disk cache, so
// at most one real fetch hits the API per day.
func TopAssets(ctx context.Context) ([]PriceQuote, error) {
	q := url.Values{}
	q.Set("vs_currency", strings.ToLower(ReferenceCurrency))
	q.Set("order", "market_cap_desc")
	q.Set("per_page", fmt.Sprint(TopAssetsCount))
	q.Set("page", "1")
	addr := coingeckoBase + "/coins/markets?" + q.Encode()

	var rows []struct {
		Symbol       string  `json:"symbol"`
		Name         string  `json:"name"`
		CurrentPrice float64 `json:"current_price"`
		Rank         int     `json:"market_cap_rank"`
	}
	if err := jwget(ctx, daily(), addr, &rows); err != nil {
		return nil, fmt.Errorf("cannot fetch market listing: %w", err)
	}

	quotes := make([]PriceQuote, 0, len(rows))
	for _, row := range rows {
		quotes = append(quotes, PriceQuote{
			Symbol:       NormalizeSymbol(row.Symbol),
			Name:         row.Name,
			CurrentPrice: USD(row.CurrentPrice),
			Rank:         row.Rank,
		})
	}
	return quotes, nil
}

// SpotPrice fetches the current price of a single asset by its CoinGecko
// id (e.g. "bitcoin"), bypassing the market listing. The response is a
// nested object keyed by id and currency, picked apart with jsonpath.
func SpotPrice(ctx context.Context, id string) (Money, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	addr := coingeckoBase + "/simple/price?ids=" + url.QueryEscape(id) + "&vs_currencies=" + strings.ToLower(ReferenceCurrency)

	var jobj any
	if err := jwget(ctx, daily(), addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("cannot fetch price for %q: %w", id, err)
	}

	path := fmt.Sprintf("$[%q].%s", id, strings.ToLower(ReferenceCurrency))
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error parsing price for %q: %q %w", id, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("error parsing price for %q: %q not a number: %v", id, path, jval)
	}
	return USD(val), nil
}
