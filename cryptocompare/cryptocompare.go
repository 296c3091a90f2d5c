// Package cryptocompare implements the price feed and the rate-limit report
// on top of the min-api.cryptocompare.com public API.
package cryptocompare

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/etnz/cryptfolio"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the root of the public cryptocompare API.
const DefaultBaseURL = "https://min-api.cryptocompare.com"

// EnvAPIKey names the environment variable holding an optional API key.
const EnvAPIKey = "CRYPTOCOMPARE_API_KEY"

// Client queries cryptocompare.com.
type Client struct {
	BaseURL string
	APIKey  string // optional, raises the rate limits
	HTTP    *http.Client
}

// NewClient returns a Client on the public API, using the API key from the
// environment if any.
func NewClient() *Client {
	return &Client{BaseURL: DefaultBaseURL, APIKey: os.Getenv(EnvAPIKey), HTTP: cryptfolio.NewTracingClient()}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

// get performs the GET of path with query, and decodes the JSON answer into data.
// The returned address is the one to report in errors: it never holds the API key.
func (c *Client) get(ctx context.Context, path string, query url.Values, data any) (addr string, err error) {
	addr = c.BaseURL + path
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}
	full := addr
	if c.APIKey != "" {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("api_key", c.APIKey)
		full = c.BaseURL + path + "?" + q.Encode()
	}
	return addr, cryptfolio.GetJSON(ctx, c.httpClient(), full, data)
}

// Quotes fetches the current price, 24h change and market cap of every entry in cur.
func (c *Client) Quotes(ctx context.Context, entries []cryptfolio.CatalogEntry, cur cryptfolio.Currency) ([]cryptfolio.Quote, error) {
	// https://min-api.cryptocompare.com/data/pricemultifull?fsyms=BTC,ETH&tsyms=USD
	// {
	//   "RAW": {
	//     "BTC": {
	//       "USD": {
	//         "FROMSYMBOL": "BTC",
	//         "TOSYMBOL": "USD",
	//         "PRICE": 7512.27,
	//         "CHANGEPCT24HOUR": -1.8023,
	//         "MKTCAP": 127874327374.58,
	//         ...
	//   "DISPLAY": {...}
	// }
	// or on error, still with a 200:
	// {"Response": "Error", "Message": "There is no data for any of the toSymbols XYZ .", ...}
	if len(entries) == 0 {
		return nil, nil
	}
	symbols := make([]string, 0, len(entries))
	for _, e := range entries {
		symbols = append(symbols, e.Symbol)
	}
	query := url.Values{}
	query.Set("fsyms", strings.Join(symbols, ","))
	query.Set("tsyms", cur.Code)

	type Info struct {
		FromSymbol      string          `json:"FROMSYMBOL"`
		Price           decimal.Decimal `json:"PRICE"`
		ChangePct24Hour decimal.Decimal `json:"CHANGEPCT24HOUR"`
		MktCap          decimal.Decimal `json:"MKTCAP"`
	}
	// that's the payload
	var content struct {
		Response string                     `json:"Response"`
		Message  string                     `json:"Message"`
		Raw      map[string]map[string]Info `json:"RAW"`
	}

	addr, err := c.get(ctx, "/data/pricemultifull", query, &content)
	if err != nil {
		return nil, &cryptfolio.APIError{Op: "price", URL: addr, Err: err}
	}
	if content.Response == "Error" {
		return nil, &cryptfolio.APIError{Op: "price", URL: addr, Err: errors.New(content.Message)}
	}

	quotes := make([]cryptfolio.Quote, 0, len(content.Raw))
	for _, byCurrency := range content.Raw {
		info, ok := byCurrency[cur.Code]
		if !ok {
			continue
		}
		quotes = append(quotes, cryptfolio.Quote{
			FromSymbol:   info.FromSymbol,
			Price:        info.Price,
			ChangePct24h: info.ChangePct24Hour,
			MarketCap:    info.MktCap,
		})
	}
	slices.SortFunc(quotes, func(a, b cryptfolio.Quote) int { return strings.Compare(a.FromSymbol, b.FromSymbol) })
	return quotes, nil
}
