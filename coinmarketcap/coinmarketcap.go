// Package coinmarketcap implements the market catalog on top of the
// coinmarketcap.com public listings endpoint.
package coinmarketcap

import (
	"context"
	"errors"
	"net/http"

	"github.com/etnz/cryptfolio"
)

// DefaultBaseURL is the root of the public coinmarketcap API.
const DefaultBaseURL = "https://api.coinmarketcap.com/v2"

// Client lists the assets known to coinmarketcap.com.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client on the public API. Every call fetches the
// listing live.
func NewClient() *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: cryptfolio.NewTracingClient()}
}

// Listings returns every asset listed by the catalog.
func (c *Client) Listings(ctx context.Context) ([]cryptfolio.Listing, error) {
	// https://api.coinmarketcap.com/v2/listings/
	// {
	//   "data": [
	//     {
	//       "id": 1,
	//       "name": "Bitcoin",
	//       "symbol": "BTC",
	//       "website_slug": "bitcoin"
	//     },
	//   ...
	//   "metadata": {"timestamp": 1525137187, "num_cryptocurrencies": 1602, "error": null}
	// }
	addr := c.BaseURL + "/listings/"

	type Info struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Symbol      string `json:"symbol"`
		WebsiteSlug string `json:"website_slug"`
	}
	// that's the payload
	var content struct {
		Data     []Info `json:"data"`
		Metadata struct {
			Error *string `json:"error"`
		} `json:"metadata"`
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	if err := cryptfolio.GetJSON(ctx, client, addr, &content); err != nil {
		return nil, &cryptfolio.APIError{Op: "catalog", URL: addr, Err: err}
	}
	if content.Metadata.Error != nil && *content.Metadata.Error != "" {
		return nil, &cryptfolio.APIError{Op: "catalog", URL: addr, Err: errors.New(*content.Metadata.Error)}
	}

	listings := make([]cryptfolio.Listing, 0, len(content.Data))
	for _, info := range content.Data {
		listings = append(listings, cryptfolio.Listing{Symbol: info.Symbol, Name: info.Name})
	}
	return listings, nil
}
