package cryptfolio

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
)

// Listing is an asset known by the market catalog.
type Listing struct {
	Symbol string // ticker, e.g. "BTC"
	Name   string // canonical display name, e.g. "Bitcoin"
}

// Catalog lists all the assets known to a market.
type Catalog interface {
	Listings(ctx context.Context) ([]Listing, error)
}

// CatalogEntry is a holding resolved against the catalog.
type CatalogEntry struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Resolution is the outcome of joining holdings against the catalog.
type Resolution struct {
	Entries   []CatalogEntry // in portfolio order
	Unmatched []Holding      // holdings the catalog does not list
}

// ResolveHoldings fetches the catalog listings once and matches holdings against them.
func ResolveHoldings(ctx context.Context, cat Catalog, holdings []Holding) (Resolution, error) {
	listings, err := cat.Listings(ctx)
	if err != nil {
		return Resolution{}, err
	}
	res := MatchHoldings(holdings, listings)
	for _, h := range res.Unmatched {
		log.Printf("%s is not listed in the catalog, skipping it", h.Symbol)
	}
	return res, nil
}

// MatchHoldings joins holdings with listings by ticker.
//
// When the catalog lists the same ticker more than once, the first listing wins.
func MatchHoldings(holdings []Holding, listings []Listing) Resolution {
	names := make(map[string]string, len(listings))
	for _, l := range listings {
		if _, exists := names[l.Symbol]; !exists {
			names[l.Symbol] = l.Name
		}
	}

	var res Resolution
	for _, h := range holdings {
		name, ok := names[h.Symbol]
		if !ok {
			res.Unmatched = append(res.Unmatched, h)
			continue
		}
		res.Entries = append(res.Entries, CatalogEntry{Symbol: h.Symbol, Name: name, Amount: h.Amount})
	}
	return res
}
