package cryptfolio

import (
	"context"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// Quote is one price feed record, in the requested currency.
type Quote struct {
	FromSymbol   string          `json:"from_symbol"` // identifier reported by the feed
	Price        decimal.Decimal `json:"price"`
	ChangePct24h decimal.Decimal `json:"change_pct_24h"`
	MarketCap    decimal.Decimal `json:"market_cap"`
}

// PriceFeed fetches quotes for a set of assets.
type PriceFeed interface {
	Quotes(ctx context.Context, entries []CatalogEntry, cur Currency) ([]Quote, error)
}

// Row is the display-ready representation of one holding for a cycle.
type Row struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Amount    string `json:"amount"`
	Value     string `json:"value"`
	Change    string `json:"change"`
	MarketCap string `json:"market_cap"`

	// Numbers the strings were formatted from.
	Worth decimal.Decimal `json:"-"` // amount × price
	Quote Quote           `json:"-"`
}

var (
	up   = color.New(color.FgGreen)
	down = color.New(color.FgRed)
)

// Enrich joins every entry with its quote and formats a Row for it.
//
// A quote matches an entry when its FromSymbol is either the entry ticker or
// its display name. Entries without a quote are returned in missing.
func Enrich(entries []CatalogEntry, quotes []Quote, cur Currency) (rows []Row, missing []CatalogEntry) {
	for _, e := range entries {
		q, ok := findQuote(quotes, e)
		if !ok {
			missing = append(missing, e)
			continue
		}
		worth := e.Amount.Mul(q.Price)
		rows = append(rows, Row{
			Symbol:    e.Symbol,
			Name:      e.Name,
			Price:     cur.Format(q.Price),
			Amount:    FormatAmount(e.Amount),
			Value:     cur.Format(worth),
			Change:    FormatChange(q.ChangePct24h),
			MarketCap: cur.FormatWhole(q.MarketCap),
			Worth:     worth,
			Quote:     q,
		})
	}
	return rows, missing
}

func findQuote(quotes []Quote, e CatalogEntry) (Quote, bool) {
	for _, q := range quotes {
		if q.FromSymbol == e.Symbol || q.FromSymbol == e.Name {
			return q, true
		}
	}
	return Quote{}, false
}

// FormatAmount renders small amounts (below 1) with 4 decimals and the others with 2.
func FormatAmount(amount decimal.Decimal) string {
	if amount.Abs().LessThan(decimal.NewFromInt(1)) {
		return amount.StringFixed(4)
	}
	return amount.StringFixed(2)
}

// FormatChange renders a percentage change with 2 decimals: red when negative,
// green and padded with a space otherwise.
func FormatChange(pct decimal.Decimal) string {
	s := pct.StringFixed(2) + "%"
	if strings.Contains(s, "-") {
		return down.Sprint(s)
	}
	return up.Sprint(" " + s)
}

// CalculateTotal sums the value of all rows.
func CalculateTotal(rows []Row) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Worth)
	}
	return total
}

// FormatTotal renders a total with exactly 2 decimals.
func FormatTotal(total decimal.Decimal) string { return total.StringFixed(2) }
