package cryptfolio

import "slices"

// SortByMarketCap orders rows by decreasing market capitalisation, as
// displayed: caps are compared once rounded to a whole number.
// Rows with the same market cap keep their relative order.
func SortByMarketCap(rows []Row) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		return b.Quote.MarketCap.Round(0).Cmp(a.Quote.MarketCap.Round(0))
	})
}
