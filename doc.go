// Package cryptfolio provides the types and functions behind the `cryptfolio`
// command-line tool: a live, terminal based view of a cryptocurrency portfolio.
//
// The core pipeline is:
//   - Portfolio Loading: a JSON file maps asset tickers to the amount held
//     (see LoadHoldings).
//   - Catalog Resolution: each holding is joined once against a market catalog
//     to get its display name (see ResolveHoldings). Holdings that are not
//     listed are kept aside as Unmatched and never displayed.
//   - Enrichment: every cycle, holdings are joined against fresh quotes to
//     compute their value and the display strings (see Enrich).
//   - Sorting: rows are ordered by market capitalisation (see SortByMarketCap).
//   - Watching: a Watcher drives the fetch, enrich, sort and display sequence
//     on a fixed interval and hands every Cycle to a Display.
//
// Remote services are reached through small interfaces (Catalog, PriceFeed) so
// that the coinmarketcap and cryptocompare packages can be swapped in tests.
package cryptfolio

// Version of the cryptfolio tool, printed in the banner.
const Version = "0.0.3"
