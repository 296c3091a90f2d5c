package cryptfolio

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is a quote currency supported by the price feed.
type Currency struct {
	Code   string `json:"code"`   // ISO 4217 code, e.g. "USD"
	Symbol string `json:"symbol"` // display prefix, e.g. "$"
}

// supportedCodes are the fiat currencies the price feed can quote in.
var supportedCodes = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "HKD", "NZD",
	"SEK", "NOK", "DKK", "PLN", "CZK", "HUF", "RUB", "TRY", "ZAR", "BRL",
	"MXN", "INR", "KRW", "SGD", "TWD", "THB", "IDR", "MYR", "PHP", "ILS",
	"AED", "SAR", "CLP", "ARS", "UAH", "NGN",
}

var currencies = func() map[string]Currency {
	m := make(map[string]Currency, len(supportedCodes))
	for _, code := range supportedCodes {
		// to get a never nil currency I need to call the Money constructor
		cur := money.New(0, code).Currency()
		m[code] = Currency{Code: code, Symbol: cur.Grapheme}
	}
	return m
}()

// AuthorizeCurrency looks up code (in any case) in the supported currency table.
func AuthorizeCurrency(code string) (Currency, error) {
	c, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrCurrencyUnsupported, code)
	}
	return c, nil
}

// SupportedCurrencies returns the supported currency table in display order.
func SupportedCurrencies() []Currency {
	list := make([]Currency, 0, len(supportedCodes))
	for _, code := range supportedCodes {
		list = append(list, currencies[code])
	}
	return list
}

// formatter returns a go-money formatter that prefixes amounts with c's symbol.
func (c Currency) formatter(fraction int, thousand string) *money.Formatter {
	return money.NewFormatter(fraction, ".", thousand, c.Symbol, "$1")
}

// Format renders d with two decimals and the currency symbol, e.g. "$12.35".
func (c Currency) Format(d decimal.Decimal) string { return c.format(d, 2, "") }

// FormatWhole renders d rounded to a whole number, with thousands separators
// and the currency symbol, e.g. "$1,234,567".
func (c Currency) FormatWhole(d decimal.Decimal) string { return c.format(d, 0, ",") }

// maxMinorUnits is the largest amount, in minor units, a go-money formatter takes.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

func (c Currency) format(d decimal.Decimal, fraction int, thousand string) string {
	units := d.Shift(int32(fraction)).Round(0)
	if units.Abs().LessThan(maxMinorUnits) {
		return c.formatter(fraction, thousand).Format(units.IntPart())
	}

	// Same layout as the formatter, from the decimal digits.
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(int32(fraction)), ".")
	if thousand != "" {
		for i := len(whole) - 3; i > 0; i -= 3 {
			whole = whole[:i] + thousand + whole[i:]
		}
	}
	s := c.Symbol + whole
	if frac != "" {
		s += "." + frac
	}
	if d.IsNegative() {
		s = "-" + s
	}
	return s
}

// ParseMoney recovers the number from a string produced by Format or
// FormatWhole, by stripping the currency symbol and thousands separators.
func ParseMoney(s, symbol string) (decimal.Decimal, error) {
	if symbol != "" {
		s = strings.Replace(s, symbol, "", 1)
	}
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(strings.TrimSpace(s))
}
