package cryptfolio

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAuthorizeCurrency(t *testing.T) {
	for _, c := range SupportedCurrencies() {
		for _, code := range []string{c.Code, strings.ToLower(c.Code), " " + c.Code + " "} {
			got, err := AuthorizeCurrency(code)
			if err != nil {
				t.Errorf("AuthorizeCurrency(%q) error = %v", code, err)
				continue
			}
			if got != c {
				t.Errorf("AuthorizeCurrency(%q) = %v, want %v", code, got, c)
			}
		}
	}
}

func TestAuthorizeCurrency_Symbols(t *testing.T) {
	testCases := []struct {
		code   string
		symbol string
	}{
		{"usd", "$"},
		{"EUR", "€"},
		{"gbp", "£"},
	}
	for _, tc := range testCases {
		got, err := AuthorizeCurrency(tc.code)
		if err != nil {
			t.Fatalf("AuthorizeCurrency(%q) error = %v", tc.code, err)
		}
		if got.Symbol != tc.symbol {
			t.Errorf("AuthorizeCurrency(%q).Symbol = %q, want %q", tc.code, got.Symbol, tc.symbol)
		}
	}
}

func TestAuthorizeCurrency_Unsupported(t *testing.T) {
	for _, code := range []string{"", "BTC", "XYZ", "dollars"} {
		if _, err := AuthorizeCurrency(code); !errors.Is(err, ErrCurrencyUnsupported) {
			t.Errorf("AuthorizeCurrency(%q) error = %v, want %v", code, err, ErrCurrencyUnsupported)
		}
	}
}

func TestCurrency_Format(t *testing.T) {
	usd := Currency{Code: "USD", Symbol: "$"}
	testCases := []struct {
		value string
		want  string
		whole string
	}{
		{"0.5", "$0.50", "$1"},
		{"12.345", "$12.35", "$12"},
		{"6543.2", "$6543.20", "$6,543"},
		{"0.001", "$0.00", "$0"},
		{"123456789.4", "$123456789.40", "$123,456,789"},
	}
	for _, tc := range testCases {
		d := decimal.RequireFromString(tc.value)
		if got := usd.Format(d); got != tc.want {
			t.Errorf("Format(%s) = %q, want %q", tc.value, got, tc.want)
		}
		if got := usd.FormatWhole(d); got != tc.whole {
			t.Errorf("FormatWhole(%s) = %q, want %q", tc.value, got, tc.whole)
		}
	}
}

func TestCurrency_FormatLarge(t *testing.T) {
	idr := Currency{Code: "IDR", Symbol: "Rp"}
	testCases := []struct {
		value string
		want  string
		whole string
	}{
		// the last amounts representable in minor units
		{"92233720368547758.06", "Rp92233720368547758.06", "Rp92,233,720,368,547,758"},
		{"92233720368547758.08", "Rp92233720368547758.08", "Rp92,233,720,368,547,758"},
		{"100000000000000000", "Rp100000000000000000.00", "Rp100,000,000,000,000,000"},
		{"123456789012345678901.235", "Rp123456789012345678901.24", "Rp123,456,789,012,345,678,901"},
		{"-100000000000000000.5", "-Rp100000000000000000.50", "-Rp100,000,000,000,000,001"},
	}
	for _, tc := range testCases {
		d := decimal.RequireFromString(tc.value)
		if got := idr.Format(d); got != tc.want {
			t.Errorf("Format(%s) = %q, want %q", tc.value, got, tc.want)
		}
		if got := idr.FormatWhole(d); got != tc.whole {
			t.Errorf("FormatWhole(%s) = %q, want %q", tc.value, got, tc.whole)
		}
		back, err := ParseMoney(idr.FormatWhole(d), idr.Symbol)
		if err != nil || !back.Equal(d.Round(0)) {
			t.Errorf("ParseMoney(FormatWhole(%s)) = %s, %v, want %s", tc.value, back, err, d.Round(0))
		}
	}
}

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		s      string
		symbol string
		want   string
	}{
		{"$331.01", "$", "331.01"},
		{"$904", "$", "904"},
		{"$1,234,567", "$", "1234567"},
		{"€12.50", "€", "12.5"},
		{"-$0.50", "$", "-0.5"},
	}
	for _, tc := range testCases {
		got, err := ParseMoney(tc.s, tc.symbol)
		if err != nil {
			t.Errorf("ParseMoney(%q) error = %v", tc.s, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("ParseMoney(%q) = %s, want %s", tc.s, got, tc.want)
		}
	}
}

func TestParseMoney_RoundTrip(t *testing.T) {
	usd := Currency{Code: "USD", Symbol: "$"}
	d := decimal.RequireFromString("1234567")
	got, err := ParseMoney(usd.FormatWhole(d), usd.Symbol)
	if err != nil {
		t.Fatalf("ParseMoney() error = %v", err)
	}
	if !got.Equal(d) {
		t.Errorf("ParseMoney(FormatWhole(%s)) = %s", d, got)
	}
}
