package cryptfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// Holding is a portfolio entry: an asset ticker and the amount held.
type Holding struct {
	Symbol string          // upper-case ticker
	Amount decimal.Decimal // exact amount as written in the portfolio file
}

// DefaultPortfolioPath returns the well-known location of the portfolio file:
// $HOME/.cryptfolio/portfolio.json
func DefaultPortfolioPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not locate home directory: %w", err)
	}
	return filepath.Join(home, ".cryptfolio", "portfolio.json"), nil
}

// LoadHoldings opens and decodes the portfolio file at path.
//
// A missing file is reported as a *ConfigMissingError, anything else that
// prevents reading the holdings wraps ErrConfigInvalid.
func LoadHoldings(path string) ([]Holding, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &ConfigMissingError{Path: path, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", path, err)
	}
	defer f.Close()

	holdings, err := DecodeHoldings(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", path, err)
	}
	return holdings, nil
}

// DecodeHoldings reads a JSON object mapping tickers to amounts.
//
// Holdings are returned in the order of the object keys. Tickers are
// upper-cased, and two keys that only differ by case are rejected.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: expecting an object mapping symbols to amounts", ErrConfigInvalid)
	}

	seen := make(map[string]string)
	holdings := make([]Holding, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
		}
		key, _ := tok.(string) // object keys are always strings
		symbol := strings.ToUpper(strings.TrimSpace(key))
		if symbol == "" {
			return nil, fmt.Errorf("%w: empty symbol", ErrConfigInvalid)
		}
		if prev, ok := seen[symbol]; ok {
			return nil, fmt.Errorf("%w: symbols %q and %q are the same asset", ErrConfigInvalid, prev, key)
		}
		seen[symbol] = key

		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("%w: amount of %q is not a number: %v", ErrConfigInvalid, key, err)
		}
		amount, err := decimal.NewFromString(n.String())
		if err != nil {
			return nil, fmt.Errorf("%w: amount of %q is not a number: %v", ErrConfigInvalid, key, err)
		}
		holdings = append(holdings, Holding{Symbol: symbol, Amount: amount})
	}

	// consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return holdings, nil
}
