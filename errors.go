package cryptfolio

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigInvalid is returned when the portfolio file exists but cannot be read as a portfolio.
	ErrConfigInvalid = errors.New("invalid portfolio file")
	// ErrCurrencyUnsupported is returned for a currency code that is not in the supported table.
	ErrCurrencyUnsupported = errors.New("currency is not supported")
	// ErrIntervalInvalid is returned for a polling interval that is not a positive number of minutes.
	ErrIntervalInvalid = errors.New("interval must be a number value")
)

// ConfigMissingError reports a portfolio file that does not exist.
type ConfigMissingError struct {
	Path string // path searched
	Err  error
}

func (e *ConfigMissingError) Error() string { return "portfolio file not found: " + e.Path }
func (e *ConfigMissingError) Unwrap() error { return e.Err }

// APIError reports a failed call to a remote market data service, either at
// the transport level or because the service answered with an error payload.
type APIError struct {
	Op  string // "catalog", "price" or "rate limit"
	URL string // URL requested, without credentials
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("error attempting to call the %s API (URL requested: %s): %v", e.Op, e.URL, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }
