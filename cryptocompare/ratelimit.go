package cryptocompare

import (
	"context"
	"errors"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cryptfolio"
)

// RateLimit fetches the number of price calls left in the current hour, minute and second.
func (c *Client) RateLimit(ctx context.Context) (cryptfolio.RateLimit, error) {
	// https://min-api.cryptocompare.com/stats/rate/limit
	// {
	//   "Response": "Success",
	//   "Hour":   {"CallsMade": {"Histo": 3, "Price": 12, "News": 0}, "CallsLeft": {"Histo": 7997, "Price": 149988, "News": 3000}},
	//   "Minute": {...},
	//   "Second": {...}
	// }
	var jobj any
	addr, err := c.get(ctx, "/stats/rate/limit", nil, &jobj)
	if err != nil {
		return cryptfolio.RateLimit{}, &cryptfolio.APIError{Op: "rate limit", URL: addr, Err: err}
	}
	if m, ok := jobj.(map[string]any); ok && m["Response"] == "Error" {
		msg, _ := m["Message"].(string)
		return cryptfolio.RateLimit{}, &cryptfolio.APIError{Op: "rate limit", URL: addr, Err: errors.New(msg)}
	}

	var rl cryptfolio.RateLimit
	for _, w := range []struct {
		path string
		dst  *int64
	}{
		{"$.Hour.CallsLeft.Price", &rl.Hour},
		{"$.Minute.CallsLeft.Price", &rl.Minute},
		{"$.Second.CallsLeft.Price", &rl.Second},
	} {
		jval, err := jsonpath.Get(w.path, jobj)
		if err != nil {
			return cryptfolio.RateLimit{}, &cryptfolio.APIError{Op: "rate limit", URL: addr, Err: fmt.Errorf("parsing %q: %w", w.path, err)}
		}
		val, ok := jval.(float64)
		if !ok {
			return cryptfolio.RateLimit{}, &cryptfolio.APIError{Op: "rate limit", URL: addr, Err: fmt.Errorf("parsing %q: not a number %v", w.path, jval)}
		}
		*w.dst = int64(val)
	}
	return rl, nil
}
