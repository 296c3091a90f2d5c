package cryptfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// contains http utils to deal with remote services

// tracer logs every request going through it, and its outcome.
// The query string is never logged, it may carry an API key.
type tracer struct {
	base http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface.
func (t *tracer) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		log.Printf("%v %v%v failed: %v", req.Method, req.URL.Host, req.URL.Path, err)
		return nil, err
	}
	log.Printf("%v %v%v %v (%v)", req.Method, req.URL.Host, req.URL.Path, resp.Status, time.Since(start).Round(time.Millisecond))
	return resp, nil
}

// NewTracingClient returns an http.Client that logs its requests.
func NewTracingClient() *http.Client {
	client := new(http.Client)
	client.Transport = &tracer{base: http.DefaultTransport}
	return client
}

// GetJSON performs an HTTP GET request to addr and unmarshals the JSON
// response body into data.
func GetJSON(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
