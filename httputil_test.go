package cryptfolio

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
)

func TestTracingClient(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/broken" {
			http.Error(w, "oops", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"symbol": "BTC"}`))
	}))
	defer srv.Close()

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	client := NewTracingClient()
	for i := 0; i < 2; i++ {
		var got struct{ Symbol string }
		if err := GetJSON(context.Background(), client, srv.URL+"/listings/?api_key=s3cr3t", &got); err != nil {
			t.Fatalf("GetJSON() #%d error = %v", i, err)
		}
		if got.Symbol != "BTC" {
			t.Errorf("GetJSON() #%d = %q, want BTC", i, got.Symbol)
		}
	}
	// every call reaches the server, nothing is kept between calls.
	if n := hits.Load(); n != 2 {
		t.Errorf("server hit %d times, want 2", n)
	}

	var got any
	if err := GetJSON(context.Background(), client, srv.URL+"/broken", &got); err == nil {
		t.Errorf("GetJSON(/broken) error = nil, want an error")
	}

	out := logs.String()
	if c := strings.Count(out, "/listings/ 200 OK"); c != 2 {
		t.Errorf("logs = %q, want 2 traces of /listings/", out)
	}
	if !strings.Contains(out, "/broken 500") {
		t.Errorf("logs = %q, want the failed status traced", out)
	}
	if strings.Contains(out, "s3cr3t") {
		t.Errorf("logs = %q leak the api key", out)
	}
}

func TestGetJSON_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var got any
	if err := GetJSON(ctx, srv.Client(), srv.URL, &got); err == nil {
		t.Errorf("GetJSON() with a canceled context error = nil, want an error")
	}
}
