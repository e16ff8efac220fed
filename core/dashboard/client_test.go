package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	testutil "github.com/crestview/admin/tests"
)

func serveSnapshot(t *testing.T, w http.ResponseWriter, snap Snapshot) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		t.Errorf("encoding snapshot failed: %v", err)
	}
}

func TestClient_Refresh(t *testing.T) {
	want := Fallback()
	want.Stats[0].Title = "Live Students"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/dashboard" {
			http.NotFound(w, r)
			return
		}
		serveSnapshot(t, w, want)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), &testutil.Logger{})

	if got := c.Latest(); got.Stats[0].Title != "Total Students" {
		t.Errorf("Latest() before refresh = %q, want the fallback snapshot", got.Stats[0].Title)
	}

	got, err := c.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if got.Stats[0].Title != "Live Students" {
		t.Errorf("Refresh() stats[0].Title = %q, want %q", got.Stats[0].Title, "Live Students")
	}
	if got := c.Latest(); got.Stats[0].Title != "Live Students" {
		t.Errorf("Latest() after refresh = %q, want %q", got.Stats[0].Title, "Live Students")
	}
}

func TestClient_Refresh_missingStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"feesChart":[],"notices":[],"activities":[],"events":[]}`))
	}))
	defer srv.Close()

	logger := &testutil.Logger{}
	c := NewClient(srv.URL, srv.Client(), logger)

	got, err := c.Refresh(context.Background())
	if err == nil {
		t.Fatal("Refresh() = nil error, want rejection for absent stats")
	}
	// never a partial render: the caller gets the full static fallback
	if len(got.Stats) != 4 || got.Stats[0].Title != "Total Students" {
		t.Errorf("Refresh() on invalid payload returned %d stats, want the fallback snapshot", len(got.Stats))
	}
	if !logger.Contains("dashboard refresh failed") {
		t.Error("expected the failed refresh to be logged")
	}
}

func TestClient_Refresh_serverError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), &testutil.Logger{})

	got, err := c.Refresh(context.Background())
	if err == nil {
		t.Fatal("Refresh() = nil error, want failure for status 500")
	}
	if len(got.Stats) != 4 {
		t.Errorf("Refresh() on server error returned %d stats, want the fallback snapshot", len(got.Stats))
	}
	// schema violations and network failures share one path: fallback + error
	if got := c.Latest(); got.Stats[0].Title != "Total Students" {
		t.Errorf("Latest() after failed refresh = %q, want untouched fallback", got.Stats[0].Title)
	}
}

func TestClient_Refresh_staleResponseDiscarded(t *testing.T) {
	stale := Fallback()
	stale.Stats[0].Title = "Stale"
	fresh := Fallback()
	fresh.Stats[0].Title = "Fresh"

	var mu sync.Mutex
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		n := requests
		mu.Unlock()
		if n == 1 {
			// the first request resolves last
			time.Sleep(300 * time.Millisecond)
			serveSnapshot(t, w, stale)
			return
		}
		serveSnapshot(t, w, fresh)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), &testutil.Logger{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = c.Refresh(context.Background())
	}()
	time.Sleep(100 * time.Millisecond) // let the first request reach the server

	if _, err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	wg.Wait()

	if got := c.Latest(); got.Stats[0].Title != "Fresh" {
		t.Errorf("Latest() = %q, want the newer response to win over the stale one", got.Stats[0].Title)
	}
}
