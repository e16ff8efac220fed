package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/pkg/errors"

	"github.com/crestview/admin/core"
)

// Client consumes the dashboard API. A fetch that fails (network error,
// non-200 status or contract violation) yields the static fallback snapshot
// along with the error, so callers always have something to display.
//
// Concurrent refreshes are allowed to race. Each request carries a monotonic
// sequence number and a response only replaces the held snapshot if no newer
// response has been applied, so a slow stale reply never overwrites fresher
// data.
type Client struct {
	url string
	hc  *http.Client
	log core.Logger

	mu      sync.Mutex
	seq     uint64 // last issued request
	applied uint64 // request whose snapshot is currently held
	latest  Snapshot
}

func NewClient(baseURL string, hc *http.Client, logger core.Logger) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		url:    baseURL + "/v1/dashboard",
		hc:     hc,
		log:    logger,
		latest: Fallback(),
	}
}

// Refresh fetches a fresh snapshot and applies it unless a newer response has
// already been applied. It returns the snapshot the client now holds; on
// failure it returns the static fallback and the underlying error.
func (c *Client) Refresh(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	snap, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Warn(fmt.Sprintf("dashboard refresh failed: %v", err), err)
		return Fallback(), err
	}
	if seq > c.applied {
		c.applied = seq
		c.latest = snap
	}
	return c.latest, nil
}

// Latest returns the snapshot the client currently holds; the static fallback
// until a refresh succeeds.
func (c *Client) Latest() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}

func (c *Client) fetch(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "building dashboard request")
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "fetching dashboard")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Snapshot{}, errors.Errorf("fetching dashboard: unexpected status %d", res.StatusCode)
	}

	var snap Snapshot
	if err := json.NewDecoder(res.Body).Decode(&snap); err != nil {
		return Snapshot{}, errors.Wrap(err, "decoding dashboard payload")
	}
	// a payload that fails the contract is handled exactly like a failed fetch
	if err := snap.Validate(); err != nil {
		return Snapshot{}, errors.Wrap(err, "dashboard payload rejected")
	}
	return snap, nil
}
