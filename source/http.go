package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/datazip-inc/olake-tableview/constants"
	"github.com/datazip-inc/olake-tableview/types"
)

// HTTP fetches records with a GET request. The response body must be a JSON array.
type HTTP struct {
	URL     string
	Timeout time.Duration

	client *http.Client
}

func (h *HTTP) init() {
	if h.client == nil {
		timeout := h.Timeout
		if timeout <= 0 {
			timeout = constants.DefaultHTTPTimeout
		}
		h.client = &http.Client{Timeout: timeout}
	}
	if h.URL == "" {
		h.URL = constants.DefaultRecordsURL
	}
}

func (h *HTTP) Fetch(ctx context.Context) ([]types.Record, error) {
	h.init()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %s", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", h.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s returned status %d", h.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %s", err)
	}
	return decodeRecords(body)
}
