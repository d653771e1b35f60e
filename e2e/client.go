//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

const sessionHeader = "X-Session-Token"

func baseURL() string {
	if url := os.Getenv("CINEMATE_URL"); url != "" {
		return url
	}
	switch os.Getenv("ENV") {
	case "CI":
		return "http://cinemate-app:8000"
	}
	return "http://localhost:8000"
}

type client struct {
	http *http.Client
	base string
}

func newClient() *client {
	return &client{
		http: &http.Client{Timeout: 30 * time.Second},
		base: baseURL(),
	}
}

func (c *client) waitForService() bool {
	const maxRetries = 5
	for i := 0; i < maxRetries; i++ {
		resp, err := c.http.Get(c.base + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}
	return false
}

// do sends body as JSON when it is not nil and decodes the answer into out
// when out is not nil. It returns the status code.
func (c *client) do(method, path string, body any, token string, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(sessionHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if out != nil && len(raw) > 0 && resp.StatusCode < http.StatusBadRequest {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s: %w", string(raw), err)
		}
	}
	return resp.StatusCode, nil
}
