package spacedevs_http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/davarch/launch-schedule/internal/domain"
)

const DefaultBaseURL = "https://ll.thespacedevs.com/2.2.0"

// maxBody caps how much of a response is read.
const maxBody = 4 << 20

type Client struct {
	baseUrl string
	limit   int
	hc      *http.Client
}

func New(baseUrl string, limit int, timeout time.Duration) *Client {
	tr := &http.Transport{
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseUrl: trimSlash(baseUrl),
		limit:   limit,
		hc:      &http.Client{Transport: tr, Timeout: timeout},
	}
}

func (c *Client) upcomingURL() string {
	q := url.Values{}
	q.Set("format", "json")
	if c.limit > 0 {
		q.Set("limit", strconv.Itoa(c.limit))
	}
	return c.baseUrl + "/launch/upcoming/?" + q.Encode()
}

// Upcoming fetches one page of upcoming launches. Error responses that carry
// a JSON body (typically {"detail": ...}) are returned as a payload so the
// catalog can surface the detail text.
func (c *Client) Upcoming(ctx context.Context) (domain.Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.upcomingURL(), nil)
	if err != nil {
		return domain.Payload{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return domain.Payload{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return domain.Payload{}, err
	}

	var p domain.Payload
	if err := json.Unmarshal(body, &p); err != nil {
		if resp.StatusCode >= 300 {
			return domain.Payload{}, fmt.Errorf("launch api %s", resp.Status)
		}
		return domain.Payload{}, fmt.Errorf("decode launch api response: %w", err)
	}

	if resp.StatusCode >= 300 && p.Detail == "" {
		p.Detail = resp.Status
	}

	return p, nil
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
