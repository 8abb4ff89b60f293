// Package jisho is a thin client for the jisho.org dictionary API.
package jisho

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/ports"
)

const defaultBaseURL = "https://jisho.org/api/v1/search/words"

// The API rejects requests without a browser-looking agent.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Client performs word searches against the dictionary API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
}

// NewClient builds a client with the standard lookup timeout.
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: domain.LookupHTTPTimeout},
		baseURL:    defaultBaseURL,
		log:        log,
	}
}

// Search implements ports.WordSource. It returns the raw `data` array of
// the API response; an empty or missing array returns JSON null.
func (c *Client) Search(ctx context.Context, word string, page int) ([]byte, error) {
	query := url.Values{"keyword": {word}}
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.InvocationError{Err: fmt.Errorf("dictionary request: %w", err)}
	}
	defer resp.Body.Close()
	c.log.Debug().Str("word", word).Int("page", page).
		Dur("duration", time.Since(start)).Int("status", resp.StatusCode).
		Msg("dictionary request finished")

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.InvocationError{
			Err: fmt.Errorf("dictionary request: unexpected status %d", resp.StatusCode),
		}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.InvocationError{Err: fmt.Errorf("dictionary response: %w", err)}
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.InvocationError{Err: fmt.Errorf("dictionary response: %w", err)}
	}
	if len(envelope.Data) == 0 {
		return []byte("null"), nil
	}
	return envelope.Data, nil
}

var _ ports.WordSource = (*Client)(nil)
