package dataforseo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"keyword-planner/internal/config/configs"
	"keyword-planner/internal/core/domain"
)

const (
	keywordsForKeywordsPath = "/v3/keywords_data/google_ads/keywords_for_keywords/live"
	keywordsForSitePath     = "/v3/keywords_data/google_ads/keywords_for_site/live"

	statusOK = 20000
)

// HTTPError is returned when the API answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("dataforseo: status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the DataForSEO Google Ads keyword endpoints. It
// implements port.SeedKeywordSource and port.SiteKeywordSource.
type Client struct {
	baseURL  string
	seedAuth string
	siteAuth string
	language string
	timeout  time.Duration

	httpClient *http.Client
	logger     *slog.Logger
}

func New(cfg configs.DataForSEO, logger *slog.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("dataforseo: base url required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	language := strings.TrimSpace(cfg.Language)
	if language == "" {
		language = "English"
	}

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL:    baseURL,
		seedAuth:   strings.TrimSpace(cfg.SeedAuth),
		siteAuth:   strings.TrimSpace(cfg.SiteAuth),
		language:   language,
		timeout:    timeout,
		httpClient: &http.Client{Transport: tr},
		logger:     logger,
	}, nil
}

// NewWithHTTPClient is intended for tests; it avoids network access by using a custom RoundTripper.
func NewWithHTTPClient(cfg configs.DataForSEO, logger *slog.Logger, httpClient *http.Client) (*Client, error) {
	c, err := New(cfg, logger)
	if err != nil {
		return nil, err
	}
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c, nil
}

// fetch posts a single task and returns the keywords from its result.
func (c *Client) fetch(ctx context.Context, path, auth string, task liveTask, minVolume int) ([]domain.Keyword, error) {
	var resp liveResponse
	if err := c.doJSON(ctx, path, auth, []liveTask{task}, &resp); err != nil {
		return nil, err
	}
	if resp.StatusCode != 0 && resp.StatusCode != statusOK {
		return nil, fmt.Errorf("dataforseo: status %d: %s", resp.StatusCode, resp.StatusMessage)
	}
	if len(resp.Tasks) == 0 {
		return nil, nil
	}
	t := resp.Tasks[0]
	if t.StatusCode != 0 && t.StatusCode != statusOK {
		return nil, fmt.Errorf("dataforseo: task status %d: %s", t.StatusCode, t.StatusMessage)
	}
	return decodeItems(t.Result, minVolume), nil
}

func (c *Client) doJSON(ctx context.Context, path, auth string, body any, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", "Basic "+auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("dataforseo: decode response: %w", err)
	}
	return nil
}
