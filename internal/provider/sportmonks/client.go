package sportmonks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrMissingToken is returned before any network I/O when the API token is
// not configured.
var ErrMissingToken = errors.New("sportmonks: api token is not configured")

// Config holds SportMonks client configuration.
type Config struct {
	BaseURL        string
	Token          string
	PerPage        int
	PageDelay      time.Duration
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client is a rate-limited SportMonks v3 API client. Every request carries
// the API token; PageDelay is enforced after every call as a pacing floor.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	perPage        int
	pageDelay      time.Duration
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		token:          cfg.Token,
		perPage:        cfg.PerPage,
		pageDelay:      cfg.PageDelay,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "sportmonks"),
	}
}

type pagination struct {
	HasMore     bool `json:"has_more"`
	CurrentPage int  `json:"current_page"`
}

type envelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination *pagination     `json:"pagination"`
}

// PageResult is what a pagination loop hands back: whatever was accumulated,
// the number of upstream calls spent, and the error that stopped the loop
// early, if any. Err being non-nil still means Items is usable.
type PageResult struct {
	Items    []json.RawMessage
	APICalls int
	Err      error
}

// FetchAllPages walks a list endpoint from page 1 until the upstream stops
// reporting more pages or maxPages is reached, whichever comes first.
// maxPages is a hard bound independent of upstream behavior. A failing page
// stops the loop and returns the items collected so far alongside the error.
func (c *Client) FetchAllPages(ctx context.Context, path string, params url.Values, maxPages int) PageResult {
	var res PageResult

	if c.token == "" {
		res.Err = ErrMissingToken
		return res
	}

	for page := 1; page <= maxPages; page++ {
		pageParams := cloneValues(params)
		pageParams.Set("page", fmt.Sprint(page))
		if c.perPage > 0 && pageParams.Get("per_page") == "" {
			pageParams.Set("per_page", fmt.Sprint(c.perPage))
		}

		res.APICalls++
		env, err := c.getJSON(ctx, path, pageParams)
		if err != nil {
			res.Err = fmt.Errorf("fetch page %d: %w", page, err)
			return res
		}

		items := splitData(env.Data)
		res.Items = append(res.Items, items...)

		c.logger.Debug("fetched page",
			"path", path,
			"page", page,
			"items", len(items),
			"total", len(res.Items),
		)

		hasMore := env.Pagination != nil && env.Pagination.HasMore

		// Pacing floor applies after every page, the last one included,
		// so back-to-back loops against the same endpoint stay spaced out.
		if err := c.sleep(ctx); err != nil {
			res.Err = err
			return res
		}

		if !hasMore {
			break
		}
	}

	return res
}

// FetchOne performs a single authenticated GET and returns the raw data
// field. The pacing delay is applied after the call.
func (c *Client) FetchOne(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	env, err := c.getJSON(ctx, path, cloneValues(params))
	if err != nil {
		return nil, err
	}

	if err := c.sleep(ctx); err != nil {
		return nil, err
	}

	return env.Data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values) (*envelope, error) {
	params.Set("api_token", c.token)
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	var env *envelope
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		env, err = c.doRequest(ctx, fullURL)
		if err == nil {
			return env, nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &env, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) sleep(ctx context.Context) error {
	if c.pageDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.pageDelay):
		return nil
	}
}

// splitData normalizes the polymorphic data field: a list contributes all
// its elements, a single object contributes one, absent contributes none.
func splitData(data json.RawMessage) []json.RawMessage {
	trimmed := trimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil
		}
		return items
	}

	return []json.RawMessage{trimmed}
}

func trimSpace(data json.RawMessage) json.RawMessage {
	start := 0
	for start < len(data) && isJSONSpace(data[start]) {
		start++
	}
	end := len(data)
	for end > start && isJSONSpace(data[end-1]) {
		end--
	}
	return data[start:end]
}

func isJSONSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func cloneValues(params url.Values) url.Values {
	cloned := make(url.Values, len(params)+2)
	for k, vs := range params {
		cloned[k] = append([]string(nil), vs...)
	}
	return cloned
}
