package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/danakotech/osintwalletonline/internal/metrics"
)

// Config holds block-explorer API settings.
type Config struct {
	BaseURL         string        `yaml:"base_url"`
	APIKey          string        `yaml:"api_key"`
	MaxTransactions int           `yaml:"max_transactions"` // retained cap after merge
	MaxTokens       int           `yaml:"max_tokens"`       // per-contract balance fan-out cap
	FanOutLimit     int           `yaml:"fan_out_limit"`    // concurrent token balance fetches
	RetryAttempts   int           `yaml:"retry_attempts"`
	RetryBaseDelay  time.Duration `yaml:"retry_base_delay"`
}

// ApplyDefaults fills zero fields with working values.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.etherscan.io/api"
	}
	if c.MaxTransactions == 0 {
		c.MaxTransactions = 100
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 20
	}
	if c.FanOutLimit == 0 {
		c.FanOutLimit = 5
	}
	if c.RetryAttempts == 0 {
		c.RetryAttempts = 3
	}
	if c.RetryBaseDelay == 0 {
		c.RetryBaseDelay = 500 * time.Millisecond
	}
}

// envelope is the block-explorer response wrapper. Status "1" signals
// success; Result is a string for balance calls and an array for list
// calls, so it stays raw until the caller knows the shape.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

const statusOK = "1"

// Client talks to an Etherscan-shaped HTTP API. Every public method
// fails soft: transport and shape errors degrade to the operation's
// empty or zero default, never to an error that crosses into the
// pipeline.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a block-explorer client.
func NewClient(cfg Config) *Client {
	cfg.ApplyDefaults()
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// get issues one explorer query with bounded retries and decodes the
// envelope. Non-"1" status is not an error here; callers inspect it.
func (c *Client) get(ctx context.Context, action string, params url.Values) (*envelope, error) {
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("module", "account")
	q.Set("action", action)
	if c.cfg.APIKey != "" {
		q.Set("apikey", c.cfg.APIKey)
	}
	reqURL := c.cfg.BaseURL + "?" + q.Encode()

	var env envelope
	backoff := retry.WithMaxRetries(
		uint64(c.cfg.RetryAttempts-1),
		retry.NewExponential(c.cfg.RetryBaseDelay),
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.UpstreamRequests.WithLabelValues(action, "error").Inc()
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			metrics.UpstreamRequests.WithLabelValues(action, "throttled").Inc()
			return retry.RetryableError(fmt.Errorf("rate limited (429)"))
		}
		if resp.StatusCode != http.StatusOK {
			metrics.UpstreamRequests.WithLabelValues(action, "error").Inc()
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return retry.RetryableError(fmt.Errorf("http %d: %s", resp.StatusCode, body))
		}

		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			metrics.UpstreamRequests.WithLabelValues(action, "error").Inc()
			return fmt.Errorf("decode response: %w", err)
		}
		metrics.UpstreamRequests.WithLabelValues(action, "ok").Inc()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &env, nil
}
