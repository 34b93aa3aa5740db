package blacklist

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/danakotech/osintwalletonline/internal/core/domain"
	"github.com/danakotech/osintwalletonline/internal/metrics"
)

// Config holds scam feed settings.
type Config struct {
	FeedURL string `yaml:"feed_url"`
}

// ApplyDefaults fills zero fields with working values.
func (c *Config) ApplyDefaults() {
	if c.FeedURL == "" {
		c.FeedURL = "https://raw.githubusercontent.com/scamsniffer/scam-database/main/blacklist/address.json"
	}
}

// Checker queries a community-maintained scam address feed. The feed
// document has no fixed shape: it may be a flat array of address
// strings or objects, or a nested object whose values recursively
// contain such arrays and strings. Any shape outside those is treated
// as "not found", never as an error.
type Checker struct {
	cfg        Config
	httpClient *http.Client
}

// NewChecker creates a blacklist checker.
func NewChecker(cfg Config) *Checker {
	cfg.ApplyDefaults()
	return &Checker{cfg: cfg, httpClient: &http.Client{}}
}

// IsBlacklisted reports whether the address appears in the scam feed.
// It never returns an error: when the feed is unreachable, returns a
// non-success status, or cannot be parsed, membership in the embedded
// fallback list is returned instead.
func (c *Checker) IsBlacklisted(ctx context.Context, address string) bool {
	target := domain.NormalizeAddress(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.FeedURL, nil)
	if err != nil {
		return c.checkFallback(target)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "osint-wallet-analyzer/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("blacklist feed unreachable", "error", err)
		return c.checkFallback(target)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("blacklist feed returned non-success", "status", resp.StatusCode)
		return c.checkFallback(target)
	}

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		slog.Warn("blacklist feed parse failed", "error", err)
		return c.checkFallback(target)
	}

	return containsAddress(doc, target)
}

func (c *Checker) checkFallback(target string) bool {
	metrics.BlacklistFallbacks.Inc()
	for _, addr := range fallbackAddresses {
		if addr == target {
			return true
		}
	}
	return false
}

// addressFields are the object keys that may carry an address in feed
// entries.
var addressFields = []string{"address", "wallet", "contract"}

// containsAddress walks an arbitrarily shaped decoded JSON document
// looking for the target address. Strings are compared directly;
// objects are checked on their address-like fields and then recursed;
// arrays are recursed element-wise.
func containsAddress(doc any, target string) bool {
	switch v := doc.(type) {
	case string:
		return domain.NormalizeAddress(v) == target
	case []any:
		for _, item := range v {
			if entryMatches(item, target) {
				return true
			}
		}
	case map[string]any:
		for _, value := range v {
			if containsAddress(value, target) {
				return true
			}
		}
	}
	return false
}

func entryMatches(item any, target string) bool {
	switch e := item.(type) {
	case string:
		return domain.NormalizeAddress(e) == target
	case map[string]any:
		for _, field := range addressFields {
			if s, ok := e[field].(string); ok && domain.NormalizeAddress(s) == target {
				return true
			}
		}
	case []any:
		return containsAddress(e, target)
	}
	return false
}
