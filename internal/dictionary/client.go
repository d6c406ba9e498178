// Package dictionary looks up word definitions over HTTP.
package dictionary

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"vocab/internal/domain"
)

// Client is a minimal REST client for per-word dictionary lookups.
// Lookups are fail-soft: a token without a definition is normal, so any
// transport error, non-200 status or undecodable body yields a nil record
// and the run keeps going.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	decode  func(body []byte) *domain.DefinitionRecord
}

type Config struct {
	BaseURL   string
	APIKeyEnv string
	Timeout   time.Duration
}

// NewClient builds a dictionary client for the given language. The API key,
// if any, is read from the environment variable named in cfg.APIKeyEnv.
func NewClient(cfg Config, lang domain.Language) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	apiKey := ""
	if cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}
	decode := decodeEnglish
	if lang == domain.Chinese {
		decode = decodeChinese
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		decode:  decode,
	}
}

// Lookup implements domain.Enricher.
func (c *Client) Lookup(token string) *domain.DefinitionRecord {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/"+url.PathEscape(token), nil)
	if err != nil {
		slog.Debug("dictionary request not built", "token", token, "err", err)
		return nil
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		slog.Debug("dictionary lookup failed", "token", token, "err", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.Debug("dictionary lookup rejected", "token", token, "status", resp.StatusCode)
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Debug("dictionary response unreadable", "token", token, "err", err)
		return nil
	}
	return c.decode(body)
}

// Disabled is an Enricher that never returns definitions, used when the
// dictionary is switched off in the config.
type Disabled struct{}

// Lookup implements domain.Enricher.
func (Disabled) Lookup(string) *domain.DefinitionRecord {
	return nil
}
