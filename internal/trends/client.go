// Package trends queries the Tavily search API for recent industry news and
// reduces the hits to a short text digest used as generation context.
package trends

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/influenceos/agent-api/internal/cache"
)

// FallbackSummary is returned whenever the upstream search fails. Trend
// enrichment is best-effort; a degraded summary must not block generation.
const FallbackSummary = "No trend data available."

const (
	searchDepth  = "basic"
	maxResults   = 3
	cacheTTL     = time.Hour
	cacheKeyBase = "trends:"
)

type Searcher interface {
	TrendSummary(ctx context.Context, industry string) string
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	cache   *cache.Client
}

func NewClient(apiKey, baseURL string, c *cache.Client) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		cache:   c,
	}
}

type searchRequest struct {
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

type searchResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// TrendSummary returns a newline-delimited digest of recent news for the
// industry. It never fails: any upstream error is logged and replaced with
// FallbackSummary.
func (c *Client) TrendSummary(ctx context.Context, industry string) string {
	key := cacheKeyBase + industry
	if s, ok := c.cache.GetString(ctx, key); ok {
		return s
	}

	summary, err := c.search(ctx, industry)
	if err != nil {
		slog.Info("trend search failed: " + err.Error())
		return FallbackSummary
	}

	c.cache.SetString(ctx, key, summary, cacheTTL)
	return summary
}

func (c *Client) search(ctx context.Context, industry string) (string, error) {
	query := fmt.Sprintf("latest news and key trends in the %s industry in 2025", industry)

	body, err := json.Marshal(searchRequest{
		Query:       query,
		SearchDepth: searchDepth,
		MaxResults:  maxResults,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search endpoint returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode search response: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Recent Industry Trends:\n")
	for _, r := range result.Results {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", r.Title, r.Content))
	}
	return sb.String(), nil
}
