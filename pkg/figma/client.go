package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultBaseURL = "https://api.figma.com"

// cacheSize bounds the number of node documents kept in memory. Watch mode
// refetches the same nodes on every theme change, so recently fetched
// documents are worth keeping.
const cacheSize = 128

// Client fetches node documents from the Figma REST API. It is safe for
// concurrent use; responses are cached in an LRU keyed by fileKey/nodeID.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger

	cache *lru.Cache[string, *RawNode]
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client authenticating with the given personal access
// token.
func NewClient(token string, logger *slog.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	cache, _ := lru.New[string, *RawNode](cacheSize)
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
		logger:     logger,
		cache:      cache,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Node fetches a single node document, serving repeat requests from the
// cache.
func (c *Client) Node(ctx context.Context, fileKey, nodeID string) (*RawNode, error) {
	key := fileKey + "/" + nodeID
	if doc, ok := c.cache.Get(key); ok {
		c.logger.Debug("figma node served from cache", "file", fileKey, "node", nodeID)
		return doc, nil
	}

	docs, err := c.Nodes(ctx, fileKey, []string{nodeID})
	if err != nil {
		return nil, err
	}
	doc, ok := docs[nodeID]
	if !ok || doc == nil {
		return nil, fmt.Errorf("figma: node %s not found in file %s", nodeID, fileKey)
	}
	return doc, nil
}

// Nodes fetches the document subtrees for the given node IDs. Fetched
// documents are added to the cache individually.
func (c *Client) Nodes(ctx context.Context, fileKey string, nodeIDs []string) (map[string]*RawNode, error) {
	if len(nodeIDs) == 0 {
		return nil, fmt.Errorf("figma: no node IDs given")
	}

	endpoint := fmt.Sprintf("%s/v1/files/%s/nodes?ids=%s",
		c.baseURL, url.PathEscape(fileKey), url.QueryEscape(strings.Join(nodeIDs, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("figma: build request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("figma: fetch nodes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("figma: API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope NodesResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("figma: decode response: %w", err)
	}
	if envelope.Err != "" {
		return nil, fmt.Errorf("figma: API error: %s", envelope.Err)
	}

	out := make(map[string]*RawNode, len(envelope.Nodes))
	for id, doc := range envelope.Nodes {
		if doc == nil || doc.Document == nil {
			continue
		}
		out[id] = doc.Document
		c.cache.Add(fileKey+"/"+id, doc.Document)
	}

	c.logger.Info("fetched figma nodes",
		"file", fileKey,
		"requested", len(nodeIDs),
		"received", len(out),
		"ms", time.Since(start).Milliseconds())

	return out, nil
}
