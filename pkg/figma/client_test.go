package figma

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodesPayload(nodeID string) string {
	return fmt.Sprintf(`{
		"nodes": {
			"%s": {
				"document": {
					"id": "%s",
					"name": "Screen",
					"type": "FRAME",
					"absoluteBoundingBox": {"x": 0, "y": 0, "width": 430, "height": 900}
				}
			}
		}
	}`, nodeID, nodeID)
}

func TestClientNode(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/v1/files/file-key/nodes", r.URL.Path)
		assert.Equal(t, "1:2", r.URL.Query().Get("ids"))
		assert.Equal(t, "secret", r.Header.Get("X-Figma-Token"))
		fmt.Fprint(w, nodesPayload("1:2"))
	}))
	defer srv.Close()

	c := NewClient("secret", nil, WithBaseURL(srv.URL))

	doc, err := c.Node(context.Background(), "file-key", "1:2")
	require.NoError(t, err)
	assert.Equal(t, "1:2", doc.ID)
	assert.Equal(t, "FRAME", doc.Type)
	require.NotNil(t, doc.AbsoluteBoundingBox)
	assert.Equal(t, 430.0, doc.AbsoluteBoundingBox.Width)
}

func TestClientNodeCaches(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprint(w, nodesPayload("1:2"))
	}))
	defer srv.Close()

	c := NewClient("secret", nil, WithBaseURL(srv.URL))

	_, err := c.Node(context.Background(), "file-key", "1:2")
	require.NoError(t, err)
	_, err = c.Node(context.Background(), "file-key", "1:2")
	require.NoError(t, err)

	assert.Equal(t, int32(1), requests.Load(), "second fetch is served from cache")
}

func TestClientNodeMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"nodes": {}}`)
	}))
	defer srv.Close()

	c := NewClient("secret", nil, WithBaseURL(srv.URL))

	_, err := c.Node(context.Background(), "file-key", "9:9")
	assert.ErrorContains(t, err, "not found")
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"err": "forbidden"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("bad-token", nil, WithBaseURL(srv.URL))

	_, err := c.Node(context.Background(), "file-key", "1:2")
	assert.ErrorContains(t, err, "403")
}

func TestClientAPIErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"err": "rate limited"}`)
	}))
	defer srv.Close()

	c := NewClient("secret", nil, WithBaseURL(srv.URL))

	_, err := c.Nodes(context.Background(), "file-key", []string{"1:2"})
	assert.ErrorContains(t, err, "rate limited")
}

func TestClientNodesEmptyIDs(t *testing.T) {
	c := NewClient("secret", nil)
	_, err := c.Nodes(context.Background(), "file-key", nil)
	assert.Error(t, err)
}
