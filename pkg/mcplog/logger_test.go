package mcplog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerEmptyPath(t *testing.T) {
	l, err := NewLogger("")
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestWriteAppendsJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mcp.jsonl")
	l, err := NewLogger(path)
	require.NoError(t, err)
	defer l.Close()

	errMsg := "boom"
	entries := []LogEntry{
		{Ts: "2026-08-29T10:00:00Z", Tool: "generate_component", Params: map[string]any{"node_id": "1:2"}, DurationMs: 12, ResponseBytes: 512},
		{Ts: "2026-08-29T10:00:01Z", Tool: "preview_ir", Error: &errMsg},
	}
	for _, e := range entries {
		require.NoError(t, l.Write(e))
	}

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var got []LogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e LogEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		got = append(got, e)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, got, 2)
	assert.Equal(t, "generate_component", got[0].Tool)
	assert.Equal(t, int64(12), got[0].DurationMs)
	assert.Nil(t, got[0].Error)
	require.NotNil(t, got[1].Error)
	assert.Equal(t, "boom", *got[1].Error)
}

func TestSanitizeParams(t *testing.T) {
	long := strings.Repeat("x", 100)
	out := SanitizeParams(map[string]any{
		"node_id": "1:2",
		"code":    long,
		"count":   3,
	})

	assert.Equal(t, "1:2", out["node_id"])
	assert.Equal(t, 3, out["count"])
	assert.NotContains(t, out, "code")
	assert.Equal(t, 100, out["code_len"])
}

func TestResponseBytesNil(t *testing.T) {
	assert.Zero(t, ResponseBytes(nil))
}
