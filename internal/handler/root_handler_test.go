package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := envelopeOf(t, rec)
	assert.Equal(t, true, envelope["success"])

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "API", data["name"])
	assert.Equal(t, "1.0.0", data["version"])
	assert.Equal(t, "operational", data["status"])

	endpoints, ok := data["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "http://example.com/api", endpoints["root"])
	assert.Equal(t, "http://example.com/api/users", endpoints["users"])
	assert.Equal(t, "http://example.com/api/images", endpoints["images"])

	docs, ok := data["documentation"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, docs["methods"], "PATCH")

	meta, ok := envelope["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/api", meta["path"])
	assert.NotEmpty(t, meta["timestamp"])
}
