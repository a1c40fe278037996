package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": "Swimsuit, Umbrella, Adapter"}},
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewClient("test-key", "gemini-2.5-flash")
	client.baseURL = server.URL

	text, err := client.Complete(context.Background(), "suggest items")
	require.NoError(t, err)
	assert.Equal(t, "Swimsuit, Umbrella, Adapter", text)
	assert.True(t, strings.HasSuffix(gotPath, "gemini-2.5-flash:generateContent"))
}

func TestCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", "gemini-2.5-flash")
	client.baseURL = server.URL

	_, err := client.Complete(context.Background(), "suggest items")
	assert.Error(t, err)
}

func TestCompleteNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "gemini-2.5-flash")
	client.baseURL = server.URL

	text, err := client.Complete(context.Background(), "suggest items")
	require.NoError(t, err)
	assert.Empty(t, text)
}
