package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanMarkdownJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1,2]\n```", `[1,2]`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownJSON(tt.content))
		})
	}
}

func TestInvoke(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, `"match_score"`)
		assert.Equal(t, "recommend colleges", req.Messages[1].Content)

		fmt.Fprint(w, `{"choices":[{"message":{"content":"`+"```json\\n{\\\"ok\\\":true}\\n```"+`"}}]}`)
	}))
	defer srv.Close()

	c := NewLLMClient(srv.URL, "test-key", "test-model")
	raw, err := c.Invoke(context.Background(), InvokeRequest{
		Prompt:         "recommend colleges",
		ResponseSchema: `{"match_score": "number"}`,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
}

func TestInvokeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[],"error":{"message":"rate limited"}}`)
	}))
	defer srv.Close()

	c := NewLLMClient(srv.URL, "k", "m")
	_, err := c.Invoke(context.Background(), InvokeRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestInvokeHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewLLMClient(srv.URL, "k", "m")
	_, err := c.Invoke(context.Background(), InvokeRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestInvokeNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	c := NewLLMClient(srv.URL, "k", "m")
	_, err := c.Invoke(context.Background(), InvokeRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
