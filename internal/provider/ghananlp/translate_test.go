package ghananlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, upstream http.HandlerFunc) (*Client, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		upstream(w, r)
	}))
	t.Cleanup(srv.Close)

	c := New(Config{
		APIKey:            "test-key",
		TranslateURL:      srv.URL + "/v1/translate",
		SynthesizeURL:     srv.URL + "/tts/v1/synthesize",
		TranslateTimeout:  2 * time.Second,
		SynthesizeTimeout: 2 * time.Second,
	})
	return c, &hits
}

func TestTranslateSuccess(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Welcome", payload["in"])
		assert.Equal(t, "en-tw", payload["lang"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"out": "Akwaaba"})
	})

	result, err := c.Translate(context.Background(), TranslationRequest{
		Text:   "Welcome",
		Source: "en",
		Target: "tw",
	})
	require.NoError(t, err)
	assert.Equal(t, "Akwaaba", result.TranslatedText)
	assert.Equal(t, "Welcome", result.OriginalText)
	assert.Equal(t, "en", result.Source)
	assert.Equal(t, "tw", result.Target)
	assert.Equal(t, "GhanaNLP", result.Provider)
}

func TestTranslateMapsLanguageCodes(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		// Client codes are mapped to provider codes before forwarding.
		assert.Equal(t, "ak-gaa", payload["lang"])
		json.NewEncoder(w).Encode(map[string]string{"out": "x"})
	})

	result, err := c.Translate(context.Background(), TranslationRequest{
		Text:   "hello",
		Source: "twi_akuapem",
		Target: "ga",
	})
	require.NoError(t, err)
	// The result echoes the client-facing codes, not the mapped ones.
	assert.Equal(t, "twi_akuapem", result.Source)
	assert.Equal(t, "ga", result.Target)
}

func TestTranslateBareStringResponse(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode("Akwaaba")
	})

	result, err := c.Translate(context.Background(), TranslationRequest{Text: "Welcome", Source: "en", Target: "tw"})
	require.NoError(t, err)
	assert.Equal(t, "Akwaaba", result.TranslatedText)
}

func TestTranslateEmptyText(t *testing.T) {
	t.Parallel()
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.Translate(context.Background(), TranslationRequest{Text: "", Source: "en", Target: "tw"})
	assert.ErrorIs(t, err, ErrMissingText)
	assert.Zero(t, hits.Load(), "precondition failures must not reach the network")
}

func TestTranslateUnconfigured(t *testing.T) {
	t.Parallel()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(srv.Close)

	c := New(Config{APIKey: "", TranslateURL: srv.URL})
	_, err := c.Translate(context.Background(), TranslationRequest{Text: "hello", Source: "en", Target: "tw"})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, hits.Load())
}

func TestTranslateEmptyResult(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"out": ""})
	})

	_, err := c.Translate(context.Background(), TranslationRequest{Text: "hello", Source: "en", Target: "tw"})
	assert.ErrorIs(t, err, ErrEmptyTranslation)
}

func TestTranslateUpstreamError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		status      int
		body        string
		contentType string
		wantMsg     string
	}{
		{
			name:    "structured error field",
			status:  http.StatusBadRequest,
			body:    `{"error": "unsupported language pair"}`,
			wantMsg: "unsupported language pair",
		},
		{
			name:    "structured message field",
			status:  http.StatusBadRequest,
			body:    `{"message": "quota exceeded"}`,
			wantMsg: "quota exceeded",
		},
		{
			name:    "raw body fallback",
			status:  http.StatusBadGateway,
			body:    "upstream exploded",
			wantMsg: "upstream exploded",
		},
		{
			name:    "generic status fallback",
			status:  http.StatusTeapot,
			body:    "",
			wantMsg: "API returned status 418",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.Translate(context.Background(), TranslationRequest{Text: "hello", Source: "en", Target: "tw"})
			var upstream *UpstreamError
			require.ErrorAs(t, err, &upstream)
			assert.Equal(t, tt.status, upstream.StatusCode, "provider status is preserved")
			assert.Equal(t, tt.wantMsg, upstream.Message)
		})
	}
}

func TestTranslateTimeout(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := New(Config{
		APIKey:           "test-key",
		TranslateURL:     srv.URL,
		TranslateTimeout: 50 * time.Millisecond,
	})

	_, err := c.Translate(context.Background(), TranslationRequest{Text: "hello", Source: "en", Target: "tw"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestTranslateConnectionFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listens here any more

	c := New(Config{APIKey: "test-key", TranslateURL: url})
	_, err := c.Translate(context.Background(), TranslationRequest{Text: "hello", Source: "en", Target: "tw"})
	assert.ErrorIs(t, err, ErrConnection)
}
