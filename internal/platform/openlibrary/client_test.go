package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LookupISBN(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/books", r.URL.Path)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		if r.URL.Query().Get("bibkeys") != "ISBN:9780060512750" {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		_, _ = w.Write([]byte(`{"ISBN:9780060512750":{
			"title":"The Left Hand of Darkness",
			"authors":[{"name":"Ursula K. Le Guin"}],
			"subjects":[{"name":"Science fiction"}],
			"notes":{"type":"/type/text","value":"Ace edition"}
		}}`))
	}))
	defer srv.Close()

	c := NewClient("test-agent", 100, 0, WithBaseURL(srv.URL))

	t.Run("found", func(t *testing.T) {
		md, err := c.LookupISBN(context.Background(), "9780060512750")
		require.NoError(t, err)
		assert.Equal(t, "The Left Hand of Darkness", md.Title)
		assert.Equal(t, []string{"Ursula K. Le Guin"}, md.Authors)
		assert.Equal(t, []string{"Science fiction"}, md.Subjects)
		assert.Equal(t, "Ace edition", md.Summary)
	})

	t.Run("unknown isbn", func(t *testing.T) {
		_, err := c.LookupISBN(context.Background(), "0000000000")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"ISBN:0441478123":{"title":"Retried"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-agent", 100, 1, WithBaseURL(srv.URL))
	md, err := c.LookupISBN(context.Background(), "0441478123")

	require.NoError(t, err)
	assert.Equal(t, "Retried", md.Title)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient("test-agent", 100, 3, WithBaseURL(srv.URL))
	_, err := c.LookupISBN(context.Background(), "0441478123")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
