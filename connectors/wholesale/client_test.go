package wholesale

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prices":[
			{"start_time":"2024-01-01T00:00:00Z","consumption_price":8,"production_price":7},
			{"start_time":"2024-01-01T01:00:00Z","consumption_price":3,"production_price":2}
		]}`))
	}))
	defer srv.Close()

	series, err := New(srv.URL, "secret").Prices(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, series.Len())
	assert.Equal(t, 8.0, series[0].Consumption)
	assert.Equal(t, 2.0, series[1].Production)
}

func TestClientPricesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").Prices(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestClientPricesEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prices":[]}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").Prices(context.Background())
	require.Error(t, err)
}
