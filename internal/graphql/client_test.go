package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const countriesBody = `{"data":{"countries":[{"code":"FR","name":"France","awsRegion":"eu-west-3","currency":"EUR"}]}}`

type recorder struct {
	hits    atomic.Int32
	query   atomic.Value
	headers atomic.Value
}

func newServer(t *testing.T, rec *recorder, handler func(n int32, w http.ResponseWriter)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := rec.hits.Add(1)
		var body struct {
			Query string `json:"query"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		rec.query.Store(body.Query)
		rec.headers.Store(r.Header.Clone())
		handler(n, w)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, cfg *ClientConfig) *APIClient {
	t.Helper()
	c, err := NewAPIClient(cfg)
	require.NoError(t, err)
	c.wait = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	return c
}

func TestQuery_ReturnsData(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, func(_ int32, w http.ResponseWriter) {
		_, _ = w.Write([]byte(countriesBody))
	})

	c := newTestClient(t, &ClientConfig{
		Endpoint: srv.URL,
		Headers:  map[string]string{"X-Trace": "abc"},
	})
	data, err := c.Query(context.Background(), "query { countries { code } }", nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"countries":[{"code":"FR","name":"France","awsRegion":"eu-west-3","currency":"EUR"}]}`, string(data))
	assert.Equal(t, "query { countries { code } }", rec.query.Load())
	h := rec.headers.Load().(http.Header)
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, "abc", h.Get("X-Trace"))
}

func TestQuery_GraphQLErrorIsNotRetried(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, func(_ int32, w http.ResponseWriter) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"Cannot query field \"bogus\""}]}`))
	})

	c := newTestClient(t, &ClientConfig{Endpoint: srv.URL, MaxAttempts: 3})
	_, err := c.Query(context.Background(), "query { bogus }", nil)
	require.Error(t, err)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.False(t, fe.Retryable())
	assert.Contains(t, err.Error(), `Cannot query field "bogus"`)
	assert.EqualValues(t, 1, rec.hits.Load())
}

func TestQuery_RetriesServerErrors(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, func(n int32, w http.ResponseWriter) {
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(countriesBody))
	})

	c := newTestClient(t, &ClientConfig{Endpoint: srv.URL, MaxAttempts: 3})
	var delays []time.Duration
	c.wait = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	_, err := c.Query(context.Background(), "query { countries { code } }", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, rec.hits.Load())
	assert.Equal(t, []time.Duration{DefaultBaseDelay, 2 * DefaultBaseDelay}, delays)
}

func TestQuery_GivesUpAfterMaxAttempts(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, func(_ int32, w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c := newTestClient(t, &ClientConfig{Endpoint: srv.URL, MaxAttempts: 2})
	_, err := c.Query(context.Background(), "query { countries { code } }", nil)
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	assert.Contains(t, err.Error(), "502")
	assert.EqualValues(t, 2, rec.hits.Load())
}

func TestQuery_ClientErrorsAreFinal(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, func(_ int32, w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadRequest)
	})

	c := newTestClient(t, &ClientConfig{Endpoint: srv.URL, MaxAttempts: 4})
	_, err := c.Query(context.Background(), "query { countries { code } }", nil)
	require.Error(t, err)
	assert.False(t, IsRetryable(err))
	assert.EqualValues(t, 1, rec.hits.Load())
}

func TestQuery_EmptyAndMalformedPayloads(t *testing.T) {
	uu := map[string]struct {
		body string
		err  error
	}{
		"null-data": {body: `{"data":null}`, err: ErrEmptyResponse},
		"no-data":   {body: `{}`, err: ErrEmptyResponse},
		"garbage":   {body: `<html>`, err: ErrMalformedPayload},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			rec := &recorder{}
			srv := newServer(t, rec, func(_ int32, w http.ResponseWriter) {
				_, _ = w.Write([]byte(u.body))
			})
			c := newTestClient(t, &ClientConfig{Endpoint: srv.URL})

			_, err := c.Query(context.Background(), "query { countries { code } }", nil)
			assert.ErrorIs(t, err, u.err)
		})
	}
}

func TestQuery_ServesFromCache(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, func(_ int32, w http.ResponseWriter) {
		_, _ = w.Write([]byte(countriesBody))
	})

	c := newTestClient(t, &ClientConfig{Endpoint: srv.URL, CacheTTL: time.Minute})
	for range 3 {
		_, err := c.Query(context.Background(), "query { countries { code } }", nil)
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, rec.hits.Load())

	c.InvalidateCache()
	_, err := c.Query(context.Background(), "query { countries { code } }", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, rec.hits.Load())
}

func TestQuery_CanceledDuringBackoff(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, func(_ int32, w http.ResponseWriter) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	c := newTestClient(t, &ClientConfig{Endpoint: srv.URL, MaxAttempts: 5})
	ctx, cancel := context.WithCancel(context.Background())
	c.wait = func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	_, err := c.Query(ctx, "query { countries { code } }", nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.EqualValues(t, 1, rec.hits.Load())
}

func TestNewAPIClient_InvalidEndpoint(t *testing.T) {
	_, err := NewAPIClient(&ClientConfig{Endpoint: "not a url"})
	assert.ErrorIs(t, err, ErrInvalidEndpoint)

	_, err = NewAPIClient(nil)
	assert.Error(t, err)
}

func TestNewAPIClient_Defaults(t *testing.T) {
	c, err := NewAPIClient(&ClientConfig{Endpoint: DefaultEndpoint})
	require.NoError(t, err)

	cfg := c.Config()
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)
	assert.Equal(t, DefaultBaseDelay, cfg.BaseDelay)
	assert.Equal(t, DefaultEndpoint, c.Endpoint())
}
