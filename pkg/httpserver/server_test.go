package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clouch/pkg/httpserver"
)

func startServer(t *testing.T, srv *httpserver.Server, h http.Handler) (string, context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()

	addrCtx, addrCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer addrCancel()
	addr, err := srv.Addr(addrCtx)
	require.NoError(t, err)
	return addr, cancel, done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
		return nil
	}
}

func TestRunAndShutdown(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
	)
	addr, cancel, done := startServer(t, srv, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	require.NoError(t, waitDone(t, done))
	require.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown")
}

func TestManualShutdown(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))
	_, _, done := startServer(t, srv, nil)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, waitDone(t, done))
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()

	srv := httpserver.New()
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestRunTwice(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))
	_, cancel, done := startServer(t, srv, nil)

	err := srv.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestRunAddressInUse(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	srv := httpserver.New(httpserver.WithAddr(ln.Addr().String()))
	err = srv.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestAddrTimeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := httpserver.New().Addr(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	srv := httpserver.NewFromConfig(httpserver.Config{
		Addr:            "127.0.0.1:0",
		ReadTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	})
	addr, cancel, done := startServer(t, srv, nil)

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestOptionsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithWriteTimeout(-time.Second) })
	assert.Panics(t, func() { httpserver.WithIdleTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		checks []func(context.Context) error
		status int
		body   string
	}{
		{name: "liveness", status: http.StatusOK, body: "ALIVE"},
		{
			name:   "ready",
			checks: []func(context.Context) error{func(context.Context) error { return nil }},
			status: http.StatusOK,
			body:   "READY",
		},
		{
			name: "not ready",
			checks: []func(context.Context) error{
				func(context.Context) error { return nil },
				func(context.Context) error { return errors.New("rules not loaded") },
			},
			status: http.StatusServiceUnavailable,
			body:   "NOT_READY",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tc.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.body, rec.Body.String())
		})
	}
}
