package command

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clouch"
	"github.com/dmitrymomot/clouch/pkg/useragent"
)

const (
	iPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	page = `<html><body><div><a onclick="go()">click</a></div></body></html>`
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := RootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	t.Run("arguments as JSON", func(t *testing.T) {
		out, err := execute(t, "", "classify", iPhoneUA)
		require.NoError(t, err)

		var res useragent.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, useragent.DeviceTypeMobile, res.Device.Type)
		assert.Equal(t, "Mobile Safari", res.Browser.Name)
		assert.Equal(t, iPhoneUA, res.UA)
	})

	t.Run("stdin with short output", func(t *testing.T) {
		out, err := execute(t, iPhoneUA+"\n\n"+desktopUA+"\n", "classify", "--short")
		require.NoError(t, err)
		assert.Equal(t,
			"Mobile Safari/14.0 (iOS 14.4, Mobile)\nChrome/91.0.4472.124 (Windows 10, Desktop)\n",
			out)
	})
}

func TestRewriteCommand(t *testing.T) {
	t.Run("mobile from stdin", func(t *testing.T) {
		out, err := execute(t, page, "rewrite", "--ua", iPhoneUA)
		require.NoError(t, err)
		assert.Equal(t, `<html><head></head><body><div><a ontouch="go()">touch</a></div></body></html>`, out)
	})

	t.Run("desktop output is unchanged", func(t *testing.T) {
		out, err := execute(t, page, "rewrite", "--ua", desktopUA)
		require.NoError(t, err)
		assert.Equal(t, page, out)
	})

	t.Run("file to file", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "in.html")
		outPath := filepath.Join(dir, "out.html")
		require.NoError(t, os.WriteFile(in, []byte(page), 0o600))

		stdout, err := execute(t, "", "rewrite", "--ua", iPhoneUA, "-o", outPath, in)
		require.NoError(t, err)
		assert.Empty(t, stdout)

		got, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(got), `ontouch="go()"`)
	})

	t.Run("missing ua flag", func(t *testing.T) {
		_, err := execute(t, page, "rewrite")
		assert.Error(t, err)
	})

	t.Run("missing input file", func(t *testing.T) {
		_, err := execute(t, "", "rewrite", "--ua", iPhoneUA, filepath.Join(t.TempDir(), "nope.html"))
		assert.Error(t, err)
	})
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "--log-level", "loud", "classify", iPhoneUA)
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.html"), []byte(page), 0o600))

	reg := prometheus.NewRegistry()
	log := slog.New(slog.DiscardHandler)
	mw := clouch.Middleware(clouch.WithMetrics(clouch.NewMetrics(reg)))
	srv := httptest.NewServer(newRouter(dir, mw, reg, log))
	t.Cleanup(srv.Close)

	get := func(path, ua string) (int, string) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
		require.NoError(t, err)
		req.Header.Set("User-Agent", ua)
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	status, body := get("/page.html", iPhoneUA)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `ontouch="go()"`)

	status, body = get("/page.html", desktopUA)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, page, body)

	status, body = get("/healthz", desktopUA)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ALIVE", body)

	status, body = get("/readyz", desktopUA)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "READY", body)

	status, body = get("/metrics", desktopUA)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "clouch_pages_rewritten_total 1")
}

func TestDirCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.NoError(t, dirCheck(dir)(context.Background()))

	file := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(file, []byte(page), 0o600))
	assert.Error(t, dirCheck(file)(context.Background()))
	assert.Error(t, dirCheck(filepath.Join(dir, "missing"))(context.Background()))
}
