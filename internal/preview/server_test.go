package preview_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/internal/preview"
	"github.com/dmitrymomot/mailforge/pkg/emails"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(preview.New(emails.Catalog(), preview.Config{}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIndex_ListsTemplates(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	require.Contains(t, body, `href="/templates/token_launch"`)
	require.Contains(t, body, `href="/templates/team_invite"`)
}

func TestTemplateHTML_UsesQueryParams(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/templates/token_launch?name=Jupiter&symbol=JUP&icon_url=https://cdn.example.com/i.png")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "New Token Launch: Jupiter (JUP)")
	require.Contains(t, body, `src="https://cdn.example.com/i.png"`)
}

func TestTemplateText(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/templates/token_launch/text")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	require.Contains(t, body, "Purchase Meteora (MET) Now (https://mybit.com)")
}

func TestTemplateParams(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/templates/token_launch/params?symbol=XYZ")

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var params map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &params))
	require.Equal(t, "Meteora", params["name"])
	require.Equal(t, "XYZ", params["symbol"])
	require.NotContains(t, params, "icon_url")
}

func TestErrors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp, _ := get(t, srv.URL+"/templates/newsletter")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/templates/token_launch?tokenName=x")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/templates/newsletter/params")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	s := preview.New(emails.Catalog(), preview.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
