package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/scry-cards/internal/api"
	"github.com/phrazzld/scry-cards/internal/config"
	"github.com/phrazzld/scry-cards/internal/platform/memory"
)

var testNow = time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            0,
			LogLevel:        "info",
			ShutdownTimeout: 2 * time.Second,
		},
		Review: config.ReviewConfig{HistoryLimit: 2},
	}
}

func newTestApp(t *testing.T) *application {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApplication(testConfig(), log, memory.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	return app
}

func TestNewApplicationRequiresConfig(t *testing.T) {
	t.Parallel()
	app, err := newApplication(nil, nil)
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestRouterServesAPI(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/cards", "application/json",
		strings.NewReader(`{"question":"2+2?","answer":"4","tags":["math"]}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	var card api.CardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&card))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"list", http.MethodGet, "/api/cards", "", http.StatusOK},
		{"search", http.MethodGet, "/api/cards/search?q=2%2B2", "", http.StatusOK},
		{"get", http.MethodGet, "/api/cards/" + card.ID.String(), "", http.StatusOK},
		{"next", http.MethodGet, "/api/cards/next", "", http.StatusOK},
		{"answer", http.MethodPost, "/api/cards/" + card.ID.String() + "/answer", `{"correct":false}`, http.StatusOK},
		{"reviews", http.MethodGet, "/api/cards/" + card.ID.String() + "/reviews", "", http.StatusOK},
		{"archive", http.MethodPut, "/api/cards/" + card.ID.String() + "/archive", `{"archived":true}`, http.StatusOK},
		{"add tag", http.MethodPost, "/api/cards/" + card.ID.String() + "/tags", `{"tag":"easy"}`, http.StatusOK},
		{"remove tag", http.MethodDelete, "/api/cards/" + card.ID.String() + "/tags/math", "", http.StatusOK},
		{"stats", http.MethodGet, "/api/stats", "", http.StatusOK},
		{"progress", http.MethodGet, "/api/progress", "", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"delete", http.MethodDelete, "/api/cards/" + card.ID.String(), "", http.StatusNoContent},
		{"unknown route", http.MethodGet, "/api/memos", "", http.StatusNotFound},
	}

	// Subtests run in order; later ones depend on earlier state.
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var body io.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			req, err := http.NewRequest(tc.method, srv.URL+tc.path, body)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestReviewHistoryLimitFromConfig(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/cards", "application/json", strings.NewReader(`{"question":"q","answer":"a"}`))
	require.NoError(t, err)
	var card api.CardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&card))
	resp.Body.Close()

	for i := 0; i < 3; i++ {
		resp, err := http.Post(srv.URL+"/api/cards/"+card.ID.String()+"/answer", "application/json",
			strings.NewReader(`{"correct":true}`))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/cards/" + card.ID.String() + "/reviews")
	require.NoError(t, err)
	defer resp.Body.Close()

	var history []api.ReviewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&history))
	require.Len(t, history, 2, "history is capped at the configured limit")
	assert.Equal(t, 2, history[0].Repetitions)
	assert.Equal(t, 3, history[1].Repetitions)
}

func TestServeShutsDownWhenContextCanceled(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	server := &http.Server{Handler: app.setupRouter(), ReadHeaderTimeout: readHeaderTimeout}

	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, server, ln) }()

	url := fmt.Sprintf("http://%s/health", ln.Addr().String())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get(url)
	assert.Error(t, err, "listener should be closed after shutdown")
}

func TestStartHTTPServerReportsListenError(t *testing.T) {
	t.Parallel()
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	app := newTestApp(t)
	app.config.Server.Port = ln.Addr().(*net.TCPAddr).Port

	err = app.startHTTPServer(context.Background(), http.NotFoundHandler())
	assert.ErrorContains(t, err, "failed to listen")
}
