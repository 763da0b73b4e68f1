package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinymark/tinymark/internal/config"
	"github.com/tinymark/tinymark/internal/logger"
)

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewServer(cfg, logger.New(&buf, log.DebugLevel)), &buf
}

func do(s *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, config.DefaultConfig())
	rec := do(s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRender(t *testing.T) {
	s, logs := newTestServer(t, config.DefaultConfig())
	rec := do(s, http.MethodPost, "/render", "# Hello\n**a** and *b*\n")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<h1 id=\"hello\">Hello</h1>\n<p><strong>a</strong>and<em>b</em></p>\n", rec.Body.String())
	assert.Contains(t, logs.String(), "request")
	assert.Contains(t, logs.String(), "/render")
}

func TestRenderConfigured(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Extensions.Tables = false
	cfg.HTML.HeaderIDs = false
	s, _ := newTestServer(t, cfg)

	rec := do(s, http.MethodPost, "/render", "# T1\n| a |\n")
	assert.Equal(t, "<h1>T1</h1>\n<p>| a|</p>\n", rec.Body.String())
}

func TestParse(t *testing.T) {
	s, _ := newTestServer(t, config.DefaultConfig())
	rec := do(s, http.MethodPost, "/parse", "* a\n  * b\n")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		AST []struct {
			Type  string `json:"type"`
			Items []struct {
				Content string `json:"content"`
			} `json:"items"`
		} `json:"ast"`
		Errors []json.RawMessage `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.AST, 1)
	assert.Equal(t, "list", body.AST[0].Type)
	require.Len(t, body.AST[0].Items, 1)
	assert.Equal(t, "b", body.AST[0].Items[0].Content)
	assert.Empty(t, body.Errors)
}

func TestTokens(t *testing.T) {
	s, _ := newTestServer(t, config.DefaultConfig())
	rec := do(s, http.MethodPost, "/tokens", "> q\n> r\n")

	assert.Equal(t, http.StatusOK, rec.Code)

	var tokens []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	require.Len(t, tokens, 2)
	assert.Equal(t, "blockquote", tokens[0]["type"])
	assert.Equal(t, "r", tokens[1]["content"])
}

func TestBodyTooLarge(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxBodyBytes = 8
	s, _ := newTestServer(t, cfg)

	rec := do(s, http.MethodPost, "/render", "# this is far too long\n")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "too large")
}

func TestRenderBracketRun(t *testing.T) {
	s, _ := newTestServer(t, config.DefaultConfig())

	start := time.Now()
	rec := do(s, http.MethodPost, "/render", strings.Repeat("[", 1<<19))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>"+strings.Repeat("[", 1<<19)+"</p>\n", rec.Body.String())
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t, config.DefaultConfig())
	rec := do(s, http.MethodGet, "/render", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestConcurrentRequests(t *testing.T) {
	s, _ := newTestServer(t, config.DefaultConfig())

	done := make(chan string)
	for i := 0; i < 8; i++ {
		go func() {
			done <- do(s, http.MethodPost, "/render", "# Same\n* a\n  * b\n").Body.String()
		}()
	}
	first := <-done
	for i := 1; i < 8; i++ {
		assert.Equal(t, first, <-done)
	}
}
