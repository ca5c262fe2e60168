package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRelayStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","message":"Backend server is running","timestamp":"2026-01-01T00:00:00.000Z"}`))
	})
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"hi there","model":"gemini"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestHealthCommand(t *testing.T) {
	server := newRelayStub(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"health", "--url", server.URL})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Backend server is running")
}

func TestChatCommand(t *testing.T) {
	server := newRelayStub(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader("hello\n/quit\n"))
	rootCmd.SetArgs([]string{"chat", "--url", server.URL})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Connected to "+server.URL)
	assert.Contains(t, out.String(), "hi there")
}
