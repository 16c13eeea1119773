package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthealth/connect/pkg/triage"
)

type fakeTriage struct {
	answer string
	err    error
	got    string
	calls  int
}

func (f *fakeTriage) Chat(_ context.Context, message string) (string, error) {
	f.calls++
	f.got = message
	return f.answer, f.err
}

func newChatApp(svc triage.Service) *fiber.App {
	app := fiber.New()
	app.Post("/chat", NewChatHandler(svc).Chat)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]string
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestChatSuccess(t *testing.T) {
	svc := &fakeTriage{answer: "[ADVICE] Rest and hydrate."}
	app := newChatApp(svc)

	resp, body := postChat(t, app, `{"message":"I have a headache"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[ADVICE] Rest and hydrate.", body["response"])
	assert.Equal(t, "I have a headache", svc.got)
}

func TestChatMissingMessage(t *testing.T) {
	svc := &fakeTriage{}
	app := newChatApp(svc)

	for _, body := range []string{`{}`, `{"message":""}`, `{"message":"   "}`, `not json`} {
		resp, parsed := postChat(t, app, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
		assert.Equal(t, "No message provided", parsed["error"], "body %q", body)
	}
	assert.Zero(t, svc.calls, "backend must not be called without a message")
}

func TestChatDegradedMode(t *testing.T) {
	app := newChatApp(nil)

	resp, body := postChat(t, app, `{"message":"hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body["response"], "[ADVICE]"), "got %q", body["response"])
}

func TestChatUpstreamFailure(t *testing.T) {
	svc := &fakeTriage{err: errors.New("completion: openrouter http 500")}
	app := newChatApp(svc)

	resp, body := postChat(t, app, `{"message":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body["error"], "[ADVICE]"), "got %q", body["error"])
	assert.NotContains(t, body["error"], "openrouter", "internal detail must not leak")
}

func TestChatEmptyMessageFromService(t *testing.T) {
	svc := &fakeTriage{err: triage.ErrEmptyMessage}
	app := newChatApp(svc)

	resp, body := postChat(t, app, `{"message":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No message provided", body["error"])
}
