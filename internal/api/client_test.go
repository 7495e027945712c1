// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(serverURL string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL:    serverURL,
		Timeout:    5 * time.Second,
		MaxRetries: 1,
		RetryDelay: 10 * time.Millisecond,
	})
}

func TestChatSuccess(t *testing.T) {
	var gotReq ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "Here is your answer."})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	messages := []Message{
		NewUserMessage("What is RAG?"),
		NewAssistantMessage("Retrieval-augmented generation."),
		NewUserMessage("Tell me more"),
	}

	reply, err := client.Chat(context.Background(), messages, "de")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "Here is your answer." {
		t.Errorf("reply = %q", reply)
	}
	if len(gotReq.Messages) != 3 {
		t.Errorf("server received %d messages, want 3", len(gotReq.Messages))
	}
	if gotReq.Language != "de" {
		t.Errorf("language = %q, want de", gotReq.Language)
	}
}

func TestChatApplicationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "model overloaded"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Chat(context.Background(), []Message{NewUserMessage("hi")}, "en")
	if err == nil {
		t.Fatal("expected error")
	}

	var ce *ClientError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T", err)
	}
	if ce.Type != ErrTypeApplication {
		t.Errorf("Type = %v, want application", ce.Type)
	}
	if ce.Message != "model overloaded" {
		t.Errorf("Message = %q", ce.Message)
	}
}

func TestChatApplicationErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "bad request"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	client.Chat(context.Background(), []Message{NewUserMessage("hi")}, "en")

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("server called %d times, application errors must not be retried", n)
	}
}

func TestChatMissingResponseField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Chat(context.Background(), []Message{NewUserMessage("hi")}, "en")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestChatMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Chat(context.Background(), []Message{NewUserMessage("hi")}, "en")

	var ce *ClientError
	if !errors.As(err, &ce) || ce.Type != ErrTypeInvalidResponse {
		t.Errorf("err = %v, want invalid-response client error", err)
	}
}

func TestChatCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := client.Chat(ctx, []Message{NewUserMessage("hi")}, "en")
		errCh <- err
	}()

	<-started
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrCancelled) {
			t.Errorf("err = %v, want ErrCancelled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Chat did not return after cancellation")
	}
}

func TestChatServerUnreachable(t *testing.T) {
	client := NewClientWithConfig(&ClientConfig{
		BaseURL:    "http://127.0.0.1:1", // nothing listens here
		Timeout:    time.Second,
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
	})

	_, err := client.Chat(context.Background(), []Message{NewUserMessage("hi")}, "en")

	var ce *ClientError
	if !errors.As(err, &ce) || ce.Type != ErrTypeTransport {
		t.Errorf("err = %v, want transport client error", err)
	}
}

func TestCheckHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(HealthResponse{Status: "healthy", Message: "Chat API is running"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	health, err := client.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("CheckHealth: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("Status = %q", health.Status)
	}
}

func TestClientErrorIs(t *testing.T) {
	wrapped := &ClientError{Type: ErrTypeTimeout, Message: "deadline hit", Cause: context.DeadlineExceeded}
	if !errors.Is(wrapped, ErrTimeout) {
		t.Error("errors.Is should match on error type")
	}
	if errors.Is(wrapped, ErrCancelled) {
		t.Error("errors.Is must not match different types")
	}
}
