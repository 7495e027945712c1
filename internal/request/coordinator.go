// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package request coordinates chat requests against the server.
//
// It enforces the at-most-one-in-flight rule: a second send while a
// request is pending is refused, and switching or creating chats cancels
// the pending request before proceeding.
package request

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ragchat-tui/internal/api"
	"github.com/jeranaias/ragchat-tui/internal/model"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ResponseMsg delivers a successful reply.
type ResponseMsg struct {
	ChatID string
	Reply  string
	At     time.Time
}

// SendErrorMsg delivers a failed send. UserMessageID identifies the user
// message to roll back.
type SendErrorMsg struct {
	ChatID        string
	UserMessageID string
	Err           error
}

// SendCancelledMsg reports that the user cancelled the pending request.
// The user message stays; only the placeholder goes away.
type SendCancelledMsg struct {
	ChatID string
}

// =============================================================================
// COORDINATOR
// =============================================================================

// inflight identifies one claimed request slot. The token makes release
// idempotent: a request that was cancelled and superseded cannot free its
// successor's slot.
type inflight struct {
	cancel context.CancelFunc
}

// Coordinator owns the single request slot and its cancel function.
//
// It must be used as a pointer: Bubble Tea copies models on every Update,
// and the mutex must not be copied with them.
type Coordinator struct {
	client *api.Client

	mu      sync.Mutex
	current *inflight
}

// NewCoordinator creates a coordinator for the given client.
func NewCoordinator(client *api.Client) *Coordinator {
	return &Coordinator{client: client}
}

// InFlight reports whether a request is pending.
func (c *Coordinator) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

// Cancel aborts the pending request, if any. Safe to call when idle.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.current.cancel()
		c.current = nil
	}
}

// release frees the slot if this request still holds it, and always
// cancels the request's own context to avoid leaks.
func (c *Coordinator) release(tok *inflight) {
	c.mu.Lock()
	if c.current == tok {
		c.current = nil
	}
	c.mu.Unlock()
	tok.cancel()
}

// Send claims the request slot and returns a command that performs the
// round trip. Returns nil when a request is already pending: the caller
// should treat that as "input disabled" rather than queue a second send.
//
// history must be the full transcript including the just-appended user
// message; userMessageID names that message for rollback on failure.
func (c *Coordinator) Send(chatID string, history []model.Message, language, userMessageID string) tea.Cmd {
	c.mu.Lock()
	if c.current != nil {
		c.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	tok := &inflight{cancel: cancel}
	c.current = tok
	c.mu.Unlock()

	wire := model.WireMessages(history)

	return func() tea.Msg {
		defer c.release(tok)

		reply, err := c.client.Chat(ctx, wire, language)
		if err != nil {
			if errors.Is(err, api.ErrCancelled) || errors.Is(err, context.Canceled) {
				return SendCancelledMsg{ChatID: chatID}
			}
			return SendErrorMsg{ChatID: chatID, UserMessageID: userMessageID, Err: err}
		}
		return ResponseMsg{ChatID: chatID, Reply: reply, At: time.Now()}
	}
}
