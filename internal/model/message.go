// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chats and messages.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/ragchat-tui/internal/api"
	"github.com/jeranaias/ragchat-tui/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleBot   Role = "bot"
	RoleError Role = "error"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleBot, RoleError:
		return true
	}
	return false
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single message in a chat transcript. Content holds the raw,
// pre-render text; Timestamp is kept raw so timestamp labels can be
// re-formatted when display settings change without touching stored data.
//
// Messages are immutable once appended. Error messages are view-only: they
// are never persisted and never sent on the wire.
type Message struct {
	ID        string    `json:"id,omitempty"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage creates a message with a generated ID and the current time.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        "msg_" + uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return NewMessage(RoleUser, content)
}

// NewBotMessage creates a bot message.
func NewBotMessage(content string) Message {
	return NewMessage(RoleBot, content)
}

// NewErrorMessage creates a view-only error message.
func NewErrorMessage(content string) Message {
	return NewMessage(RoleError, content)
}

// IsPersistable reports whether the message belongs in stored transcripts.
func (m Message) IsPersistable() bool {
	return m.Role == RoleUser || m.Role == RoleBot
}

// Preview returns a single-line truncated preview of the content.
func (m Message) Preview(maxRunes int) string {
	return util.TruncateRunes(util.CollapseNewlines(m.Content), maxRunes)
}

// =============================================================================
// WIRE CONVERSION
// =============================================================================

// WireMessages converts a transcript to the server's message format.
// Error messages are skipped; anything that is not a user message goes out
// with the "assistant" role, matching what the server expects.
func WireMessages(history []Message) []api.Message {
	out := make([]api.Message, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case RoleUser:
			out = append(out, api.NewUserMessage(m.Content))
		case RoleBot:
			out = append(out, api.NewAssistantMessage(m.Content))
		}
	}
	return out
}
