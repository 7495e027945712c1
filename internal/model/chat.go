// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is the title given to freshly created chats.
const DefaultTitle = "New Chat"

// =============================================================================
// CHAT TYPE
// =============================================================================

// Chat is one saved conversation thread: a title, an id, and the ordered
// message transcript.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewChat creates an empty chat with a fresh unique ID and the default title.
func NewChat() *Chat {
	return &Chat{
		ID:        NewChatID(),
		Title:     DefaultTitle,
		Messages:  make([]Message, 0),
		CreatedAt: time.Now(),
	}
}

// NewChatID generates a chat ID. The historical format was the creation time
// in milliseconds with a "chat_" prefix; a uuid-derived suffix is appended so
// rapid programmatic creation cannot collide while IDs stay ordered by
// creation time.
func NewChatID() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "chat_" + ms + "_" + suffix
}

// =============================================================================
// TRANSCRIPT OPERATIONS
// =============================================================================

// Append adds a message to the end of the transcript.
func (c *Chat) Append(msg Message) {
	c.Messages = append(c.Messages, msg)
}

// MessageCount returns the number of messages.
func (c *Chat) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty reports whether the chat has no messages.
func (c *Chat) IsEmpty() bool {
	return len(c.Messages) == 0
}

// Preview returns a one-line preview from the first user message.
func (c *Chat) Preview(maxRunes int) string {
	for _, m := range c.Messages {
		if m.Role == RoleUser && m.Content != "" {
			return m.Preview(maxRunes)
		}
	}
	return ""
}

// Clone returns a deep copy of the chat.
func (c *Chat) Clone() *Chat {
	clone := &Chat{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		Messages:  make([]Message, len(c.Messages)),
	}
	copy(clone.Messages, c.Messages)
	return clone
}

// =============================================================================
// HISTORY CAP
// =============================================================================

// CapMessages trims the oldest messages so at most max remain. A
// non-positive max disables pruning and returns the slice unchanged.
func CapMessages(messages []Message, max int) []Message {
	if max <= 0 || len(messages) <= max {
		return messages
	}
	return messages[len(messages)-max:]
}

// =============================================================================
// ORDERING
// =============================================================================

// SortByCreation sorts chats newest-first by creation time, matching the
// sidebar ordering. Ties fall back to ID so the order is deterministic.
func SortByCreation(chats []*Chat) {
	sort.Slice(chats, func(i, j int) bool {
		if !chats[i].CreatedAt.Equal(chats[j].CreatedAt) {
			return chats[i].CreatedAt.After(chats[j].CreatedAt)
		}
		return chats[i].ID > chats[j].ID
	})
}
