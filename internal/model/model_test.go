// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
	"time"
)

func TestNewChat(t *testing.T) {
	c := NewChat()

	if c.ID == "" {
		t.Error("chat should have an ID")
	}
	if !strings.HasPrefix(c.ID, "chat_") {
		t.Errorf("ID should start with 'chat_', got %q", c.ID)
	}
	if c.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", c.Title, DefaultTitle)
	}
	if len(c.Messages) != 0 {
		t.Errorf("new chat should have no messages, got %d", len(c.Messages))
	}
	if c.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestNewChatIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewChatID()
		if seen[id] {
			t.Fatalf("duplicate chat ID generated: %q", id)
		}
		seen[id] = true
	}
}

func TestMessageRoles(t *testing.T) {
	user := NewUserMessage("hi")
	bot := NewBotMessage("hello")
	errMsg := NewErrorMessage("boom")

	if user.Role != RoleUser || bot.Role != RoleBot || errMsg.Role != RoleError {
		t.Error("constructor roles incorrect")
	}
	if !user.IsPersistable() || !bot.IsPersistable() {
		t.Error("user and bot messages must be persistable")
	}
	if errMsg.IsPersistable() {
		t.Error("error messages must never be persisted")
	}
	if user.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestWireMessages(t *testing.T) {
	history := []Message{
		NewUserMessage("Hello"),
		NewBotMessage("Hi!"),
		NewErrorMessage("transient failure"),
		NewUserMessage("Still there?"),
	}

	wire := WireMessages(history)
	if len(wire) != 3 {
		t.Fatalf("wire length = %d, want 3 (error messages skipped)", len(wire))
	}
	if wire[0].Role != "user" || wire[0].Content != "Hello" {
		t.Errorf("wire[0] = %+v", wire[0])
	}
	if wire[1].Role != "assistant" || wire[1].Content != "Hi!" {
		t.Errorf("wire[1] = %+v, bot must map to assistant", wire[1])
	}
	if wire[2].Role != "user" {
		t.Errorf("wire[2].Role = %q", wire[2].Role)
	}
}

func TestCapMessages(t *testing.T) {
	msgs := []Message{
		NewUserMessage("one"),
		NewBotMessage("two"),
		NewUserMessage("three"),
	}

	capped := CapMessages(msgs, 2)
	if len(capped) != 2 {
		t.Fatalf("len = %d, want 2", len(capped))
	}
	if capped[0].Content != "two" || capped[1].Content != "three" {
		t.Error("oldest message should be removed first")
	}

	// Non-positive cap disables pruning.
	if got := CapMessages(msgs, 0); len(got) != 3 {
		t.Error("cap of 0 must disable pruning")
	}
	if got := CapMessages(msgs, -5); len(got) != 3 {
		t.Error("negative cap must disable pruning")
	}
	if got := CapMessages(msgs, 10); len(got) != 3 {
		t.Error("cap above length must be a no-op")
	}
}

func TestSortByCreation(t *testing.T) {
	older := &Chat{ID: "chat_1", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &Chat{ID: "chat_2", CreatedAt: time.Now()}

	chats := []*Chat{older, newer}
	SortByCreation(chats)

	if chats[0] != newer {
		t.Error("newest chat should sort first")
	}
}

func TestChatPreview(t *testing.T) {
	c := NewChat()
	c.Append(NewBotMessage("greeting"))
	c.Append(NewUserMessage("first line\nsecond line"))

	got := c.Preview(50)
	if got != "first line second line" {
		t.Errorf("Preview = %q", got)
	}
}

func TestChatClone(t *testing.T) {
	c := NewChat()
	c.Append(NewUserMessage("hello"))

	clone := c.Clone()
	clone.Messages[0].Content = "mutated"

	if c.Messages[0].Content != "hello" {
		t.Error("clone should not share message storage")
	}
}
