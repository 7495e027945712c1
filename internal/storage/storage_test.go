// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/ragchat-tui/internal/model"
)

func newTestStore(t *testing.T) *ChatStore {
	t.Helper()
	store, err := NewChatStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewChatStoreWithDir: %v", err)
	}
	return store
}

func TestChatsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	chat := model.NewChat()
	chat.Title = "Round trip"
	chat.Append(model.NewUserMessage("hello"))
	chat.Append(model.NewBotMessage("hi there"))

	if err := store.SaveChats(map[string]*model.Chat{chat.ID: chat}); err != nil {
		t.Fatalf("SaveChats: %v", err)
	}

	loaded := store.LoadChats()
	if len(loaded) != 1 {
		t.Fatalf("loaded %d chats, want 1", len(loaded))
	}
	got := loaded[chat.ID]
	if got == nil {
		t.Fatal("chat missing after round trip")
	}
	if got.Title != "Round trip" || len(got.Messages) != 2 {
		t.Errorf("got title=%q messages=%d", got.Title, len(got.Messages))
	}
	if got.Messages[1].Role != model.RoleBot || got.Messages[1].Content != "hi there" {
		t.Errorf("bot message did not survive: %+v", got.Messages[1])
	}
}

func TestSaveChatsDropsErrorMessages(t *testing.T) {
	store := newTestStore(t)

	chat := model.NewChat()
	chat.Append(model.NewUserMessage("q"))
	chat.Append(model.NewErrorMessage("server unreachable"))

	if err := store.SaveChats(map[string]*model.Chat{chat.ID: chat}); err != nil {
		t.Fatalf("SaveChats: %v", err)
	}

	got := store.LoadChats()[chat.ID]
	if got == nil {
		t.Fatal("chat missing")
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != model.RoleUser {
		t.Errorf("error message should not be persisted, got %+v", got.Messages)
	}
}

func TestLoadChatsMissingFile(t *testing.T) {
	store := newTestStore(t)
	if got := store.LoadChats(); len(got) != 0 {
		t.Errorf("missing file should yield empty collection, got %d", len(got))
	}
}

func TestLoadChatsCorruptedFile(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(store.BaseDir, chatsFile)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := store.LoadChats(); len(got) != 0 {
		t.Errorf("corrupted file should yield empty collection, got %d", len(got))
	}
}

func TestLoadChatsLegacyFieldNames(t *testing.T) {
	store := newTestStore(t)
	legacy := `{
		"chat_1700000000000_ab12cd34": {
			"id": "chat_1700000000000_ab12cd34",
			"title": "Old chat",
			"createdAt": "2023-11-14T22:13:20Z",
			"messages": [
				{"role": "user", "text": "hello from the past", "time": 1700000000000},
				{"role": "bot", "content": "modern reply", "timestamp": "2023-11-14T22:13:25Z"}
			]
		}
	}`
	path := filepath.Join(store.BaseDir, chatsFile)
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	got := store.LoadChats()["chat_1700000000000_ab12cd34"]
	if got == nil {
		t.Fatal("legacy chat not loaded")
	}
	if len(got.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(got.Messages))
	}
	if got.Messages[0].Content != "hello from the past" {
		t.Errorf("legacy text field not normalized: %q", got.Messages[0].Content)
	}
	wantTime := time.UnixMilli(1700000000000)
	if !got.Messages[0].Timestamp.Equal(wantTime) {
		t.Errorf("legacy epoch-ms time = %v, want %v", got.Messages[0].Timestamp, wantTime)
	}
	if got.Messages[1].Content != "modern reply" {
		t.Errorf("modern fields broken: %q", got.Messages[1].Content)
	}
}

func TestTranscriptRoundTrip(t *testing.T) {
	store := newTestStore(t)

	msgs := []model.Message{
		model.NewUserMessage("one"),
		model.NewErrorMessage("transient"),
		model.NewBotMessage("two"),
	}
	if err := store.SaveTranscript("chat_x", msgs); err != nil {
		t.Fatalf("SaveTranscript: %v", err)
	}

	got := store.LoadTranscript()
	if got == nil {
		t.Fatal("transcript missing")
	}
	if got.ChatID != "chat_x" {
		t.Errorf("ChatID = %q", got.ChatID)
	}
	if len(got.Messages) != 2 {
		t.Errorf("error message leaked into transcript: %d messages", len(got.Messages))
	}
}

func TestClearTranscript(t *testing.T) {
	store := newTestStore(t)

	if err := store.ClearTranscript(); err != nil {
		t.Errorf("clearing absent transcript should be a no-op, got %v", err)
	}

	store.SaveTranscript("chat_x", []model.Message{model.NewUserMessage("hi")})
	if err := store.ClearTranscript(); err != nil {
		t.Fatalf("ClearTranscript: %v", err)
	}
	if store.LoadTranscript() != nil {
		t.Error("transcript should be gone after clear")
	}
}

func TestReconcile(t *testing.T) {
	chat := model.NewChat()
	chat.Append(model.NewUserMessage("only one"))
	chats := map[string]*model.Chat{chat.ID: chat}

	// Transcript with more messages wins.
	fuller := &Transcript{
		ChatID: chat.ID,
		Messages: []model.Message{
			model.NewUserMessage("only one"),
			model.NewBotMessage("a reply the collection missed"),
		},
	}
	Reconcile(chats, fuller)
	if len(chats[chat.ID].Messages) != 2 {
		t.Error("transcript with more messages should replace collection messages")
	}

	// Transcript for an unknown chat is discarded.
	before := len(chats)
	Reconcile(chats, &Transcript{ChatID: "chat_gone", Messages: fuller.Messages})
	if len(chats) != before {
		t.Error("stale transcript must not resurrect a deleted chat")
	}

	// Nil transcript is a no-op.
	Reconcile(chats, nil)
}

func TestClearAll(t *testing.T) {
	store := newTestStore(t)

	chat := model.NewChat()
	chat.Append(model.NewUserMessage("bye"))
	store.SaveChats(map[string]*model.Chat{chat.ID: chat})
	store.SaveTranscript(chat.ID, chat.Messages)
	store.SaveSettings(Settings{Language: "de"})

	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if len(store.LoadChats()) != 0 {
		t.Error("chats should be empty after clear")
	}
	if store.LoadTranscript() != nil {
		t.Error("transcript should be gone after clear")
	}
	if store.LoadSettings().Language != "de" {
		t.Error("settings must survive a clear")
	}
}

func TestSettingsDefaults(t *testing.T) {
	store := newTestStore(t)

	got := store.LoadSettings()
	want := DefaultSettings()
	if got != want {
		t.Errorf("LoadSettings = %+v, want defaults %+v", got, want)
	}
}

func TestSettingsNormalization(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(store.BaseDir, settingsFile)
	raw := `{"fontSize":"gigantic","messageSpacing":"normal","timestampFormat":"sundial","maxMessages":"250","language":"zz"}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	got := store.LoadSettings()
	if got.FontSize != "medium" {
		t.Errorf("unknown font size should fall back, got %q", got.FontSize)
	}
	if got.TimestampFormat != Timestamp12Hour {
		t.Errorf("unknown timestamp format should fall back, got %q", got.TimestampFormat)
	}
	if got.Language != "en" {
		t.Errorf("unknown language should fall back, got %q", got.Language)
	}
	if got.MaxMessages != "250" {
		t.Errorf("valid maxMessages should survive, got %q", got.MaxMessages)
	}
}

func TestSettingsMessageCap(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"100", 100},
		{"0", 0},
		{"-5", 0},
		{"unlimited", 0},
		{"", 0},
	}
	for _, tt := range tests {
		s := Settings{MaxMessages: tt.raw}
		if got := s.MessageCap(); got != tt.want {
			t.Errorf("MessageCap(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestExportMarkdown(t *testing.T) {
	chat := model.NewChat()
	chat.Title = "Export me"
	chat.Append(model.NewUserMessage("question"))
	chat.Append(model.NewBotMessage("answer"))

	md := ExportMarkdown(chat)
	for _, want := range []string{"# Export me", "**You**", "**Assistant**", "question", "answer"} {
		if !strings.Contains(md, want) {
			t.Errorf("export missing %q", want)
		}
	}
}
