// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists chats, the active transcript, and display
// settings under the data directory (default ~/.ragchat).
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/ragchat-tui/internal/model"
	"github.com/jeranaias/ragchat-tui/internal/util"
)

const (
	chatsFile      = "chats.json"
	transcriptFile = "transcript.json"
	settingsFile   = "settings.json"
)

// =============================================================================
// CHAT STORE
// =============================================================================

// ChatStore handles persistence of the chat collection, the active
// transcript, and settings. All Load operations are total: a missing or
// malformed file yields an empty value, never an error the caller must
// branch on to keep the UI alive.
type ChatStore struct {
	// BaseDir is the data directory. Default: ~/.ragchat/
	BaseDir string
}

// NewChatStore creates a store rooted at the default data directory.
func NewChatStore() (*ChatStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewChatStoreWithDir(filepath.Join(homeDir, ".ragchat"))
}

// NewChatStoreWithDir creates a store with a custom directory.
func NewChatStoreWithDir(baseDir string) (*ChatStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &ChatStore{BaseDir: baseDir}, nil
}

func (s *ChatStore) filePath(name string) string {
	return filepath.Join(s.BaseDir, name)
}

// =============================================================================
// STORED FORMS
// =============================================================================

// storedChat mirrors model.Chat on disk but tolerates legacy field names
// written by earlier versions of the client.
type storedChat struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Messages  []storedMessage `json:"messages"`
	CreatedAt time.Time       `json:"createdAt"`
}

// storedMessage accepts both the current field names and the legacy
// text/time pair, and timestamps as either RFC 3339 strings or epoch
// milliseconds.
type storedMessage struct {
	ID        string
	Role      string
	Content   string
	Timestamp time.Time
}

func (m *storedMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         string          `json:"id"`
		Role       string          `json:"role"`
		Content    *string         `json:"content"`
		Text       *string         `json:"text"`
		Timestamp  json.RawMessage `json:"timestamp"`
		LegacyTime json.RawMessage `json:"time"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.ID = raw.ID
	m.Role = raw.Role
	switch {
	case raw.Content != nil:
		m.Content = *raw.Content
	case raw.Text != nil:
		m.Content = *raw.Text
	}

	ts := raw.Timestamp
	if ts == nil {
		ts = raw.LegacyTime
	}
	m.Timestamp = parseTimestamp(ts)
	return nil
}

// parseTimestamp decodes a timestamp that may be an RFC 3339 string or a
// numeric epoch-milliseconds value. Anything unreadable maps to the zero
// time rather than failing the whole load.
func parseTimestamp(raw json.RawMessage) time.Time {
	if len(raw) == 0 {
		return time.Time{}
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if t, err := time.Parse(time.RFC3339Nano, str); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, str); err == nil {
			return t
		}
		return time.Time{}
	}
	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil {
		return time.UnixMilli(ms)
	}
	return time.Time{}
}

func (c *storedChat) toModel() *model.Chat {
	chat := &model.Chat{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		Messages:  make([]model.Message, 0, len(c.Messages)),
	}
	if chat.Title == "" {
		chat.Title = model.DefaultTitle
	}
	for _, m := range c.Messages {
		role := model.Role(m.Role)
		if !role.Valid() || role == model.RoleError {
			continue
		}
		chat.Messages = append(chat.Messages, model.Message{
			ID:        m.ID,
			Role:      role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}
	return chat
}

// =============================================================================
// CHAT COLLECTION
// =============================================================================

// LoadChats reads the chat collection. Missing or corrupted data yields an
// empty collection.
func (s *ChatStore) LoadChats() map[string]*model.Chat {
	chats := make(map[string]*model.Chat)

	data, err := os.ReadFile(s.filePath(chatsFile))
	if err != nil {
		return chats
	}

	var stored map[string]storedChat
	if err := json.Unmarshal(data, &stored); err != nil {
		return chats
	}

	for id, sc := range stored {
		if id == "" {
			continue
		}
		if sc.ID == "" {
			sc.ID = id
		}
		chats[id] = sc.toModel()
	}
	return chats
}

// SaveChats writes the whole collection atomically. Only persistable
// messages are written.
func (s *ChatStore) SaveChats(chats map[string]*model.Chat) error {
	out := make(map[string]*model.Chat, len(chats))
	for id, c := range chats {
		out[id] = persistableCopy(c)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.filePath(chatsFile), data, 0644)
}

// persistableCopy strips view-only messages before serialization.
func persistableCopy(c *model.Chat) *model.Chat {
	out := &model.Chat{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		Messages:  make([]model.Message, 0, len(c.Messages)),
	}
	for _, m := range c.Messages {
		if m.IsPersistable() {
			out.Messages = append(out.Messages, m)
		}
	}
	return out
}

// =============================================================================
// ACTIVE TRANSCRIPT
// =============================================================================

// Transcript is the persisted snapshot of the active chat's messages. It
// exists so a restart can restore the visible conversation even if the
// collection write raced a crash.
type Transcript struct {
	ChatID   string          `json:"chatId"`
	Messages []model.Message `json:"messages"`
}

// LoadTranscript reads the active transcript cache. Missing or corrupted
// data yields nil.
func (s *ChatStore) LoadTranscript() *Transcript {
	data, err := os.ReadFile(s.filePath(transcriptFile))
	if err != nil {
		return nil
	}

	var raw struct {
		ChatID   string          `json:"chatId"`
		Messages []storedMessage `json:"messages"`
	}
	if err := json.Unmarshal(data, &raw); err != nil || raw.ChatID == "" {
		return nil
	}

	t := &Transcript{ChatID: raw.ChatID}
	for _, m := range raw.Messages {
		role := model.Role(m.Role)
		if !role.Valid() || role == model.RoleError {
			continue
		}
		t.Messages = append(t.Messages, model.Message{
			ID:        m.ID,
			Role:      role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}
	return t
}

// SaveTranscript writes the active transcript cache atomically.
func (s *ChatStore) SaveTranscript(chatID string, messages []model.Message) error {
	persistable := make([]model.Message, 0, len(messages))
	for _, m := range messages {
		if m.IsPersistable() {
			persistable = append(persistable, m)
		}
	}

	data, err := json.MarshalIndent(Transcript{ChatID: chatID, Messages: persistable}, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.filePath(transcriptFile), data, 0644)
}

// ClearTranscript removes the transcript cache.
func (s *ChatStore) ClearTranscript() error {
	err := os.Remove(s.filePath(transcriptFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// =============================================================================
// RECONCILIATION
// =============================================================================

// Reconcile merges a loaded transcript into the collection. A transcript
// pointing at a chat that no longer exists in the collection is stale and
// gets discarded; otherwise the transcript wins for that chat's messages,
// since it is written on every append while the collection write can lag.
func Reconcile(chats map[string]*model.Chat, t *Transcript) {
	if t == nil {
		return
	}
	chat, ok := chats[t.ChatID]
	if !ok {
		return
	}
	if len(t.Messages) > len(chat.Messages) {
		chat.Messages = t.Messages
	}
}

// =============================================================================
// MAINTENANCE
// =============================================================================

// ClearAll removes every persisted chat and the transcript cache.
// Settings survive a clear.
func (s *ChatStore) ClearAll() error {
	if err := s.SaveChats(map[string]*model.Chat{}); err != nil {
		return err
	}
	return s.ClearTranscript()
}

// =============================================================================
// EXPORT
// =============================================================================

// ExportMarkdown renders a chat as Markdown with role labels and timestamps.
func ExportMarkdown(c *model.Chat) string {
	var sb strings.Builder
	sb.WriteString("# " + c.Title + "\n\n")
	sb.WriteString("Created: " + c.CreatedAt.Format(time.RFC3339) + "\n\n")
	sb.WriteString("---\n\n")

	for _, msg := range c.Messages {
		label := "**You**"
		if msg.Role == model.RoleBot {
			label = "**Assistant**"
		}
		sb.WriteString(label + " (" + msg.Timestamp.Format("15:04") + "):\n\n")
		sb.WriteString(msg.Content)
		sb.WriteString("\n\n---\n\n")
	}
	return sb.String()
}

// ExportJSON renders a chat as pretty-printed JSON.
func ExportJSON(c *model.Chat) ([]byte, error) {
	return json.MarshalIndent(persistableCopy(c), "", "  ")
}
