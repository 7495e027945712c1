// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/jeranaias/ragchat-tui/internal/model"
	"github.com/jeranaias/ragchat-tui/internal/storage"
)

// Errors returned by manager operations.
var (
	ErrChatNotFound = errors.New("chat not found")
	ErrEmptyTitle   = errors.New("chat title cannot be empty")
)

// =============================================================================
// MANAGER
// =============================================================================

// Manager tracks the chat collection and the active chat pointer.
//
// All methods are safe for concurrent use. Persistence happens inline on
// every mutation so a crash loses at most the operation in progress.
type Manager struct {
	mu sync.Mutex

	store    *storage.ChatStore
	chats    map[string]*model.Chat
	activeID string
	settings storage.Settings

	// matcher does language-aware caseless substring search.
	matcher *search.Matcher
}

// NewManager loads persisted state and returns a manager with a valid
// active chat. The transcript cache is reconciled into the collection; a
// transcript for a deleted chat is discarded.
func NewManager(store *storage.ChatStore) *Manager {
	chats := store.LoadChats()
	storage.Reconcile(chats, store.LoadTranscript())

	m := &Manager{
		store:    store,
		chats:    chats,
		settings: store.LoadSettings(),
		matcher:  search.New(language.Und, search.Loose),
	}

	// Restore the active pointer from the transcript cache when it still
	// points at a live chat; otherwise pick the newest.
	if t := store.LoadTranscript(); t != nil {
		if _, ok := chats[t.ChatID]; ok {
			m.activeID = t.ChatID
		}
	}
	if m.activeID == "" {
		if newest := m.newestLocked(); newest != nil {
			m.activeID = newest.ID
		}
	}
	if m.activeID == "" {
		chat := model.NewChat()
		m.chats[chat.ID] = chat
		m.activeID = chat.ID
		m.persistLocked()
	}
	return m
}

// newestLocked returns the most recently created chat, or nil.
func (m *Manager) newestLocked() *model.Chat {
	var newest *model.Chat
	for _, c := range m.chats {
		if newest == nil ||
			c.CreatedAt.After(newest.CreatedAt) ||
			(c.CreatedAt.Equal(newest.CreatedAt) && c.ID > newest.ID) {
			newest = c
		}
	}
	return newest
}

// persistLocked writes both stores. The transcript cache always mirrors
// the active chat.
func (m *Manager) persistLocked() error {
	if err := m.store.SaveChats(m.chats); err != nil {
		return err
	}
	active := m.chats[m.activeID]
	return m.store.SaveTranscript(active.ID, active.Messages)
}

// =============================================================================
// ACTIVE CHAT
// =============================================================================

// ActiveID returns the active chat's ID.
func (m *Manager) ActiveID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeID
}

// Active returns a copy of the active chat.
func (m *Manager) Active() *model.Chat {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chats[m.activeID].Clone()
}

// Messages returns a copy of the active chat's transcript.
func (m *Manager) Messages() []model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	active := m.chats[m.activeID]
	out := make([]model.Message, len(active.Messages))
	copy(out, active.Messages)
	return out
}

// Get returns a copy of the chat with the given ID.
func (m *Manager) Get(id string) (*model.Chat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.chats[id]
	if !ok {
		return nil, ErrChatNotFound
	}
	return c.Clone(), nil
}

// Count returns the number of chats.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.chats)
}

// =============================================================================
// CREATE / SWITCH
// =============================================================================

// Create makes a new empty chat and switches to it. The caller is
// responsible for cancelling any in-flight request first.
func (m *Manager) Create() (*model.Chat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	chat := model.NewChat()
	m.chats[chat.ID] = chat
	m.activeID = chat.ID
	if err := m.persistLocked(); err != nil {
		return nil, err
	}
	return chat.Clone(), nil
}

// Switch makes the target chat active. Switching to the chat that is
// already active is a no-op.
func (m *Manager) Switch(targetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if targetID == m.activeID {
		return nil
	}
	if _, ok := m.chats[targetID]; !ok {
		return ErrChatNotFound
	}

	// Flush the outgoing chat into the collection before moving the
	// transcript cache to the new one.
	if err := m.store.SaveChats(m.chats); err != nil {
		return err
	}
	m.activeID = targetID
	active := m.chats[targetID]
	return m.store.SaveTranscript(active.ID, active.Messages)
}

// =============================================================================
// RENAME / DELETE / CLEAR
// =============================================================================

// Rename sets a chat's title. Whitespace-only titles are rejected and the
// old title is kept.
func (m *Manager) Rename(id, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	chat, ok := m.chats[id]
	if !ok {
		return ErrChatNotFound
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	chat.Title = title
	return m.persistLocked()
}

// Delete removes a chat. Deleting the active chat promotes the newest
// remaining one; deleting the last chat creates a fresh empty one, so the
// active pointer is valid again before Delete returns.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.chats[id]; !ok {
		return ErrChatNotFound
	}
	delete(m.chats, id)

	if m.activeID == id {
		if newest := m.newestLocked(); newest != nil {
			m.activeID = newest.ID
		} else {
			chat := model.NewChat()
			m.chats[chat.ID] = chat
			m.activeID = chat.ID
		}
	}
	return m.persistLocked()
}

// ClearAll deletes every chat and starts over with one empty chat.
func (m *Manager) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.chats = make(map[string]*model.Chat)
	chat := model.NewChat()
	m.chats[chat.ID] = chat
	m.activeID = chat.ID
	return m.persistLocked()
}

// =============================================================================
// TRANSCRIPT MUTATION
// =============================================================================

// Append adds a message to the active chat and persists. The history cap
// from settings is applied after the append, pruning oldest-first.
func (m *Manager) Append(msg model.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := m.chats[m.activeID]
	active.Append(msg)
	if limit := m.settings.MessageCap(); limit > 0 {
		active.Messages = model.CapMessages(active.Messages, limit)
	}
	return m.persistLocked()
}

// AppendEphemeral adds a view-only message to the active chat without
// touching either store. Used for error messages.
func (m *Manager) AppendEphemeral(msg model.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chats[m.activeID].Append(msg)
}

// Rollback removes the message with the given ID from the active chat,
// used to take back a user message whose send failed.
func (m *Manager) Rollback(msgID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := m.chats[m.activeID]
	for i := len(active.Messages) - 1; i >= 0; i-- {
		if active.Messages[i].ID == msgID {
			active.Messages = append(active.Messages[:i], active.Messages[i+1:]...)
			break
		}
	}
	return m.persistLocked()
}

// =============================================================================
// SETTINGS
// =============================================================================

// Settings returns the current display settings.
func (m *Manager) Settings() storage.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// UpdateSettings persists new settings. A lowered history cap prunes the
// active transcript immediately.
func (m *Manager) UpdateSettings(settings storage.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = settings
	if err := m.store.SaveSettings(settings); err != nil {
		return err
	}
	if limit := settings.MessageCap(); limit > 0 {
		active := m.chats[m.activeID]
		if len(active.Messages) > limit {
			active.Messages = model.CapMessages(active.Messages, limit)
			return m.persistLocked()
		}
	}
	return nil
}

// ReloadSettings re-reads settings from disk, for file-watcher driven
// refresh.
func (m *Manager) ReloadSettings() storage.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = m.store.LoadSettings()
	return m.settings
}

// =============================================================================
// SEARCH / VIEW STATE
// =============================================================================

// ChatItem is one sidebar row.
type ChatItem struct {
	ID       string
	Title    string
	Preview  string
	Active   bool
	Messages int
}

// ListChats returns sidebar rows, newest first, filtered by the query.
// Matching is caseless and diacritic-insensitive against title and
// message content, which is what a user typing a quick filter expects.
func (m *Manager) ListChats(query string) []ChatItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	ordered := make([]*model.Chat, 0, len(m.chats))
	for _, c := range m.chats {
		ordered = append(ordered, c)
	}
	model.SortByCreation(ordered)

	items := make([]ChatItem, 0, len(ordered))
	for _, c := range ordered {
		if query != "" && !m.chatMatchesLocked(c, query) {
			continue
		}
		items = append(items, ChatItem{
			ID:       c.ID,
			Title:    c.Title,
			Preview:  c.Preview(40),
			Active:   c.ID == m.activeID,
			Messages: c.MessageCount(),
		})
	}
	return items
}

// VisibleMessages returns the indexes of active-chat messages matching
// the in-chat search query. An empty query matches everything.
func (m *Manager) VisibleMessages(query string) []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := m.chats[m.activeID]
	visible := make([]int, 0, len(active.Messages))
	for i, msg := range active.Messages {
		if query == "" || m.containsLocked(msg.Content, query) {
			visible = append(visible, i)
		}
	}
	return visible
}

func (m *Manager) chatMatchesLocked(c *model.Chat, query string) bool {
	if m.containsLocked(c.Title, query) {
		return true
	}
	for _, msg := range c.Messages {
		if m.containsLocked(msg.Content, query) {
			return true
		}
	}
	return false
}

func (m *Manager) containsLocked(text, query string) bool {
	start, _ := m.matcher.IndexString(text, query)
	return start >= 0
}
