// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/ragchat-tui/internal/model"
	"github.com/jeranaias/ragchat-tui/internal/storage"
)

func newTestManager(t *testing.T) (*Manager, *storage.ChatStore) {
	t.Helper()
	store, err := storage.NewChatStoreWithDir(t.TempDir())
	require.NoError(t, err)
	return NewManager(store), store
}

func TestNewManagerCreatesInitialChat(t *testing.T) {
	m, _ := newTestManager(t)

	assert.Equal(t, 1, m.Count(), "fresh manager should have one chat")
	assert.NotEmpty(t, m.ActiveID(), "a chat must be active")
	assert.True(t, m.Active().IsEmpty())
}

func TestCreateSwitchesToNewChat(t *testing.T) {
	m, _ := newTestManager(t)
	first := m.ActiveID()

	chat, err := m.Create()
	require.NoError(t, err)

	assert.Equal(t, chat.ID, m.ActiveID(), "create must switch to the new chat")
	assert.NotEqual(t, first, m.ActiveID())
	assert.Equal(t, 2, m.Count())
}

func TestSwitchPreservesBothTranscripts(t *testing.T) {
	m, _ := newTestManager(t)
	first := m.ActiveID()
	require.NoError(t, m.Append(model.NewUserMessage("in first chat")))

	second, err := m.Create()
	require.NoError(t, err)
	require.NoError(t, m.Append(model.NewUserMessage("in second chat")))

	require.NoError(t, m.Switch(first))
	assert.Equal(t, "in first chat", m.Messages()[0].Content)

	require.NoError(t, m.Switch(second.ID))
	assert.Equal(t, "in second chat", m.Messages()[0].Content)
}

func TestSwitchToActiveIsNoOp(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Append(model.NewUserMessage("hello")))

	require.NoError(t, m.Switch(m.ActiveID()))
	assert.Len(t, m.Messages(), 1, "self-switch must not disturb the transcript")
}

func TestSwitchUnknownChat(t *testing.T) {
	m, _ := newTestManager(t)
	assert.ErrorIs(t, m.Switch("chat_nope"), ErrChatNotFound)
}

func TestRename(t *testing.T) {
	m, _ := newTestManager(t)
	id := m.ActiveID()

	require.NoError(t, m.Rename(id, "  Project notes  "))
	assert.Equal(t, "Project notes", m.Active().Title, "title should be trimmed")

	assert.ErrorIs(t, m.Rename(id, "   "), ErrEmptyTitle)
	assert.Equal(t, "Project notes", m.Active().Title, "rejected rename keeps old title")
}

func TestDeleteActivePromotesNewest(t *testing.T) {
	m, _ := newTestManager(t)
	first := m.ActiveID()

	second, err := m.Create()
	require.NoError(t, err)

	require.NoError(t, m.Delete(second.ID))
	assert.Equal(t, first, m.ActiveID(), "deleting active promotes a survivor")
	assert.Equal(t, 1, m.Count())
}

func TestDeleteLastChatCreatesFreshOne(t *testing.T) {
	m, _ := newTestManager(t)
	old := m.ActiveID()
	require.NoError(t, m.Append(model.NewUserMessage("soon gone")))

	require.NoError(t, m.Delete(old))

	assert.Equal(t, 1, m.Count(), "collection never goes empty")
	assert.NotEqual(t, old, m.ActiveID())
	assert.True(t, m.Active().IsEmpty())
}

func TestDeleteInactiveKeepsActivePointer(t *testing.T) {
	m, _ := newTestManager(t)
	first := m.ActiveID()
	second, err := m.Create()
	require.NoError(t, err)

	require.NoError(t, m.Delete(first))
	assert.Equal(t, second.ID, m.ActiveID())
}

func TestClearAll(t *testing.T) {
	m, store := newTestManager(t)
	require.NoError(t, m.Append(model.NewUserMessage("bye")))
	_, err := m.Create()
	require.NoError(t, err)

	require.NoError(t, m.ClearAll())

	assert.Equal(t, 1, m.Count())
	assert.True(t, m.Active().IsEmpty())
	assert.Len(t, store.LoadChats(), 1, "persisted collection cleared too")
}

func TestAppendPersistsBothStores(t *testing.T) {
	m, store := newTestManager(t)
	require.NoError(t, m.Append(model.NewUserMessage("persist me")))

	loaded := store.LoadChats()[m.ActiveID()]
	require.NotNil(t, loaded)
	assert.Equal(t, "persist me", loaded.Messages[0].Content)

	tr := store.LoadTranscript()
	require.NotNil(t, tr)
	assert.Equal(t, m.ActiveID(), tr.ChatID)
	assert.Len(t, tr.Messages, 1)
}

func TestEphemeralErrorNeverPersisted(t *testing.T) {
	m, store := newTestManager(t)
	require.NoError(t, m.Append(model.NewUserMessage("q")))
	m.AppendEphemeral(model.NewErrorMessage("server down"))

	assert.Len(t, m.Messages(), 2, "error visible in view state")

	loaded := store.LoadChats()[m.ActiveID()]
	assert.Len(t, loaded.Messages, 1, "error absent from collection")

	// A later persisted append still filters the ephemeral message.
	require.NoError(t, m.Append(model.NewUserMessage("retry")))
	tr := store.LoadTranscript()
	for _, msg := range tr.Messages {
		assert.NotEqual(t, model.RoleError, msg.Role)
	}
}

func TestRollback(t *testing.T) {
	m, store := newTestManager(t)
	require.NoError(t, m.Append(model.NewUserMessage("kept")))

	failed := model.NewUserMessage("failed send")
	require.NoError(t, m.Append(failed))
	require.NoError(t, m.Rollback(failed.ID))

	msgs := m.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "kept", msgs[0].Content)

	loaded := store.LoadChats()[m.ActiveID()]
	assert.Len(t, loaded.Messages, 1, "rollback reaches the persisted store")
}

func TestHistoryCapOnAppend(t *testing.T) {
	m, _ := newTestManager(t)
	settings := storage.DefaultSettings()
	settings.MaxMessages = "3"
	require.NoError(t, m.UpdateSettings(settings))

	for _, content := range []string{"one", "two", "three", "four", "five"} {
		require.NoError(t, m.Append(model.NewUserMessage(content)))
	}

	msgs := m.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "three", msgs[0].Content, "oldest pruned first")
	assert.Equal(t, "five", msgs[2].Content)
}

func TestLoweringCapPrunesImmediately(t *testing.T) {
	m, store := newTestManager(t)
	for _, content := range []string{"a", "b", "c", "d"} {
		require.NoError(t, m.Append(model.NewUserMessage(content)))
	}

	settings := storage.DefaultSettings()
	settings.MaxMessages = "2"
	require.NoError(t, m.UpdateSettings(settings))

	assert.Len(t, m.Messages(), 2)
	loaded := store.LoadChats()[m.ActiveID()]
	assert.Len(t, loaded.Messages, 2, "pruning reaches the persisted transcript")
}

func TestNonNumericCapDisablesPruning(t *testing.T) {
	m, _ := newTestManager(t)
	settings := storage.DefaultSettings()
	settings.MaxMessages = "lots"
	require.NoError(t, m.UpdateSettings(settings))

	for i := 0; i < 150; i++ {
		require.NoError(t, m.Append(model.NewUserMessage("msg")))
	}
	assert.Len(t, m.Messages(), 150)
}

func TestRestartRestoresState(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewChatStoreWithDir(dir)
	require.NoError(t, err)

	m := NewManager(store)
	activeID := m.ActiveID()
	require.NoError(t, m.Rename(activeID, "Survivor"))
	require.NoError(t, m.Append(model.NewUserMessage("before restart")))

	// Same directory, fresh manager: the restart path.
	store2, err := storage.NewChatStoreWithDir(dir)
	require.NoError(t, err)
	m2 := NewManager(store2)

	assert.Equal(t, activeID, m2.ActiveID(), "active pointer survives restart")
	assert.Equal(t, "Survivor", m2.Active().Title)
	require.Len(t, m2.Messages(), 1)
	assert.Equal(t, "before restart", m2.Messages()[0].Content)
}

func TestListChatsNewestFirst(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Rename(m.ActiveID(), "older"))

	time.Sleep(2 * time.Millisecond)
	_, err := m.Create()
	require.NoError(t, err)
	require.NoError(t, m.Rename(m.ActiveID(), "newer"))

	items := m.ListChats("")
	require.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Title)
	assert.True(t, items[0].Active)
	assert.Equal(t, "older", items[1].Title)
}

func TestListChatsFilter(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Rename(m.ActiveID(), "Groceries"))
	require.NoError(t, m.Append(model.NewUserMessage("buy milk")))

	_, err := m.Create()
	require.NoError(t, err)
	require.NoError(t, m.Rename(m.ActiveID(), "Work"))

	assert.Len(t, m.ListChats("grocer"), 1, "caseless title match")
	assert.Len(t, m.ListChats("MILK"), 1, "caseless content match")
	assert.Len(t, m.ListChats("zzz"), 0)
	assert.Len(t, m.ListChats(""), 2, "empty query clears the filter")
}

func TestVisibleMessages(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Append(model.NewUserMessage("alpha topic")))
	require.NoError(t, m.Append(model.NewBotMessage("beta reply")))
	require.NoError(t, m.Append(model.NewUserMessage("another ALPHA mention")))

	assert.Equal(t, []int{0, 2}, m.VisibleMessages("alpha"))
	assert.Equal(t, []int{0, 1, 2}, m.VisibleMessages(""))
	assert.Empty(t, m.VisibleMessages("gamma"))
}

func TestStaleTranscriptDiscardedOnLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewChatStoreWithDir(dir)
	require.NoError(t, err)

	// Transcript points at a chat that is not in the collection.
	require.NoError(t, store.SaveTranscript("chat_ghost", []model.Message{
		model.NewUserMessage("orphaned"),
	}))

	m := NewManager(store)
	assert.NotEqual(t, "chat_ghost", m.ActiveID())
	for _, item := range m.ListChats("") {
		assert.NotEqual(t, "chat_ghost", item.ID, "ghost chat must not be resurrected")
	}
}
