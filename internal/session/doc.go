// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the chat-session state machine.
//
// A Manager tracks the chat collection and the single active chat, and
// keeps both persisted stores (the collection and the active-transcript
// cache) in step with every mutation. Invariants it maintains:
//
//   - Exactly one chat is active at all times. Deleting the active chat
//     promotes the newest remaining chat, or creates a fresh one when the
//     collection is empty.
//   - Messages append in order and are immutable once appended, except for
//     explicit rollback of a just-sent user message after a failed send.
//   - View-only error messages never reach either persisted store.
//
// The Manager is deliberately transport-free: sending requests and
// cancellation live in the request package.
package session
