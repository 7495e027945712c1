// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the remote RAG chat server.
package api

// Message is one entry of the outbound message history. The server only
// understands the two wire roles "user" and "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the JSON body for POST /chat.
type ChatRequest struct {
	Messages []Message `json:"messages"`
	Language string    `json:"language,omitempty"`
}

// ChatResponse is the JSON body of a /chat reply. Exactly one of Response
// or Error is expected to be set.
type ChatResponse struct {
	Response *string `json:"response,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// HealthResponse is the JSON body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewUserMessage creates an outbound user message.
func NewUserMessage(content string) Message {
	return Message{Role: "user", Content: content}
}

// NewAssistantMessage creates an outbound assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: "assistant", Content: content}
}
