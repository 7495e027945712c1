// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/ragchat-tui/internal/model"
	"github.com/jeranaias/ragchat-tui/internal/storage"
	"github.com/jeranaias/ragchat-tui/internal/ui/styles"
)

func newTestRenderer(settings storage.Settings) *Renderer {
	return New(styles.NewTheme(100, 40), settings, 100)
}

func TestMessageContainsContent(t *testing.T) {
	r := newTestRenderer(storage.DefaultSettings())

	out := r.Message(model.NewUserMessage("hello world"))
	if !strings.Contains(out, "hello world") {
		t.Error("rendered message should contain the content")
	}
}

func TestBotContentStripsMarkup(t *testing.T) {
	r := newTestRenderer(storage.DefaultSettings())

	out := r.Message(model.NewBotMessage(`before <script>alert("x")</script> after`))
	if strings.Contains(out, "<script>") || strings.Contains(out, "alert") {
		t.Error("markup must be stripped from server replies")
	}
	if !strings.Contains(out, "before") || !strings.Contains(out, "after") {
		t.Error("surrounding text must survive sanitization")
	}
}

func TestBotContentKeepsLiteralCharacters(t *testing.T) {
	r := newTestRenderer(storage.DefaultSettings())

	out := r.Message(model.NewBotMessage("use x < 10 && y > 2"))
	if strings.Contains(out, "&lt;") || strings.Contains(out, "&amp;") {
		t.Error("entities must be unescaped back to literal text")
	}
}

func TestErrorMessageUsesLocalizedPrefix(t *testing.T) {
	settings := storage.DefaultSettings()
	settings.Language = "de"
	r := newTestRenderer(settings)

	out := r.Message(model.NewErrorMessage("connection refused"))
	if !strings.Contains(out, "Ein Fehler ist aufgetreten") {
		t.Errorf("error prefix should be localized, got %q", out)
	}
	if !strings.Contains(out, "connection refused") {
		t.Error("error detail missing")
	}
}

func TestTimestampFollowsSettings(t *testing.T) {
	msg := model.Message{
		Role:      model.RoleUser,
		Content:   "hi",
		Timestamp: time.Date(2025, 6, 1, 13, 5, 0, 0, time.UTC),
	}

	settings := storage.DefaultSettings()
	settings.TimestampFormat = storage.Timestamp24Hour
	r := newTestRenderer(settings)
	if out := r.Message(msg); !strings.Contains(out, "13:05") {
		t.Error("24-hour format not applied")
	}

	settings.TimestampFormat = storage.Timestamp12Hour
	r.SetSettings(settings)
	if out := r.Message(msg); !strings.Contains(out, "1:05 PM") {
		t.Error("12-hour format not applied")
	}
}

func TestTranscriptSpacing(t *testing.T) {
	msgs := []model.Message{
		model.NewUserMessage("one"),
		model.NewBotMessage("two"),
	}

	compact := storage.DefaultSettings()
	compact.MessageSpacing = "compact"
	spacious := storage.DefaultSettings()
	spacious.MessageSpacing = "extra-spacious"

	rc := newTestRenderer(compact)
	rs := newTestRenderer(spacious)

	compactLines := strings.Count(rc.Transcript(msgs), "\n")
	spaciousLines := strings.Count(rs.Transcript(msgs), "\n")
	if spaciousLines <= compactLines {
		t.Errorf("spacious (%d lines) should exceed compact (%d lines)", spaciousLines, compactLines)
	}
}

func TestCodeBlockRendering(t *testing.T) {
	r := newTestRenderer(storage.DefaultSettings())

	content := "Try this:\n```go\nfmt.Println(\"hi\")\n```\nDone."
	out := r.Message(model.NewBotMessage(content))

	if !strings.Contains(out, "Println") {
		t.Error("code content missing from render")
	}
	if !strings.Contains(out, "Try this:") || !strings.Contains(out, "Done.") {
		t.Error("prose around code block missing")
	}
}

func TestUnclosedCodeBlockStillRenders(t *testing.T) {
	segments := splitFences("text\n```python\nprint(1)")
	if len(segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(segments))
	}
	if !segments[1].isCode || segments[1].language != "python" {
		t.Errorf("unclosed fence should still be a code segment: %+v", segments[1])
	}
}

func TestInlineCode(t *testing.T) {
	out := applyInlineCode("run `go test` locally")
	if strings.Contains(out, "`") {
		t.Error("matched backticks should be consumed")
	}
	if !strings.Contains(out, "go test") {
		t.Error("code span text missing")
	}

	// Unmatched backtick is literal.
	if got := applyInlineCode("odd ` tick"); !strings.Contains(got, "`") {
		t.Error("unmatched backtick should stay literal")
	}
}

func TestThinkingIndicator(t *testing.T) {
	r := newTestRenderer(storage.DefaultSettings())
	if !strings.Contains(r.Thinking(3), "Thinking...") {
		t.Errorf("Thinking(3) = %q", r.Thinking(3))
	}

	settings := storage.DefaultSettings()
	settings.Language = "fr"
	r.SetSettings(settings)
	if !strings.Contains(r.Thinking(0), "Réflexion") {
		t.Errorf("localized thinking label missing: %q", r.Thinking(0))
	}
}

func TestBubbleWidthScalesWithFontSize(t *testing.T) {
	small := storage.DefaultSettings()
	small.FontSize = "tiny"
	large := storage.DefaultSettings()
	large.FontSize = "huge"

	rs := newTestRenderer(small)
	rl := newTestRenderer(large)

	if rs.bubbleWidth() >= rl.bubbleWidth() {
		t.Errorf("tiny width %d should be below huge width %d", rs.bubbleWidth(), rl.bubbleWidth())
	}
}
