package telegramexport

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Export mirrors the JSON produced by Telegram's channel export. Only the
// fields needed to pull post texts are mapped.
type Export struct {
	Name     string    `json:"name"`
	ID       int64     `json:"id"`
	Messages []Message `json:"messages"`
}

type Message struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Date string `json:"date"`
	// Text is either a plain string or an array of strings and
	// {"type": ..., "text": ...} entity objects.
	Text json.RawMessage `json:"text"`
}

func Parse(r io.Reader) (*Export, error) {
	var export Export
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decode telegram export: %w", err)
	}
	return &export, nil
}

// Texts returns the flattened text of every regular message, in export
// order, skipping service messages and messages with no text (photos,
// stickers). The result is the flat corpus list the store loads.
func (e *Export) Texts() []string {
	texts := make([]string, 0, len(e.Messages))
	for _, msg := range e.Messages {
		if msg.Type == "service" {
			continue
		}
		text := flattenText(msg.Text)
		if strings.TrimSpace(text) == "" {
			continue
		}
		texts = append(texts, text)
	}
	return texts
}

// flattenText collapses Telegram's rich-text entity array into one string.
// Unknown shapes degrade to empty rather than failing the whole export.
func flattenText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return ""
	}

	var b strings.Builder
	for _, part := range parts {
		var s string
		if err := json.Unmarshal(part, &s); err == nil {
			b.WriteString(s)
			continue
		}
		var entity struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(part, &entity); err == nil {
			b.WriteString(entity.Text)
		}
	}
	return b.String()
}
