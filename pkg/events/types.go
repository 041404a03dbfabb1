package events

import (
	"encoding/json"
	"time"
)

// EventType identifies the kind of event flowing through the system.
type EventType string

const (
	VoicesListed     EventType = "voice.catalog_listed"
	VoiceSynthesized EventType = "voice.synthesized"
	PreviewServed    EventType = "voice.preview_served"
	SystemError      EventType = "error"
)

// Envelope is the standard event wrapper published to the event bus.
type Envelope struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Source    string            `json:"source"`
	Voice     string            `json:"voice,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Data      json.RawMessage   `json:"data"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// VoicesListedData is the payload for voice.catalog_listed events.
type VoicesListedData struct {
	RawCount      int `json:"raw_count"`
	RetainedCount int `json:"retained_count"`
}

// VoiceSynthesizedData is the payload for voice.synthesized events.
type VoiceSynthesizedData struct {
	LanguageCode string `json:"language_code"`
	TextChars    int    `json:"text_chars"`
	AudioBytes   int    `json:"audio_bytes"`
}

// PreviewServedData is the payload for voice.preview_served events.
type PreviewServedData struct {
	FileName   string `json:"file_name"`
	AudioBytes int    `json:"audio_bytes"`
}
