package events

import (
	"encoding/json"
	"testing"
)

func TestChatEventRoundTrip(t *testing.T) {
	evt := ChatEvent{
		RequestID: "req-001",
		SessionID: "default",
		Lang:      "en",
		Mode:      "retrieval",
		Snippets:  2,
		Success:   true,
		Timestamp: "2025-03-01T09:00:00Z",
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded ChatEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != evt {
		t.Errorf("round trip mismatch: %+v vs %+v", decoded, evt)
	}
}

func TestChatEventFieldNames(t *testing.T) {
	data, err := json.Marshal(ChatEvent{SessionID: "s", Mode: "bare"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"request_id", "session_id", "lang", "mode", "snippets", "success", "timestamp"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("expected field %q in payload", key)
		}
	}
}

func TestNilPublisherIsNoop(t *testing.T) {
	var p *Publisher
	if err := p.Publish(SubjectAnswered, ChatEvent{}); err != nil {
		t.Errorf("nil publisher should be a no-op, got %v", err)
	}
	p.Close()
}
