package ws

import (
	"encoding/json"
	"testing"
)

func TestHub_Broadcast(t *testing.T) {
	h := NewHub()

	a := &Client{UserID: 1, Send: make(chan []byte, 1), hub: h}
	b := &Client{UserID: 2, Send: make(chan []byte, 1), hub: h}
	h.Register(a)
	h.Register(b)

	h.Broadcast(DonationEvent{Type: "donation", ProjectID: 5, Amount: 20, Progress: 105})

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.Send:
			var ev DonationEvent
			if err := json.Unmarshal(msg, &ev); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if ev.ProjectID != 5 || ev.Progress != 105 {
				t.Fatalf("unexpected event: %+v", ev)
			}
		default:
			t.Fatalf("client %d did not receive event", c.UserID)
		}
	}
}

func TestHub_BroadcastSkipsFullClient(t *testing.T) {
	h := NewHub()
	c := &Client{UserID: 1, Send: make(chan []byte, 1), hub: h}
	h.Register(c)

	h.Broadcast(ProjectCompletedEvent{Type: "project_completed", ProjectID: 1})
	// буфер полон — второе событие просто теряется, без блокировки
	h.Broadcast(ProjectCompletedEvent{Type: "project_completed", ProjectID: 2})

	if got := len(c.Send); got != 1 {
		t.Fatalf("queued messages = %d; want 1", got)
	}
}

func TestHub_Unregister(t *testing.T) {
	h := NewHub()
	c := &Client{UserID: 1, Send: make(chan []byte, 1), hub: h}
	h.Register(c)
	if h.ClientCount() != 1 {
		t.Fatalf("count = %d; want 1", h.ClientCount())
	}
	h.Unregister(c)
	if h.ClientCount() != 0 {
		t.Fatalf("count = %d; want 0", h.ClientCount())
	}
}
