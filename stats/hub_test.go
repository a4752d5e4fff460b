package stats

import (
	"encoding/json"
	"testing"
	"time"

	"passabola/models"
)

func TestHubBroadcastReachesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c1 := &Client{Send: make(chan []byte, 8)}
	c2 := &Client{Send: make(chan []byte, 8)}
	hub.register <- c1
	hub.register <- c2

	hub.Broadcast(models.AdminStats{TotalUsers: 7})

	for _, c := range []*Client{c1, c2} {
		select {
		case data := <-c.Send:
			var snap models.AdminStats
			if err := json.Unmarshal(data, &snap); err != nil {
				t.Fatalf("bad payload: %v", err)
			}
			if snap.TotalUsers != 7 {
				t.Fatalf("unexpected snapshot: %+v", snap)
			}
		case <-time.After(time.Second):
			t.Fatal("client never received the broadcast")
		}
	}
}

func TestHubDropsSlowConsumers(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	slow := &Client{Send: make(chan []byte)} // unbuffered, never drained
	hub.register <- slow

	hub.Broadcast(models.AdminStats{TotalUsers: 1})

	select {
	case _, ok := <-slow.Send:
		if ok {
			t.Fatal("slow consumer should have been dropped, not served")
		}
	case <-time.After(time.Second):
		t.Fatal("slow consumer channel was never closed")
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := &Client{Send: make(chan []byte, 1)}
	hub.register <- c
	hub.unregister <- c

	select {
	case _, ok := <-c.Send:
		if ok {
			t.Fatal("expected closed channel after unregister")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}
