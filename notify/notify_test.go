package notify

import (
	"context"
	"errors"
	"testing"

	"passabola/models"
	"passabola/store"
)

func TestSendValidatesAndDefaults(t *testing.T) {
	ctx := context.Background()
	o := NewOutbox(store.NewMemory())

	if _, err := o.Send(ctx, models.Notification{Title: " ", Message: "x"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank title should fail, got %v", err)
	}

	sent, err := o.Send(ctx, models.Notification{Title: "Aviso", Message: "Jogo confirmado"})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if sent.Type != "info" || sent.Target != "all" {
		t.Fatalf("defaults not applied: %+v", sent)
	}
	if sent.ID == "" || sent.SentAt.IsZero() || sent.Read {
		t.Fatalf("send should stamp the notification: %+v", sent)
	}
}

func TestForFiltersByTarget(t *testing.T) {
	ctx := context.Background()
	o := NewOutbox(store.NewMemory())

	o.Send(ctx, models.Notification{Title: "geral", Message: "m", Target: "all"})
	o.Send(ctx, models.Notification{Title: "só u1", Message: "m", Target: "u1"})
	o.Send(ctx, models.Notification{Title: "só u2", Message: "m", Target: "u2"})

	u1 := o.For(ctx, "u1")
	if len(u1) != 2 {
		t.Fatalf("u1 should see broadcast + own, got %+v", u1)
	}
	for _, n := range u1 {
		if n.Target == "u2" {
			t.Fatalf("u1 should not see u2's notification: %+v", n)
		}
	}
	if len(o.All(ctx)) != 3 {
		t.Fatal("admin view should see everything")
	}
}

func TestNewestFirst(t *testing.T) {
	ctx := context.Background()
	o := NewOutbox(store.NewMemory())

	o.Send(ctx, models.Notification{Title: "primeira", Message: "m"})
	o.Send(ctx, models.Notification{Title: "segunda", Message: "m"})

	got := o.All(ctx)
	if got[0].Title != "segunda" {
		t.Fatalf("newest notification should be first, got %q", got[0].Title)
	}
}

func TestMarkReadAndDelete(t *testing.T) {
	ctx := context.Background()
	o := NewOutbox(store.NewMemory())

	sent, _ := o.Send(ctx, models.Notification{Title: "Aviso", Message: "m"})

	if err := o.MarkRead(ctx, sent.ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if got := o.All(ctx); !got[0].Read {
		t.Fatal("notification should be marked read")
	}
	if err := o.MarkRead(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := o.Delete(ctx, sent.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := o.Delete(ctx, sent.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
}
