package activity

import (
	"context"
	"fmt"
	"testing"

	"passabola/store"
)

func TestAdminFeedCapsAtFifteen(t *testing.T) {
	ctx := context.Background()
	l := NewLog(store.NewMemory())

	for i := 0; i < 16; i++ {
		l.RecordAdmin(ctx, fmt.Sprintf("evento %d", i), "", "⚽")
	}

	got := l.RecentAdmin(ctx)
	if len(got) != 15 {
		t.Fatalf("admin feed should cap at 15, got %d", len(got))
	}
	if got[0].Title != "evento 15" {
		t.Fatalf("newest entry should be first, got %q", got[0].Title)
	}
	if got[14].Title != "evento 1" {
		t.Fatalf("oldest surviving entry should be 'evento 1', got %q", got[14].Title)
	}
}

func TestUserFeedsAreScopedAndCapped(t *testing.T) {
	ctx := context.Background()
	l := NewLog(store.NewMemory())

	for i := 0; i < 12; i++ {
		l.RecordUser(ctx, "u1", fmt.Sprintf("jogo %d", i), "", "")
	}
	l.RecordUser(ctx, "u2", "outra conta", "", "")

	u1 := l.RecentUser(ctx, "u1")
	if len(u1) != 10 {
		t.Fatalf("user feed should cap at 10, got %d", len(u1))
	}
	if u1[0].Title != "jogo 11" {
		t.Fatalf("newest entry should be first, got %q", u1[0].Title)
	}

	u2 := l.RecentUser(ctx, "u2")
	if len(u2) != 1 || u2[0].Title != "outra conta" {
		t.Fatalf("feeds should not leak across accounts: %+v", u2)
	}
}

func TestRecordDefaultsIcon(t *testing.T) {
	ctx := context.Background()
	l := NewLog(store.NewMemory())

	l.RecordAdmin(ctx, "sem ícone", "", "")
	got := l.RecentAdmin(ctx)
	if got[0].Icon != "info-circle" {
		t.Fatalf("expected default icon, got %q", got[0].Icon)
	}
}
