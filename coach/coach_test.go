package coach

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func newTestAssistant() *Assistant {
	a := NewAssistant()
	a.pick = func(replies []string) string { return replies[0] }
	return a
}

func TestKeywordReplies(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant()

	reply, err := a.Ask(ctx, "u1", "como montar meu TREINO da semana?")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if !strings.Contains(strings.ToLower(reply), "treino") {
		t.Fatalf("expected a training reply, got %q", reply)
	}

	reply, err = a.Ask(ctx, "u1", "sinto dor no joelho")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if !strings.Contains(reply, "Prevenção") {
		t.Fatalf("expected an injury reply, got %q", reply)
	}
}

func TestUnmatchedQuestionGetsGenericReply(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant()

	reply, err := a.Ask(ctx, "u1", "qual a capital da França?")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if reply != genericReplies[0] {
		t.Fatalf("expected the generic reply, got %q", reply)
	}
}

func TestEmptyQuestionFallsBack(t *testing.T) {
	a := newTestAssistant()
	if got := a.reply("   "); got != fallbackReply {
		t.Fatalf("blank question should apologize, got %q", got)
	}
}

func TestCancelledContextSurfaces(t *testing.T) {
	a := newTestAssistant()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.Ask(ctx, "u1", "treino"); err == nil {
		t.Fatal("cancelled context should surface an error")
	}
}

func TestNewQuestionReplacesInflight(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant()

	// simulate a stuck in-flight question
	stuck, stuckCancel := context.WithCancel(ctx)
	a.mu.Lock()
	a.inflight["u1"] = &call{cancel: stuckCancel}
	a.mu.Unlock()

	reply, err := a.Ask(ctx, "u1", "treino")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if reply == "" {
		t.Fatal("expected a reply")
	}
	select {
	case <-stuck.Done():
	default:
		t.Fatal("the previous in-flight question should have been cancelled")
	}
}

// A question that finishes after being superseded must not take the
// newer question's registration down with it.
func TestFinishedQuestionReleasesOnlyItsOwnEntry(t *testing.T) {
	ctx := context.Background()
	a := NewAssistant()

	var mu sync.Mutex
	calls := 0
	firstStarted := make(chan struct{})
	secondStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	releaseSecond := make(chan struct{})
	a.pick = func(replies []string) string {
		mu.Lock()
		n := calls
		calls++
		mu.Unlock()
		switch n {
		case 0:
			close(firstStarted)
			<-releaseFirst
		case 1:
			close(secondStarted)
			<-releaseSecond
		}
		return replies[0]
	}

	firstDone := make(chan error, 1)
	go func() {
		_, err := a.Ask(ctx, "u1", "treino")
		firstDone <- err
	}()
	<-firstStarted

	secondDone := make(chan error, 1)
	go func() {
		_, err := a.Ask(ctx, "u1", "treino")
		secondDone <- err
	}()
	<-secondStarted

	// let the superseded first question finish and clean up
	close(releaseFirst)
	select {
	case err := <-firstDone:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("superseded question should be cancelled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("first question never returned")
	}

	a.mu.Lock()
	_, ok := a.inflight["u1"]
	a.mu.Unlock()
	if !ok {
		t.Fatal("second question's registration was removed by the first question's cleanup")
	}

	// a third question must still cancel the second
	reply, err := a.Ask(ctx, "u1", "treino")
	if err != nil {
		t.Fatalf("third question failed: %v", err)
	}
	if reply == "" {
		t.Fatal("expected a reply")
	}

	close(releaseSecond)
	select {
	case err := <-secondDone:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("second question should have been cancelled by the third, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("second question never returned")
	}
}
