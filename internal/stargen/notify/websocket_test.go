package notify

import (
	"context"
	"testing"
	"time"

	"github.com/keldric/stargen/internal/stargen"
)

func TestNewSystemBroadcaster(t *testing.T) {
	b := NewSystemBroadcaster()
	defer b.Close()

	if b == nil {
		t.Fatal("NewSystemBroadcaster returned nil")
	}

	if b.ClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", b.ClientCount())
	}
}

func TestSystemBroadcaster_Upgrader(t *testing.T) {
	b := NewSystemBroadcaster()
	defer b.Close()

	upgrader := b.Upgrader()
	if upgrader.ReadBufferSize == 0 {
		t.Error("Expected non-zero ReadBufferSize")
	}
	if upgrader.WriteBufferSize == 0 {
		t.Error("Expected non-zero WriteBufferSize")
	}
}

func TestSystemBroadcaster_Broadcast(t *testing.T) {
	b := NewSystemBroadcaster()
	defer b.Close()

	sys := &stargen.StarSystem{ID: "test-system", NumberOfStars: 1}

	// With no clients the event is consumed and dropped.
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := b.Broadcast(ctx, sys); err != nil {
		t.Errorf("Expected no error with no clients, got %v", err)
	}

	// A cancelled context may or may not error depending on timing,
	// but must not panic.
	ctx, cancel = context.WithTimeout(context.Background(), 0)
	cancel()
	_ = b.Broadcast(ctx, sys)
}

func TestSystemBroadcaster_Close(t *testing.T) {
	b := NewSystemBroadcaster()

	if err := b.Close(); err != nil {
		t.Errorf("Expected no error on close, got %v", err)
	}

	// Note: Close must only be called once; registration and broadcast
	// after Close are no-ops.
	if err := b.Broadcast(context.Background(), &stargen.StarSystem{ID: "late"}); err == nil {
		t.Error("Expected error broadcasting after close")
	}
}
