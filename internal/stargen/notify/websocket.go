package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/keldric/stargen/internal/stargen"
)

// SystemBroadcaster fans freshly generated star systems out to connected
// WebSocket clients. Clients that fall behind or disconnect are dropped;
// generation never blocks on a slow watcher.
type SystemBroadcaster struct {
	mu         sync.RWMutex
	clients    map[*websocket.Conn]bool
	upgrader   websocket.Upgrader
	broadcast  chan *stargen.StarSystem
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	wg         sync.WaitGroup
}

// NewSystemBroadcaster creates a broadcaster and starts its fan-out
// goroutine.
func NewSystemBroadcaster() *SystemBroadcaster {
	b := &SystemBroadcaster{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *stargen.StarSystem, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	b.wg.Add(1)
	go b.run()

	return b
}

// RegisterClient adds a WebSocket client connection.
func (b *SystemBroadcaster) RegisterClient(conn *websocket.Conn) {
	select {
	case b.register <- conn:
	case <-b.done:
	}
}

// UnregisterClient removes a WebSocket client connection.
func (b *SystemBroadcaster) UnregisterClient(conn *websocket.Conn) {
	select {
	case b.unregister <- conn:
	case <-b.done:
	}
}

// Broadcast queues a system for delivery to every connected client.
func (b *SystemBroadcaster) Broadcast(ctx context.Context, sys *stargen.StarSystem) error {
	select {
	case <-b.done:
		return fmt.Errorf("broadcaster closed")
	default:
	}

	select {
	case b.broadcast <- sys:
		return nil
	case <-b.done:
		return fmt.Errorf("broadcaster closed")
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(1 * time.Second):
		return fmt.Errorf("broadcast queue full")
	}
}

// ClientCount reports the number of connected clients.
func (b *SystemBroadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

func (b *SystemBroadcaster) run() {
	defer b.wg.Done()
	for {
		select {
		case <-b.done:
			return

		case conn := <-b.register:
			if conn == nil {
				continue
			}
			b.mu.Lock()
			b.clients[conn] = true
			b.mu.Unlock()

		case conn := <-b.unregister:
			if conn == nil {
				continue
			}
			b.mu.Lock()
			if _, ok := b.clients[conn]; ok {
				delete(b.clients, conn)
				conn.Close()
			}
			b.mu.Unlock()

		case sys, ok := <-b.broadcast:
			if !ok {
				return
			}
			data, err := json.Marshal(sys)
			if err != nil {
				continue
			}

			// Snapshot the client set so writes happen outside the lock.
			b.mu.RLock()
			conns := make([]*websocket.Conn, 0, len(b.clients))
			for conn := range b.clients {
				conns = append(conns, conn)
			}
			b.mu.RUnlock()

			var toRemove []*websocket.Conn
			for _, conn := range conns {
				conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					toRemove = append(toRemove, conn)
					conn.Close()
				}
			}

			if len(toRemove) > 0 {
				b.mu.Lock()
				for _, conn := range toRemove {
					delete(b.clients, conn)
				}
				b.mu.Unlock()
			}
		}
	}
}

// Close drops all connections and stops the fan-out goroutine.
func (b *SystemBroadcaster) Close() error {
	close(b.done)

	b.mu.Lock()
	for conn := range b.clients {
		conn.Close()
		delete(b.clients, conn)
	}
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}

// Upgrader returns the WebSocket upgrader for HTTP handlers.
func (b *SystemBroadcaster) Upgrader() websocket.Upgrader {
	return b.upgrader
}
