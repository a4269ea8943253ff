package ws

import (
	"sync"

	"jobportal_backend/internal/logger"
)

// Manager tracks connected clients keyed by user ID and fans out
// notification pushes to them.
type Manager struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan any
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan any),
	}
}

// Run processes register/unregister/broadcast events. Call it in its
// own goroutine.
func (m *Manager) Run() {
	log := logger.GetLogger()

	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if m.clients[client.UserID] == nil {
				m.clients[client.UserID] = make(map[*Client]bool)
			}
			m.clients[client.UserID][client] = true
			m.mu.Unlock()
			log.Debug("websocket client registered", "user_id", client.UserID)

		case client := <-m.unregister:
			m.mu.Lock()
			if conns, ok := m.clients[client.UserID]; ok {
				if _, ok := conns[client]; ok {
					close(client.Send)
					delete(conns, client)
					if len(conns) == 0 {
						delete(m.clients, client.UserID)
					}
					log.Debug("websocket client unregistered", "user_id", client.UserID)
				}
			}
			m.mu.Unlock()

		case message := <-m.broadcast:
			m.broadcastAll(message)
		}
	}
}

// Broadcast sends a message to every connected client.
func (m *Manager) Broadcast(message any) {
	m.broadcast <- message
}

func (m *Manager) broadcastAll(message any) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, conns := range m.clients {
		for client := range conns {
			m.trySend(client, message)
		}
	}
}

// SendToUser pushes a message to every connection the user has open.
// Unreachable users are skipped silently.
func (m *Manager) SendToUser(userID string, message any) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for client := range m.clients[userID] {
		m.trySend(client, message)
	}
}

// trySend never blocks; a client with a full send buffer is dropped.
func (m *Manager) trySend(client *Client, message any) {
	select {
	case client.Send <- message:
	default:
		go func() {
			m.unregister <- client
		}()
		logger.GetLogger().Warn("dropping websocket client with full send buffer",
			"user_id", client.UserID)
	}
}

// ClientCount returns the number of open connections.
func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, conns := range m.clients {
		count += len(conns)
	}
	return count
}

// IsUserConnected reports whether the user has at least one open
// connection.
func (m *Manager) IsUserConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[userID]) > 0
}
