package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// The hub fans operational events out to connected staff dashboards.
// Today the only event is a finished document render.

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type RenderEvent struct {
	Type       string    `json:"type"`
	BookingID  uuid.UUID `json:"booking_id"`
	ClientName string    `json:"client_name"`
	Lang       string    `json:"lang"`
	Filename   string    `json:"filename"`
	ArchiveURL string    `json:"archive_url,omitempty"`
	RenderedAt time.Time `json:"rendered_at"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Events = make(chan RenderEvent, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Dashboard client connected: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Dashboard client disconnected: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Events:
			broadcast(event)
		}
	}
}

func broadcast(event RenderEvent) {
	clientsMu.RLock()
	var stale []uuid.UUID
	for userID, conn := range clients {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("Error sending event to client %s: %v", userID, err)
			conn.Close()
			stale = append(stale, userID)
		}
	}
	clientsMu.RUnlock()

	if len(stale) > 0 {
		clientsMu.Lock()
		for _, userID := range stale {
			delete(clients, userID)
		}
		clientsMu.Unlock()
	}
}

// NotifyDocumentRendered publishes a render event without ever blocking
// the request path; the event is dropped when the hub is saturated.
func NotifyDocumentRendered(bookingID uuid.UUID, clientName, lang, filename, archiveURL string) {
	event := RenderEvent{
		Type:       "document.rendered",
		BookingID:  bookingID,
		ClientName: clientName,
		Lang:       lang,
		Filename:   filename,
		ArchiveURL: archiveURL,
		RenderedAt: time.Now(),
	}
	select {
	case Events <- event:
	default:
		log.Println("⚠️ Event hub saturated, dropping render notification")
	}
}
