package websocket

import (
	"log"
	"sync"

	"github.com/adamzur/lesson_tutor/models"
	"github.com/adamzur/lesson_tutor/services"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type MessagePayload struct {
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.Message)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case message := <-Broadcast:
			participantIDs, err := services.ThreadParticipants(message.ConversationID)
			if err != nil {
				log.Printf("Error fetching participants for conversation %s: %v", message.ConversationID, err)
				continue
			}

			clientsMu.RLock()
			for _, participantID := range participantIDs {
				if conn, ok := clients[participantID]; ok {
					if err := conn.WriteJSON(message); err != nil {
						log.Printf("Error broadcasting to client %s: %v", participantID, err)
					}
				}
			}
			clientsMu.RUnlock()
		}
	}
}
