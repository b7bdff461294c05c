package push

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/langitrasa/takeout-app/models"
)

// Event types
const (
	EventNewOrder = "new_order"
	EventReminder = "order_reminder"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// PushHub menampung koneksi merchant (kasir/admin) untuk notifikasi realtime.
type PushHub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var pushHub = PushHub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	pushHub.mutex.Lock()
	defer pushHub.mutex.Unlock()
	pushHub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	pushHub.mutex.Lock()
	defer pushHub.mutex.Unlock()
	delete(pushHub.clients, conn)
	conn.Close()
}

// BroadcastNewOrder -> memberi tahu merchant ada order baru masuk antrian
func BroadcastNewOrder(order models.Order) {
	broadcast(Message{
		Event: EventNewOrder,
		Data: map[string]interface{}{
			"order_id": order.ID,
			"number":   order.Number,
			"content":  "new order " + order.Number,
		},
	})
}

// BroadcastReminder -> user menagih pesanan yang belum diterima merchant
func BroadcastReminder(order models.Order) {
	broadcast(Message{
		Event: EventReminder,
		Data: map[string]interface{}{
			"order_id": order.ID,
			"number":   order.Number,
			"content":  "reminder for order " + order.Number,
		},
	})
}

// broadcast -> fungsi internal untuk mengirim pesan, fire-and-forget
func broadcast(msg Message) {
	pushHub.mutex.Lock()
	defer pushHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling push message: %v", err)
		return
	}

	for conn := range pushHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending push message to client: %v", err)
			continue
		}
	}
}
