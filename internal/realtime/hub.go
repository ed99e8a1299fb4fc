package realtime

import (
	"sync"

	"go-event-management/pkg/logger"

	"go.uber.org/zap"
)

// Notifier 供 service 層推播使用。送出即忘：不重試、不排隊、不保證送達。
type Notifier interface {
	// NotifyUser 推播給已註冊的單一使用者，回傳是否實際送出
	NotifyUser(userID int, event string, payload interface{}) bool
	// Broadcast 推播給所有連線（含未註冊者）
	Broadcast(event string, payload interface{})
}

// Envelope 對外推播的訊息格式
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub 管理連線與使用者註冊表。一個使用者最多對應一條已註冊連線，
// 重複註冊以最後一次為準。取代原本的全域 socket 狀態，由 main 注入。
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	registered map[int]*Client
	log        *zap.Logger
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		registered: make(map[int]*Client),
		log:        logger.WithComponent("hub"),
	}
}

func (h *Hub) add(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Register 將連線綁定到使用者。在客戶端送出 register 事件前，
// 針對該使用者的推播無法送達。
func (h *Hub) Register(userID int, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client.userID = userID
	h.registered[userID] = client
	h.log.Info("User registered", zap.Int("user_id", userID))
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, client)
	// 只在該使用者目前綁定的還是這條連線時解除註冊
	if client.userID != 0 && h.registered[client.userID] == client {
		delete(h.registered, client.userID)
	}
}

// ConnectionFor 回傳使用者目前註冊的連線，沒有則為 nil
func (h *Hub) ConnectionFor(userID int) *Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.registered[userID]
}

func (h *Hub) NotifyUser(userID int, event string, payload interface{}) bool {
	client := h.ConnectionFor(userID)
	if client == nil {
		h.log.Info("User is not currently connected. Notification not sent.",
			zap.Int("user_id", userID), zap.String("event", event))
		return false
	}

	client.enqueue(Envelope{Event: event, Data: payload})
	return true
}

func (h *Hub) Broadcast(event string, payload interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	envelope := Envelope{Event: event, Data: payload}
	for client := range h.clients {
		client.enqueue(envelope)
	}
}
