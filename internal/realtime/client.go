package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// REST API 已開放 CORS，websocket 端維持一致
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client 一條 websocket 連線。userID 在收到 register 事件前為 0。
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan Envelope
	done   chan struct{}
	userID int
}

// inboundMessage 客戶端送進來的事件
type inboundMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// HandleWS 升級連線並啟動讀寫迴圈，路由註冊在 GET /ws
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("Failed to upgrade connection", zap.Error(err))
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan Envelope, sendBufferSize),
		done: make(chan struct{}),
	}
	h.add(client)

	go client.writePump()
	client.readPump()
}

// enqueue 將訊息放入送出佇列，佇列滿了直接丟棄（不阻塞推播方）
func (c *Client) enqueue(envelope Envelope) {
	select {
	case c.send <- envelope:
	default:
	}
}

func (c *Client) readPump() {
	// send channel 不關閉：移除註冊後仍可能有推播方持有這條連線，
	// 改以 done 通知 writePump 結束
	defer func() {
		c.hub.remove(c)
		close(c.done)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg inboundMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Warn("Unexpected close", zap.Error(err))
			}
			return
		}
		c.handleInbound(msg)
	}
}

func (c *Client) handleInbound(msg inboundMessage) {
	switch msg.Event {
	case "register":
		var userID int
		if err := json.Unmarshal(msg.Data, &userID); err != nil {
			c.hub.log.Warn("Invalid register payload", zap.Error(err))
			return
		}
		c.hub.Register(userID, c)

	case "sendMessage":
		// 聊天訊息轉發給所有連線
		c.hub.Broadcast("receiveMessage", msg.Data)

	case "bookingConfirmed":
		c.hub.Broadcast("bookingNotification", msg.Data)

	default:
		c.hub.log.Warn("Unknown inbound event", zap.String("event", msg.Event))
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case envelope := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(envelope); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
