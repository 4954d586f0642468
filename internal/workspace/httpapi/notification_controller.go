package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"hubble-workspace/internal/infra/async"
	"hubble-workspace/internal/infra/httpserver"
	"hubble-workspace/internal/workspace/domain"
	"hubble-workspace/internal/workspace/httpapi/internal"
	"hubble-workspace/internal/workspace/usecases"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NotificationController pushes every notification published on the broker
// to the connected websocket clients.
type NotificationController struct {
	broker       async.InternalBroker
	subscription async.Subscription
	clients      map[*websocket.Conn]bool
	clientsMux   sync.RWMutex
	register     chan *websocket.Conn
	unregister   chan *websocket.Conn
	ctx          context.Context
	cancel       context.CancelFunc
	done         chan struct{}
}

func NewNotificationController(broker async.InternalBroker) (*NotificationController, error) {
	subscription, err := broker.Subscribe(usecases.NotificationsTopic)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &NotificationController{
		broker:       broker,
		subscription: subscription,
		clients:      make(map[*websocket.Conn]bool),
		register:     make(chan *websocket.Conn),
		unregister:   make(chan *websocket.Conn),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}

	go c.run()

	return c, nil
}

var _ httpserver.Controller = (*NotificationController)(nil)

func (c *NotificationController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/notifications", c.handleWebSocket())
}

// Clients reports how many websocket clients are connected.
func (c *NotificationController) Clients() int {
	c.clientsMux.RLock()
	defer c.clientsMux.RUnlock()
	return len(c.clients)
}

func (c *NotificationController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		select {
		case c.register <- conn:
		case <-c.ctx.Done():
			conn.Close()
			return
		}

		go c.keepAlive(conn)
		go c.readClient(conn)
	}
}

// readClient discards client messages and unregisters the client once the
// connection breaks.
func (c *NotificationController) readClient(conn *websocket.Conn) {
	defer func() {
		select {
		case c.unregister <- conn:
		case <-c.ctx.Done():
		}
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read error", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (c *NotificationController) keepAlive(conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (c *NotificationController) run() {
	defer close(c.done)

	for {
		select {
		case <-c.ctx.Done():
			return

		case conn := <-c.register:
			c.clientsMux.Lock()
			c.clients[conn] = true
			c.clientsMux.Unlock()
			slog.Debug("notification client registered", slog.Int("total_clients", c.Clients()))

		case conn := <-c.unregister:
			c.drop(conn)
			slog.Debug("notification client unregistered", slog.Int("total_clients", c.Clients()))

		case msg, ok := <-c.subscription.Receiver:
			if !ok {
				return
			}
			notification, ok := msg.Value.(domain.Notification)
			if !ok {
				continue
			}
			c.broadcast(internal.ToNotificationMessage(msg.Event, notification))
		}
	}
}

func (c *NotificationController) broadcast(message internal.NotificationMessage) {
	c.clientsMux.RLock()
	conns := make([]*websocket.Conn, 0, len(c.clients))
	for conn := range c.clients {
		conns = append(conns, conn)
	}
	c.clientsMux.RUnlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(message); err != nil {
			slog.Warn("writing notification", slog.String("error", err.Error()))
			c.drop(conn)
		}
	}
}

func (c *NotificationController) drop(conn *websocket.Conn) {
	c.clientsMux.Lock()
	defer c.clientsMux.Unlock()

	if _, ok := c.clients[conn]; ok {
		delete(c.clients, conn)
		conn.Close()
	}
}

func (c *NotificationController) Shutdown() {
	slog.Info("shutting down notification controller")
	c.cancel()
	<-c.done

	if err := c.broker.Unsubscribe(usecases.NotificationsTopic, c.subscription); err != nil {
		slog.Warn("unsubscribing notifications", slog.String("error", err.Error()))
	}

	c.clientsMux.Lock()
	for conn := range c.clients {
		conn.Close()
		delete(c.clients, conn)
	}
	c.clientsMux.Unlock()
}
