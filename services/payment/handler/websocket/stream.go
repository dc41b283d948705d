package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/services/payment"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

// ActivityStreamHandler streams ledger events to websocket clients
type ActivityStreamHandler struct {
	paymentUC payment.PaymentUC
	upgrader  websocket.Upgrader
}

// NewActivityStreamHandler creates a new activity stream handler
func NewActivityStreamHandler(paymentUC payment.PaymentUC) *ActivityStreamHandler {
	return &ActivityStreamHandler{
		paymentUC: paymentUC,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleActivityStream upgrades the connection and forwards every ledger
// mutation to the client until it disconnects
func (h *ActivityStreamHandler) HandleActivityStream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("Failed to upgrade websocket connection",
			logger.Err(err))
		return err
	}

	sub := h.paymentUC.SubscribeActivities()
	defer h.paymentUC.UnsubscribeActivities(sub.ID())
	defer conn.Close()

	logger.Info("Activity stream client connected",
		logger.String("subscription_id", sub.ID().String()))

	// Reader goroutine: we never expect client messages, but reading is
	// required to process control frames and notice disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				return nil
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				logger.Debug("Activity stream write failed",
					logger.String("subscription_id", sub.ID().String()),
					logger.Err(err))
				return nil
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-done:
			logger.Info("Activity stream client disconnected",
				logger.String("subscription_id", sub.ID().String()),
				logger.Int64("dropped_events", sub.Dropped()))
			return nil
		}
	}
}
