package http

import (
	"context"
	"time"

	"workforce-api/internal/shared/eventbus"
	"workforce-api/internal/shared/logger"
	"workforce-api/internal/workforce/domain/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// wsSendBuffer bounds how many change events a slow client may lag behind
// before its connection is dropped.
const wsSendBuffer = 64

// ChangeFeedHandler streams every entity change to websocket subscribers.
type ChangeFeedHandler struct {
	bus eventbus.Bus
	log logger.Logger
}

// NewChangeFeedHandler creates the websocket change-feed handler.
func NewChangeFeedHandler(bus eventbus.Bus, log logger.Logger) *ChangeFeedHandler {
	return &ChangeFeedHandler{bus: bus, log: log.WithComponent("change_feed")}
}

// RegisterRoutes mounts the websocket upgrade endpoint.
func (h *ChangeFeedHandler) RegisterRoutes(router fiber.Router) {
	router.Use("/ws/changes", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws/changes", websocket.New(h.stream))
}

type changeMessage struct {
	ID          string      `json:"id"`
	Entity      string      `json:"entity"`
	BusinessKey string      `json:"businessKey"`
	Change      string      `json:"change"`
	Data        interface{} `json:"data,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}

// subscribeChanges buffers wildcard change events for one client. When the
// buffer is full the event is dropped so publishers never block on a slow
// consumer.
func (h *ChangeFeedHandler) subscribeChanges() (<-chan model.ChangeEvent, func()) {
	events := make(chan model.ChangeEvent, wsSendBuffer)
	unsubscribe := h.bus.Subscribe(eventbus.Wildcard, func(_ context.Context, event eventbus.Event) error {
		change, ok := event.(model.ChangeEvent)
		if !ok {
			return nil
		}
		select {
		case events <- change:
		default:
			h.log.Warnf("Dropping change event %s for slow websocket client", change.ID)
		}
		return nil
	})
	return events, unsubscribe
}

func (h *ChangeFeedHandler) stream(conn *websocket.Conn) {
	events, unsubscribe := h.subscribeChanges()
	defer unsubscribe()
	defer conn.Close()

	h.log.Infof("Websocket client connected from %s", conn.RemoteAddr())

	// The read loop exists only to notice the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			h.log.Infof("Websocket client disconnected from %s", conn.RemoteAddr())
			return
		case change := <-events:
			msg := changeMessage{
				ID:          change.ID,
				Entity:      change.Entity,
				BusinessKey: change.BusinessKey,
				Change:      string(change.Change),
				Data:        change.Data,
				Timestamp:   change.Timestamp,
			}
			if err := conn.WriteJSON(msg); err != nil {
				h.log.Warnf("Failed to write change event to websocket: %v", err)
				return
			}
		}
	}
}
