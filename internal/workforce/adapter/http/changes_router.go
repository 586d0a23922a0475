package http

import (
	"workforce-api/internal/workforce/domain/repository"

	"github.com/gofiber/fiber/v2"
)

// changeHistoryDefaultLimit bounds a replay request that names no limit.
const (
	changeHistoryDefaultLimit = 50
	changeHistoryMaxLimit     = 1000
)

// ChangeHistoryHandler serves recent change events from the durable store,
// for consumers that were not connected to the websocket feed when a write
// happened. The store is nil when Redis is not configured.
type ChangeHistoryHandler struct {
	store repository.ChangeEventStore
}

// NewChangeHistoryHandler creates the change-history handler.
func NewChangeHistoryHandler(store repository.ChangeEventStore) *ChangeHistoryHandler {
	return &ChangeHistoryHandler{store: store}
}

// RegisterRoutes mounts the replay endpoint.
func (h *ChangeHistoryHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/changes/:entity", h.Recent)
}

// Recent returns the newest change events for one entity, oldest first.
func (h *ChangeHistoryHandler) Recent(c *fiber.Ctx) error {
	if h.store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Change history is not configured",
		})
	}

	limit := c.QueryInt("limit", changeHistoryDefaultLimit)
	if limit <= 0 || limit > changeHistoryMaxLimit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be between 1 and 1000",
		})
	}

	entity := c.Params("entity")
	events, err := h.store.Recent(c.UserContext(), entity, int64(limit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"entity": entity,
		"events": events,
		"count":  len(events),
	})
}
