package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/latestcomment/ballot-export/internal/models"
	"github.com/latestcomment/ballot-export/internal/services"
)

type WebSocketHandler struct {
	Ballots *services.BallotService
}

func NewWebSocketHandler(ballots *services.BallotService) *WebSocketHandler {
	return &WebSocketHandler{Ballots: ballots}
}

func (h *WebSocketHandler) WebSocketMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket answers every text frame, read as a team id, with that
// team's ballot summaries or the lookup error.
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	defer func() {
		_ = c.Close()
	}()

	client := &models.Client{Id: uuid.New(), Conn: c}
	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			return
		}
		client.Lookups++
		if err := client.Conn.WriteJSON(h.lookup(string(data))); err != nil {
			return
		}
	}
}

func (h *WebSocketHandler) lookup(raw string) models.Message {
	teamID, ballots, err := h.Ballots.Lookup(context.Background(), services.StaticInput(raw))
	if err != nil {
		return models.Message{
			Type:      "error",
			TeamID:    teamID,
			Text:      services.UserMessage(err, teamID),
			Timestamp: time.Now(),
		}
	}
	return models.Message{
		Type:      "ballots",
		TeamID:    teamID,
		Ballots:   h.Ballots.Summaries(ballots),
		Timestamp: time.Now(),
	}
}
