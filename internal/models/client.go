package models

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Client is one websocket connection asking for team lookups.
type Client struct {
	Id      uuid.UUID       `json:"clientid"`
	Conn    *websocket.Conn `json:"-"`
	Lookups int             `json:"lookups"`
}
