package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/latestcomment/ballot-export/static"
)

// NewApp builds the fiber app with the page templates and all routes.
func NewApp(h *Handler, ws *WebSocketHandler) *fiber.App {
	engine := html.NewFileSystem(http.FS(static.FS), ".html")
	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
	})
	app.Use(logger.New())

	app.Get("/", h.LookupPage)
	app.Post("/ballots", h.TeamBallots)
	app.Get("/ballots/:team/:n", h.BallotPage)
	app.Get("/ballots/:team/:n/pdf", h.DownloadPDF)
	app.Get("/ws/lookup", ws.WebSocketMiddleware, websocket.New(ws.HandleWebSocket))
	return app
}
