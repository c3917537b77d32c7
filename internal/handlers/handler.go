package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/latestcomment/ballot-export/internal/models"
	"github.com/latestcomment/ballot-export/internal/services"
)

type Handler struct {
	Ballots       *services.BallotService
	Exporter      services.Exporter
	ExportOptions services.ExportOptions
}

func NewHandler(ballots *services.BallotService, exporter services.Exporter, opts services.ExportOptions) *Handler {
	return &Handler{Ballots: ballots, Exporter: exporter, ExportOptions: opts}
}

func (h *Handler) LookupPage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{"Team": "", "Error": ""})
}

func (h *Handler) TeamBallots(c *fiber.Ctx) error {
	team := c.FormValue("team")
	teamID, ballots, err := h.Ballots.Lookup(c.UserContext(), services.StaticInput(team))
	if err != nil {
		return h.lookupError(c, err, teamID, team)
	}
	return c.Render("ballots", fiber.Map{
		"Team":    teamID,
		"Ballots": h.Ballots.Summaries(ballots),
	})
}

func (h *Handler) BallotPage(c *fiber.Ctx) error {
	teamID, n, ballot, err := h.pick(c)
	if err != nil {
		return h.lookupError(c, err, teamID, c.Params("team"))
	}
	doc := h.Ballots.Render(ballot)
	return c.Render("ballot", fiber.Map{
		"Team":    teamID,
		"Index":   n,
		"Heading": doc.Heading(),
		"Body":    template.HTML(doc.HTML()),
	})
}

func (h *Handler) DownloadPDF(c *fiber.Ctx) error {
	teamID, n, ballot, err := h.pick(c)
	if err != nil {
		return h.lookupError(c, err, teamID, c.Params("team"))
	}

	var buf bytes.Buffer
	if err := h.Ballots.Export(c.UserContext(), ballot, h.Exporter, h.ExportOptions, &buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Could not export ballot")
	}
	c.Attachment(fmt.Sprintf("ballot-team%d-%d.pdf", teamID, n))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(buf.Bytes())
}

func (h *Handler) pick(c *fiber.Ctx) (int, int, models.Ballot, error) {
	teamID, ballots, err := h.Ballots.Lookup(c.UserContext(), services.StaticInput(c.Params("team")))
	if err != nil {
		return teamID, 0, nil, err
	}
	n, err := c.ParamsInt("n")
	if err != nil {
		return teamID, 0, nil, fmt.Errorf("%w: %s", models.ErrBallotIndex, c.Params("n"))
	}
	ballot, err := services.Pick(ballots, n)
	return teamID, n, ballot, err
}

// lookupError renders the lookup form again with a message for the user.
func (h *Handler) lookupError(c *fiber.Ctx, err error, teamID int, raw string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidSelector):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrNoMatch), errors.Is(err, models.ErrBallotIndex):
		status = fiber.StatusNotFound
	}
	return c.Status(status).Render("index", fiber.Map{
		"Team":  raw,
		"Error": services.UserMessage(err, teamID),
	})
}
