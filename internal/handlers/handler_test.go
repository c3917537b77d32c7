package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latestcomment/ballot-export/internal/models"
	"github.com/latestcomment/ballot-export/internal/services"
)

type memorySource []models.Ballot

func (m memorySource) Ballots(context.Context) ([]models.Ballot, error) { return m, nil }

type stubExporter struct{}

func (stubExporter) Export(_ context.Context, fragment string, _ services.ExportOptions, w io.Writer) error {
	_, err := io.WriteString(w, "%PDF-"+fragment)
	return err
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	src := memorySource{
		{"round": float64(1), "judge": "Hon. Rivera", "pNumber": float64(1234), "dNumber": float64(5678), "pDx1": float64(9), "dCx1": float64(7)},
		{"round": float64(2), "judge": "Hon. Okafor", "pNumber": float64(42), "dNumber": float64(1234)},
	}
	service := services.NewBallotService(src, services.RenderOptions{}, nil)
	return NewApp(NewHandler(service, stubExporter{}, services.ExportOptions{MarginMM: 5}), NewWebSocketHandler(service))
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func postTeam(team string) *http.Request {
	form := url.Values{"team": {team}}
	req := httptest.NewRequest(http.MethodPost, "/ballots", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func TestLookupPage(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Please enter your team ID:")
	assert.NotContains(t, body, `class="error"`)
}

func TestTeamBallots(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, postTeam("1234"))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Ballots for team 1234")
	assert.Contains(t, body, "Hon. Rivera")
	assert.Contains(t, body, "Hon. Okafor")
	assert.Contains(t, body, "Plaintiff wins")
	assert.Contains(t, body, `/ballots/1234/2/pdf`)
}

func TestTeamBallotsErrors(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, postTeam("abc"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Please try again with a valid ID")

	status, body = doRequest(t, app, postTeam("9999"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "Cannot find ballots for team 9999")
}

func TestBallotPage(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/ballots/1234/1", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<h2>Round 1 (Hon. Rivera) - Plaintiff wins +2</h2>")
	assert.Contains(t, body, `<span style="font-weight: bold; color: darkblue;">Opening</span>`)

	status, body = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/ballots/1234/3", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "That ballot does not exist for this team")
}

func TestDownloadPDF(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/ballots/1234/2/pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), `ballot-team1234-2.pdf`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF-<h2>Round 2 (Hon. Okafor) - Tie</h2>"))
}

func TestWebSocketRouteRequiresUpgrade(t *testing.T) {
	app := newTestApp(t)

	status, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/ws/lookup", nil))
	assert.Equal(t, http.StatusUpgradeRequired, status)
}

func TestWebSocketLookupMessage(t *testing.T) {
	src := memorySource{{"round": float64(1), "pNumber": float64(1), "dNumber": float64(2)}}
	ws := NewWebSocketHandler(services.NewBallotService(src, services.RenderOptions{}, nil))

	msg := ws.lookup("1")
	assert.Equal(t, "ballots", msg.Type)
	assert.Equal(t, 1, msg.TeamID)
	require.Len(t, msg.Ballots, 1)
	assert.Equal(t, "Tie", msg.Ballots[0].Result)

	msg = ws.lookup("x")
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, "Please try again with a valid ID", msg.Text)
}
