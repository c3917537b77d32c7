package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/latestcomment/ballot-export/internal/models"
)

type BallotService struct {
	Source  DataSource
	Options RenderOptions

	logger  *zap.Logger
	mu      sync.Mutex
	ballots []models.Ballot
}

func NewBallotService(source DataSource, opts RenderOptions, logger *zap.Logger) *BallotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BallotService{Source: source, Options: opts, logger: logger}
}

// Ballots loads the collection on first use and keeps it for later calls.
func (s *BallotService) Ballots(ctx context.Context) ([]models.Ballot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ballots != nil {
		return s.ballots, nil
	}
	ballots, err := s.Source.Ballots(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ballots: %w", err)
	}
	s.logger.Info("ballots loaded", zap.Int("count", len(ballots)))
	s.ballots = ballots
	return ballots, nil
}

// Lookup asks input for a team id and returns that team's ballots. It fails
// with ErrInvalidSelector before touching any ballot when the id does not
// parse, and with ErrNoMatch when the team has no ballots.
func (s *BallotService) Lookup(ctx context.Context, input InputProvider) (int, []models.Ballot, error) {
	raw, err := input.TeamID(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("read team id: %w", err)
	}
	teamID, err := ParseTeamID(raw)
	if err != nil {
		return 0, nil, err
	}
	ballots, err := s.Ballots(ctx)
	if err != nil {
		return teamID, nil, err
	}
	matches := Select(ballots, teamID)
	if len(matches) == 0 {
		return teamID, nil, fmt.Errorf("%w %d", models.ErrNoMatch, teamID)
	}
	s.logger.Debug("team ballots selected", zap.Int("team", teamID), zap.Int("matches", len(matches)))
	return teamID, matches, nil
}

// Pick returns the n-th (1-based) ballot of a selection.
func Pick(ballots []models.Ballot, n int) (models.Ballot, error) {
	if n < 1 || n > len(ballots) {
		return nil, fmt.Errorf("%w: %d of %d", models.ErrBallotIndex, n, len(ballots))
	}
	return ballots[n-1], nil
}

func (s *BallotService) Render(ballot models.Ballot) models.Document {
	return Render(ballot, s.Options)
}

// Summaries renders each ballot once to report its result line.
func (s *BallotService) Summaries(ballots []models.Ballot) []models.BallotSummary {
	out := make([]models.BallotSummary, 0, len(ballots))
	for i, b := range ballots {
		doc := s.Render(b)
		out = append(out, models.BallotSummary{
			Index:   i + 1,
			Round:   doc.Round,
			Judge:   doc.Judge,
			PNumber: b.Text(models.FieldPNumber),
			DNumber: b.Text(models.FieldDNumber),
			Result:  doc.Result(),
		})
	}
	return out
}

// Export renders ballot and hands the fragment to exporter.
func (s *BallotService) Export(ctx context.Context, ballot models.Ballot, exporter Exporter, opts ExportOptions, w io.Writer) error {
	exportID := uuid.New()
	doc := s.Render(ballot)
	if opts.Title == "" {
		opts.Title = doc.Heading()
	}

	log := s.logger.With(zap.String("export_id", exportID.String()), zap.String("round", doc.Round), zap.String("judge", doc.Judge))
	log.Info("exporting ballot", zap.String("result", doc.Result()))
	if err := exporter.Export(ctx, doc.HTML(), opts, w); err != nil {
		log.Error("export failed", zap.Error(err))
		return fmt.Errorf("export ballot: %w", err)
	}
	log.Debug("export finished")
	return nil
}
