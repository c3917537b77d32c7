package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/latestcomment/ballot-export/internal/export"
	"github.com/latestcomment/ballot-export/internal/models"
	"github.com/latestcomment/ballot-export/internal/services"
)

var (
	exportTeam   string
	exportBallot int
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one of a team's ballots as PDF or HTML",
	Example: `  ballots export -s results.html --team 1234 --ballot 2 --out round2.pdf
  ballots export -s ballots.json --format html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newBallotService()
		if err != nil {
			return err
		}

		teamID, ballots, err := service.Lookup(cmd.Context(), teamInput(cmd, exportTeam))
		if err != nil {
			return userError(cmd, err, teamID)
		}
		ballot, err := services.Pick(ballots, exportBallot)
		if err != nil {
			return userError(cmd, err, teamID)
		}

		var exporter services.Exporter
		switch exportFormat {
		case "pdf":
			pdf := export.NewPDFExporter(export.BrowserConfig{
				DebuggerURL: cfg.ChromeURL,
				Bin:         cfg.ChromeBin,
				Headless:    cfg.Headless,
			}, logger)
			defer func() {
				_ = pdf.Close()
			}()
			exporter = pdf
		case "html":
			exporter = export.HTMLExporter{}
		default:
			return fmt.Errorf("unknown format %q (want pdf or html)", exportFormat)
		}

		out := exportOut
		if out == "" {
			out = fmt.Sprintf("ballot-team%d-%d.%s", teamID, exportBallot, exportFormat)
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := service.Export(cmd.Context(), ballot, exporter, exportOptions(), f); err != nil {
			_ = f.Close()
			_ = os.Remove(out)
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
		logger.Info("ballot exported", zap.Int("team", teamID), zap.Int("ballot", exportBallot), zap.String("out", out))
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportTeam, "team", "t", "", "team id (prompted when empty)")
	exportCmd.Flags().IntVarP(&exportBallot, "ballot", "b", 1, "which of the team's ballots to export, starting at 1")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "output format: pdf or html")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file")
}

// teamInput uses the flag when given and prompts on the terminal otherwise.
func teamInput(cmd *cobra.Command, flagValue string) services.InputProvider {
	if flagValue != "" {
		return services.StaticInput(flagValue)
	}
	return services.PromptInput{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
}

// userError prints the lookup failure the way a person should read it.
func userError(cmd *cobra.Command, err error, teamID int) error {
	if errors.Is(err, models.ErrInvalidSelector) || errors.Is(err, models.ErrNoMatch) || errors.Is(err, models.ErrBallotIndex) {
		fmt.Fprintln(cmd.ErrOrStderr(), services.UserMessage(err, teamID))
	}
	return err
}

