package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/latestcomment/ballot-export/internal/export"
	"github.com/latestcomment/ballot-export/internal/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the team lookup page and ballot downloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newBallotService()
		if err != nil {
			return err
		}
		// Load up front so a bad source fails at startup.
		if _, err := service.Ballots(cmd.Context()); err != nil {
			return err
		}

		pdf := export.NewPDFExporter(export.BrowserConfig{
			DebuggerURL: cfg.ChromeURL,
			Bin:         cfg.ChromeBin,
			Headless:    cfg.Headless,
		}, logger)
		defer func() {
			_ = pdf.Close()
		}()

		app := handlers.NewApp(handlers.NewHandler(service, pdf, exportOptions()), handlers.NewWebSocketHandler(service))

		go func() {
			<-cmd.Context().Done()
			_ = app.Shutdown()
		}()

		logger.Info("ballot server running", zap.String("addr", cfg.ListenAddr), zap.String("source", cfg.Source))
		return app.Listen(cfg.ListenAddr)
	},
}
