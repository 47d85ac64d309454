// Command provision writes the lead sheet's header row if it is missing.
// One-shot operational tool, safe to re-run.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	appconfig "github.com/kaptiva-io/lead-listener/internal/config"
	"github.com/kaptiva-io/lead-listener/internal/sheets"
	"github.com/kaptiva-io/lead-listener/pkg/logging"
)

func main() {
	worksheet := flag.String("worksheet", "", "worksheet title (defaults to WORKSHEET_TITLE, then the first worksheet)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	title := *worksheet
	if title == "" {
		title = cfg.WorksheetTitle
	}

	connector, err := sheets.NewGoogleConnector(cfg.SheetsCredentialsPath, cfg.SheetName)
	if err != nil {
		logger.Error("failed to configure sheets connector", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gateway := sheets.NewGateway(connector, logger)
	if err := gateway.SetupHeaders(ctx, title); err != nil {
		logger.Error("failed to set up headers", "error", err)
		os.Exit(1)
	}

	logger.Info("worksheet headers provisioned", "sheet", cfg.SheetName)
}
