// SPDX-License-Identifier: MIT
// Command matcalc is an interactive calculator for dense real matrices.
//
// Settings come from the environment or a .env file:
//
//	MATCALC_WIDTH         field width of rendered elements (default 5)
//	MATCALC_PRECISION     significant digits of rendered elements (default 5)
//	MATCALC_WORKSPACE     YAML file used by the save/load commands
//	MATCALC_KEEP_RESULTS  append operation results to the workspace
//	MATCALC_LOG_LEVEL     debug, info, warn or error (default warn)
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/matcalc/config"
	"github.com/katalvlaran/matcalc/logger"
	"github.com/katalvlaran/matcalc/shell"
	"github.com/katalvlaran/matcalc/workspace"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	appLogger := logger.New(os.Stderr, cfg.LogLevel)
	appLogger.Info("width=%d precision=%d workspace=%q keep_results=%v",
		cfg.Width, cfg.Precision, cfg.WorkspaceFile, cfg.KeepResults)

	ws := workspace.New()
	if cfg.WorkspaceFile != "" {
		switch err := ws.Load(cfg.WorkspaceFile); {
		case err == nil:
			appLogger.Info("loaded %d matrices from %s", ws.Len(), cfg.WorkspaceFile)
		case errors.Is(err, os.ErrNotExist):
			appLogger.Debug("no workspace at %s yet", cfg.WorkspaceFile)
		default:
			appLogger.Warn("workspace not loaded: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh := shell.New(os.Stdin, os.Stdout, ws,
		shell.WithWidth(cfg.Width),
		shell.WithPrecision(cfg.Precision),
		shell.WithKeepResults(cfg.KeepResults),
		shell.WithWorkspaceFile(cfg.WorkspaceFile),
		shell.WithLogger(appLogger),
	)
	if err = sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("session ended: %v", err)
		stop()
		os.Exit(1)
	}
}
