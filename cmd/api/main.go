package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/moneymate/internal/app"
	"github.com/MrJamesThe3rd/moneymate/internal/config"
	moneymateHttp "github.com/MrJamesThe3rd/moneymate/internal/http"
	"github.com/MrJamesThe3rd/moneymate/internal/http/account"
	importHandler "github.com/MrJamesThe3rd/moneymate/internal/http/importcsv"
	reportHandler "github.com/MrJamesThe3rd/moneymate/internal/http/report"
	txHandler "github.com/MrJamesThe3rd/moneymate/internal/http/transaction"
	"github.com/MrJamesThe3rd/moneymate/internal/importer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	book, err := app.OpenLedger(ctx, cfg, slog.Default())
	if err != nil {
		slog.Error("failed to open ledger", "error", err)
		os.Exit(1)
	}
	defer book.Close()

	var (
		accountH     = account.NewHandler(book.Manager)
		transactionH = txHandler.NewHandler(book.Manager)
		reportH      = reportHandler.NewHandler(book.Manager)
		importH      = importHandler.NewHandler(importer.NewService(book.Manager))
	)

	router := moneymateHttp.New(cfg.Server.CORSOrigins, accountH, transactionH, reportH, importH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr, "store", cfg.Store.Driver, "user", book.CurrentUser())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
