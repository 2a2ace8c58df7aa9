// Package app assembles a ledger from configuration for the binaries in cmd/.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/moneymate/internal/config"
	"github.com/MrJamesThe3rd/moneymate/internal/database"
	"github.com/MrJamesThe3rd/moneymate/internal/events"
	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
	"github.com/MrJamesThe3rd/moneymate/internal/ledger/memory"
	"github.com/MrJamesThe3rd/moneymate/internal/ledger/store"
)

// Ledger is a manager together with the resources it holds open.
type Ledger struct {
	*ledger.Manager

	closers []func() error
}

// Close releases the publisher and database connection, if any.
func (l *Ledger) Close() error {
	var errs []error

	for i := len(l.closers) - 1; i >= 0; i-- {
		errs = append(errs, l.closers[i]())
	}

	return errors.Join(errs...)
}

// OpenLedger picks the repository named by STORE_DRIVER, connects the event
// publisher when AMQP_URL is set and loads the configured user's ledger.
func OpenLedger(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Ledger, error) {
	l := &Ledger{}

	repo, err := l.openRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var notifier ledger.Notifier

	if cfg.EventsEnabled() {
		pub, err := events.Dial(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			_ = l.Close()
			return nil, fmt.Errorf("connecting event publisher: %w", err)
		}

		l.closers = append(l.closers, pub.Close)
		notifier = pub

		log.Info("publishing ledger events", "exchange", cfg.AMQP.Exchange)
	}

	m, err := ledger.NewManager(ctx, repo, ledger.Config{
		UserID:         cfg.Ledger.UserID,
		InitialBalance: cfg.Ledger.InitialBalance,
		Notifier:       notifier,
		Logger:         log,
	})
	if err != nil {
		_ = l.Close()
		return nil, err
	}

	l.Manager = m

	return l, nil
}

func (l *Ledger) openRepository(ctx context.Context, cfg *config.Config) (ledger.Repository, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return memory.New(), nil
	}

	if err := database.Migrate(cfg.ConnectionString()); err != nil {
		return nil, err
	}

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	l.closers = append(l.closers, db.Close)

	return store.New(db), nil
}
