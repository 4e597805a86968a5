package store

import (
	"context"
	"fmt"

	"github.com/BartekS5/osmeac/internal/config"
	"github.com/BartekS5/osmeac/pkg/database"
	"github.com/BartekS5/osmeac/pkg/logger"
)

// Open connects the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	logger.Debugf("Opening %s store", cfg.Driver)

	switch cfg.Driver {
	case "", config.DriverFile:
		return NewFile(cfg.Dir)

	case config.DriverSQLite, config.DriverSQLServer:
		d, err := DialectFor(cfg.Driver)
		if err != nil {
			return nil, err
		}
		db, err := database.ConnectSQL(ctx, cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		s, err := NewSQL(ctx, db, d)
		if err != nil {
			db.Close()
			return nil, err
		}
		return s, nil

	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return NewMongo(client, cfg.Database), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
